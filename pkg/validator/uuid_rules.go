package validator

import (
	"strings"

	"github.com/google/uuid"
)

// UUID accepts canonical 36-character UUID strings, excluding the nil UUID.
func UUID(opts ...RuleOption) *Rule {
	return NewRule(func(value any, _ *Context) bool {
		s, ok := value.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return false
		}

		// Fast rejection before parsing
		if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return false
		}

		id, err := uuid.Parse(s)
		return err == nil && id != uuid.Nil
	}, "Must be a valid UUID.", opts...)
}
