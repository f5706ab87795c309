package validator

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// OneOf accepts strings equal to one of options.
func OneOf(options []string, opts ...RuleOption) *Rule {
	allowed := slices.Clone(options)
	return NewRule(func(value any, _ *Context) bool {
		s, ok := value.(string)
		return ok && slices.Contains(allowed, s)
	}, fmt.Sprintf("Must be one of: %s.", strings.Join(allowed, ", ")), opts...)
}

// OneOfFold is OneOf with Unicode case folding, so "STRASSE" matches "straße".
func OneOfFold(options []string, opts ...RuleOption) *Rule {
	allowed := slices.Clone(options)
	folded := make([]string, len(allowed))
	for i, opt := range allowed {
		folded[i] = cases.Fold().String(opt)
	}
	return NewRule(func(value any, _ *Context) bool {
		s, ok := value.(string)
		return ok && slices.Contains(folded, cases.Fold().String(s))
	}, fmt.Sprintf("Must be one of: %s.", strings.Join(allowed, ", ")), opts...)
}
