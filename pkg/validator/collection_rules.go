package validator

import (
	"fmt"

	"github.com/dmitrymomot/incoming/pkg/payload"
)

// MinItems accepts arrays with at least min elements.
func MinItems(min int, opts ...RuleOption) *Rule {
	return NewRule(arrayLen(func(n int) bool { return n >= min }),
		fmt.Sprintf("Must contain at least %d items.", min), opts...)
}

// MaxItems accepts arrays with at most max elements.
func MaxItems(max int, opts ...RuleOption) *Rule {
	return NewRule(arrayLen(func(n int) bool { return n <= max }),
		fmt.Sprintf("Must contain at most %d items.", max), opts...)
}

func arrayLen(ok func(int) bool) Check {
	return func(value any, _ *Context) bool {
		n, isArray := payload.Len(value)
		return isArray && ok(n)
	}
}
