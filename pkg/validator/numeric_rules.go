package validator

import (
	"fmt"

	"github.com/dmitrymomot/incoming/pkg/payload"
)

// Min accepts integers and floats greater than or equal to min.
func Min(min float64, opts ...RuleOption) *Rule {
	return NewRule(numeric(func(f float64) bool { return f >= min }),
		fmt.Sprintf("Must be at least %v.", min), opts...)
}

// Max accepts integers and floats less than or equal to max.
func Max(max float64, opts ...RuleOption) *Rule {
	return NewRule(numeric(func(f float64) bool { return f <= max }),
		fmt.Sprintf("Must be at most %v.", max), opts...)
}

// Between accepts integers and floats in [min, max].
func Between(min, max float64, opts ...RuleOption) *Rule {
	return NewRule(numeric(func(f float64) bool { return f >= min && f <= max }),
		fmt.Sprintf("Must be between %v and %v.", min, max), opts...)
}

func numeric(ok func(float64) bool) Check {
	return func(value any, _ *Context) bool {
		f, isNumber := payload.AsFloat(value)
		return isNumber && ok(f)
	}
}
