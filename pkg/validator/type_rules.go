package validator

import "github.com/dmitrymomot/incoming/pkg/payload"

// Default messages of the built-in type rules.
const (
	IntegerMessage = "Expected an integer."
	FloatMessage   = "Expected a float."
	NumberMessage  = "Expected an integer or a float."
	StringMessage  = "Expected a string."
	ArrayMessage   = "Expected an array."
	BooleanMessage = "Expected a boolean value."
)

func Integer(opts ...RuleOption) *Rule {
	return newRule(KindInteger, kindCheck(payload.Integer), IntegerMessage, opts)
}

func Float(opts ...RuleOption) *Rule {
	return newRule(KindFloat, kindCheck(payload.Float), FloatMessage, opts)
}

// Number accepts integers and floats.
func Number(opts ...RuleOption) *Rule {
	return newRule(KindNumber, kindCheck(payload.Integer, payload.Float), NumberMessage, opts)
}

func String(opts ...RuleOption) *Rule {
	return newRule(KindString, kindCheck(payload.String), StringMessage, opts)
}

func Array(opts ...RuleOption) *Rule {
	return newRule(KindArray, kindCheck(payload.Array), ArrayMessage, opts)
}

func Boolean(opts ...RuleOption) *Rule {
	return newRule(KindBoolean, kindCheck(payload.Boolean), BooleanMessage, opts)
}

func kindCheck(kinds ...payload.Kind) Check {
	return func(value any, _ *Context) bool {
		k := payload.KindOf(value)
		for _, want := range kinds {
			if k == want {
				return true
			}
		}
		return false
	}
}
