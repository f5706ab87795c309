package validator

import "github.com/dmitrymomot/incoming/pkg/payload"

// FunctionMessage is the default message of function rules.
const FunctionMessage = "Invalid data."

// ValidateFunc is a caller-supplied validation function. It receives the
// field value (nil when the field is absent), the field key and the whole
// payload the field belongs to.
type ValidateFunc func(value any, key string, p payload.Payload) bool

// Function creates a rule delegating to fn.
//
// Unlike the type rules, a function rule of an optional field still runs when
// the field is absent, with a nil value, so it can decide based on sibling
// fields.
func Function(fn ValidateFunc, opts ...RuleOption) *Rule {
	r := newRule(KindFunction, nil, FunctionMessage, opts)
	r.fn = fn
	return r
}

// Method creates a function rule bound by name to a method registered on the
// owning schema with WithMethod. The binding happens once, at schema
// construction.
func Method(name string, opts ...RuleOption) *Rule {
	r := newRule(KindFunction, nil, FunctionMessage, opts)
	r.method = name
	return r
}

// NewFunction creates a function rule from either fn or a method name.
// Supplying neither or both returns ErrFunctionMisconfigured.
func NewFunction(fn ValidateFunc, method string, opts ...RuleOption) (*Rule, error) {
	if (fn == nil) == (method == "") {
		return nil, ErrFunctionMisconfigured
	}
	if fn != nil {
		return Function(fn, opts...), nil
	}
	return Method(method, opts...), nil
}
