package validator

import "github.com/dmitrymomot/incoming/pkg/payload"

// Kind tags the rule variant. The set is closed: every rule is one of the
// built-in type checks, a function rule, a nested JSON rule, or a custom
// predicate built with NewRule.
type Kind uint8

const (
	KindCustom Kind = iota
	KindInteger
	KindFloat
	KindNumber
	KindString
	KindArray
	KindBoolean
	KindFunction
	KindJSON
)

var kindNames = [...]string{
	KindCustom:   "custom",
	KindInteger:  "integer",
	KindFloat:    "float",
	KindNumber:   "number",
	KindString:   "string",
	KindArray:    "array",
	KindBoolean:  "boolean",
	KindFunction: "function",
	KindJSON:     "json",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Check is the predicate of a rule.
type Check func(value any, c *Context) bool

// Context is handed to every predicate. Errors is the collector of the
// validation pass in progress; only rules that delegate to nested schemas
// write to it directly.
type Context struct {
	Key     string
	Payload payload.Payload
	Errors  *Errors

	depth    int
	maxDepth int
}

// Depth returns the nesting depth of the schema being validated, 0 for the
// top-level payload.
func (c *Context) Depth() int {
	return c.depth
}

// Rule validates the value of a single field.
type Rule struct {
	kind            Kind
	check           Check
	required        *bool
	message         string
	requiredMessage string

	// KindFunction
	fn     ValidateFunc
	method string

	// KindJSON
	schema *Schema
	ref    string

	// misuse detected by a constructor, reported by NewSchema
	err error
}

// RuleOption configures a rule at construction.
type RuleOption func(*Rule)

// Required marks the field as required regardless of the schema default.
func Required() RuleOption {
	return WithRequired(true)
}

// Optional marks the field as optional regardless of the schema default.
func Optional() RuleOption {
	return WithRequired(false)
}

func WithRequired(required bool) RuleOption {
	return func(r *Rule) {
		r.required = &required
	}
}

// Message replaces the rule's default error message.
func Message(msg string) RuleOption {
	return func(r *Rule) {
		if msg != "" {
			r.message = msg
		}
	}
}

// RequiredMessage replaces the schema's required error for this field.
func RequiredMessage(msg string) RuleOption {
	return func(r *Rule) {
		r.requiredMessage = msg
	}
}

// NewRule creates a custom rule from a predicate and its error message.
// A nil check makes schema construction fail with ErrMissingPredicate.
func NewRule(check Check, message string, opts ...RuleOption) *Rule {
	return newRule(KindCustom, check, message, opts)
}

func newRule(kind Kind, check Check, message string, opts []RuleOption) *Rule {
	r := &Rule{
		kind:    kind,
		check:   check,
		message: message,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Rule) Kind() Kind {
	return r.kind
}

// Message returns the error reported when the rule fails.
func (r *Rule) Message() string {
	return r.message
}

// IsRequired returns the field-level required setting and whether it is set.
func (r *Rule) IsRequired() (required bool, ok bool) {
	if r.required == nil {
		return false, false
	}
	return *r.required, true
}

// Test runs the rule against value. On failure the rule's message is put in
// front of any message already collected for c.Key.
//
// A nil c, or one without an Errors collector, is replaced with a fresh one.
// A rule that was never bound to its predicate (a Method rule outside a
// registry, or a JSON rule whose schema reference is unresolved) fails.
func (r *Rule) Test(value any, c *Context) bool {
	if c == nil {
		c = &Context{}
	}
	if c.Errors == nil {
		c.Errors = NewErrors()
	}
	if c.maxDepth == 0 {
		c.maxDepth = DefaultMaxDepth
	}
	if r.bound() && r.predicate(value, c) {
		return true
	}
	c.Errors.Prepend(c.Key, r.message)
	return false
}

func (r *Rule) predicate(value any, c *Context) bool {
	switch r.kind {
	case KindFunction:
		return r.fn(value, c.Key, c.Payload)
	case KindJSON:
		return validateNested(r.schema, value, c)
	default:
		return r.check(value, c)
	}
}

func (r *Rule) bound() bool {
	switch r.kind {
	case KindFunction:
		return r.fn != nil
	case KindJSON:
		return r.schema != nil
	default:
		return r.check != nil
	}
}

// validate reports construction misuse.
func (r *Rule) validate() error {
	if r.err != nil {
		return r.err
	}
	switch r.kind {
	case KindFunction:
		if r.fn == nil && r.method == "" {
			return ErrFunctionMisconfigured
		}
	case KindJSON:
		if r.schema == nil && r.ref == "" {
			return ErrUnresolvedSchema
		}
	default:
		if r.check == nil {
			return ErrMissingPredicate
		}
	}
	return nil
}

func (r *Rule) clone() *Rule {
	c := *r
	return &c
}
