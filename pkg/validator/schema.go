package validator

import (
	"fmt"

	"github.com/dmitrymomot/incoming/pkg/payload"
)

// Field binds a payload key to the rule validating its value.
type Field struct {
	Name string
	Rule *Rule
}

// Schema is an immutable, ordered set of field rules plus the policies
// applied to missing and undeclared fields. It is safe for concurrent use.
type Schema struct {
	name            string
	fields          []string
	rules           map[string]*Rule
	requiredDefault bool
	strict          bool
	strictError     string
	requiredError   string
	recursive       bool
}

// SchemaOption configures a schema at construction.
type SchemaOption func(*schemaConfig)

type schemaConfig struct {
	required      bool
	strict        bool
	strictError   string
	requiredError string
	methods       map[string]ValidateFunc
	scope         map[string]*Schema
}

func defaultSchemaConfig() *schemaConfig {
	return &schemaConfig{
		required:      true,
		strictError:   DefaultStrictError,
		requiredError: DefaultRequiredError,
		methods:       make(map[string]ValidateFunc),
		scope:         make(map[string]*Schema),
	}
}

// RequiredByDefault sets whether fields without their own setting must be
// present. Defaults to true.
func RequiredByDefault(required bool) SchemaOption {
	return func(c *schemaConfig) { c.required = required }
}

// StrictMode rejects payload keys the schema does not declare. Off by default.
func StrictMode(strict bool) SchemaOption {
	return func(c *schemaConfig) { c.strict = strict }
}

func StrictError(msg string) SchemaOption {
	return func(c *schemaConfig) {
		if msg != "" {
			c.strictError = msg
		}
	}
}

func RequiredError(msg string) SchemaOption {
	return func(c *schemaConfig) {
		if msg != "" {
			c.requiredError = msg
		}
	}
}

// WithMethod registers fn under name for Method rules of this schema.
func WithMethod(name string, fn ValidateFunc) SchemaOption {
	return func(c *schemaConfig) { c.methods[name] = fn }
}

// WithSchemas makes already built schemas referenceable by name from
// JSONRef rules of this schema.
func WithSchemas(schemas ...*Schema) SchemaOption {
	return func(c *schemaConfig) {
		for _, s := range schemas {
			if s != nil {
				c.scope[s.name] = s
			}
		}
	}
}

// NewSchema builds a schema. Every rule is copied, Method rules are bound and
// JSONRef rules are resolved before it returns, so validation never mutates
// the schema. All errors wrap ErrInvalidSchema.
func NewSchema(name string, fields []Field, opts ...SchemaOption) (*Schema, error) {
	s, scope, err := compile(name, fields, opts)
	if err != nil {
		return nil, err
	}
	lookup := func(ref string) *Schema {
		if ref == s.name {
			return s
		}
		return scope[ref]
	}
	if err := s.resolve(lookup); err != nil {
		return nil, err
	}
	markRecursive([]*Schema{s})
	return s, nil
}

// MustSchema is like NewSchema but panics on error. Intended for package
// level schema declarations.
func MustSchema(name string, fields []Field, opts ...SchemaOption) *Schema {
	s, err := NewSchema(name, fields, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func compile(name string, fields []Field, opts []SchemaOption) (*Schema, map[string]*Schema, error) {
	if name == "" {
		return nil, nil, schemaError(name, "", ErrEmptyName)
	}
	if len(fields) == 0 {
		return nil, nil, schemaError(name, "", ErrNoFields)
	}

	cfg := defaultSchemaConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	s := &Schema{
		name:            name,
		fields:          make([]string, 0, len(fields)),
		rules:           make(map[string]*Rule, len(fields)),
		requiredDefault: cfg.required,
		strict:          cfg.strict,
		strictError:     cfg.strictError,
		requiredError:   cfg.requiredError,
	}

	for _, f := range fields {
		if f.Name == "" {
			return nil, nil, schemaError(name, f.Name, ErrEmptyName)
		}
		if _, dup := s.rules[f.Name]; dup {
			return nil, nil, schemaError(name, f.Name, ErrDuplicateField)
		}
		if f.Rule == nil {
			return nil, nil, schemaError(name, f.Name, ErrMissingPredicate)
		}
		if err := f.Rule.validate(); err != nil {
			return nil, nil, schemaError(name, f.Name, err)
		}

		rule := f.Rule.clone()
		if rule.kind == KindFunction && rule.fn == nil {
			fn, ok := cfg.methods[rule.method]
			if !ok || fn == nil {
				return nil, nil, schemaError(name, f.Name, fmt.Errorf("%w %q", ErrUnknownMethod, rule.method))
			}
			rule.fn = fn
		}

		s.fields = append(s.fields, f.Name)
		s.rules[f.Name] = rule
	}

	return s, cfg.scope, nil
}

// resolve binds JSONRef rules using lookup.
func (s *Schema) resolve(lookup func(string) *Schema) error {
	for _, name := range s.fields {
		rule := s.rules[name]
		if rule.kind != KindJSON || rule.schema != nil {
			continue
		}
		target := lookup(rule.ref)
		if target == nil {
			return schemaError(s.name, name, fmt.Errorf("%w %q", ErrUnresolvedSchema, rule.ref))
		}
		rule.schema = target
	}
	return nil
}

func schemaError(schema, field string, err error) error {
	if field == "" {
		return fmt.Errorf("%w: schema %q: %w", ErrInvalidSchema, schema, err)
	}
	return fmt.Errorf("%w: schema %q, field %q: %w", ErrInvalidSchema, schema, field, err)
}

func (s *Schema) Name() string {
	return s.name
}

// Fields returns the declared field names in declaration order.
func (s *Schema) Fields() []string {
	out := make([]string, len(s.fields))
	copy(out, s.fields)
	return out
}

// Rule returns the rule bound to field.
func (s *Schema) Rule(field string) (*Rule, bool) {
	r, ok := s.rules[field]
	return r, ok
}

func (s *Schema) RequiredDefault() bool {
	return s.requiredDefault
}

func (s *Schema) Strict() bool {
	return s.strict
}

func (s *Schema) StrictError() string {
	return s.strictError
}

func (s *Schema) RequiredError() string {
	return s.requiredError
}

// Recursive reports whether the schema can reach itself through nested
// JSON rules. Validation of such schemas is bounded by the validator's
// maximum depth.
func (s *Schema) Recursive() bool {
	return s.recursive
}

// Nested returns the schemas directly referenced by JSON rules, in field order.
func (s *Schema) Nested() []*Schema {
	var out []*Schema
	for _, name := range s.fields {
		if r := s.rules[name]; r.kind == KindJSON && r.schema != nil {
			out = append(out, r.schema)
		}
	}
	return out
}

// Validate is a shortcut for New(s).Validate(p, opts...).
func (s *Schema) Validate(p payload.Payload, opts ...ValidateOption) Result {
	return New(s).Validate(p, opts...)
}

// markRecursive flags every schema in built that lies on a reference cycle.
// Only schemas of the current build are written to; previously built
// schemas cannot join a new cycle since nothing they hold can change.
func markRecursive(built []*Schema) {
	for _, s := range built {
		s.recursive = reaches(s, s, make(map[*Schema]bool))
	}
}

func reaches(from, target *Schema, seen map[*Schema]bool) bool {
	for _, next := range from.Nested() {
		if next == target {
			return true
		}
		if seen[next] {
			continue
		}
		seen[next] = true
		if reaches(next, target, seen) {
			return true
		}
	}
	return false
}
