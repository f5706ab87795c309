package validator

import (
	"log/slog"

	"github.com/dmitrymomot/incoming/pkg/logger"
	"github.com/dmitrymomot/incoming/pkg/payload"
)

// DefaultMaxDepth bounds nested schema recursion.
const DefaultMaxDepth = 32

// Result is the outcome of a validation. Errors is nil when Valid is true.
type Result struct {
	Valid  bool
	Errors Report
}

// Err returns nil for a valid result and the Report otherwise.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return r.Errors
}

// Validator validates payloads against a schema. It holds no per-call state
// and is safe for concurrent use.
type Validator struct {
	schema   *Schema
	logger   *slog.Logger
	maxDepth int
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used for per-validation debug records. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithMaxDepth sets how many nested schema levels are validated. Values below 1 are ignored.
func WithMaxDepth(depth int) Option {
	return func(v *Validator) {
		if depth > 0 {
			v.maxDepth = depth
		}
	}
}

// New returns a validator for s. It panics when s is nil.
func New(s *Schema, opts ...Option) *Validator {
	if s == nil {
		panic("validator: nil schema")
	}
	v := &Validator{
		schema:   s,
		logger:   logger.NewNop(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Validator) Schema() *Schema {
	return v.schema
}

// ValidateOption overrides schema policies for a single call.
type ValidateOption func(*overrides)

type overrides struct {
	required *bool
	strict   *bool
}

// OverrideRequired replaces the schema's required default for one call.
// Fields with their own required setting keep it.
func OverrideRequired(required bool) ValidateOption {
	return func(o *overrides) { o.required = &required }
}

// OverrideStrict replaces the schema's strict mode for one call.
func OverrideStrict(strict bool) ValidateOption {
	return func(o *overrides) { o.strict = &strict }
}

// Validate checks p against the schema. Data problems are reported in the
// Result and never as a panic.
func (v *Validator) Validate(p payload.Payload, opts ...ValidateOption) Result {
	var o overrides
	for _, opt := range opts {
		opt(&o)
	}

	res := run(v.schema, p, o, 0, v.maxDepth)
	attrs := []any{
		logger.Schema(v.schema.name),
		logger.Valid(res.Valid),
		logger.FieldCount(len(res.Errors)),
	}
	if !res.Valid {
		attrs = append(attrs, logger.Field(res.Errors.Fields()[0]))
	}
	v.logger.Debug("payload validated", attrs...)
	return res
}

func run(s *Schema, p payload.Payload, o overrides, depth, maxDepth int) Result {
	required := s.requiredDefault
	if o.required != nil {
		required = *o.required
	}
	strict := s.strict
	if o.strict != nil {
		strict = *o.strict
	}

	errs := NewErrors()
	remaining := make(map[string]struct{}, len(s.fields))
	for _, name := range s.fields {
		remaining[name] = struct{}{}
	}

	for key, value := range p {
		rule, ok := s.rules[key]
		if !ok {
			if strict {
				errs.Append(key, s.strictError)
			}
			continue
		}
		rule.Test(value, &Context{Key: key, Payload: p, Errors: errs, depth: depth, maxDepth: maxDepth})
		delete(remaining, key)
	}

	// Declaration order keeps absent-field probes deterministic.
	for _, name := range s.fields {
		if _, missing := remaining[name]; !missing {
			continue
		}
		rule := s.rules[name]

		fieldRequired := required
		if rule.required != nil {
			fieldRequired = *rule.required
		}

		switch {
		case fieldRequired:
			msg := s.requiredError
			if rule.requiredMessage != "" {
				msg = rule.requiredMessage
			}
			errs.Append(name, msg)
		case rule.kind == KindFunction:
			rule.Test(nil, &Context{Key: name, Payload: p, Errors: errs, depth: depth, maxDepth: maxDepth})
		}
	}

	if !errs.HasErrors() {
		return Result{Valid: true}
	}
	return Result{Valid: false, Errors: errs.Report()}
}
