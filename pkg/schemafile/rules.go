package schemafile

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/dmitrymomot/incoming/pkg/validator"
)

type ruleBuilder func(f FieldDoc, o *options, opts []validator.RuleOption) (*validator.Rule, error)

var builders = map[string]ruleBuilder{
	"integer":     plain(validator.Integer),
	"float":       plain(validator.Float),
	"number":      plain(validator.Number),
	"string":      plain(validator.String),
	"array":       plain(validator.Array),
	"boolean":     plain(validator.Boolean),
	"email":       plain(validator.Email),
	"uuid":        plain(validator.UUID),
	"not_blank":   plain(validator.NotBlank),
	"datetime":    plain(validator.DateTime),
	"json":        buildJSON,
	"function":    buildFunction,
	"url":         buildURL,
	"one_of":      buildChoice(validator.OneOf),
	"one_of_fold": buildChoice(validator.OneOfFold),
	"min_length":  intBound(boundMin, validator.MinLength),
	"max_length":  intBound(boundMax, validator.MaxLength),
	"min_items":   intBound(boundMin, validator.MinItems),
	"max_items":   intBound(boundMax, validator.MaxItems),
	"length":      buildLength,
	"min":         floatBound(boundMin, validator.Min),
	"max":         floatBound(boundMax, validator.Max),
	"between":     buildBetween,
	"date":        buildDate(validator.Date),
	"past_date":   buildDate(validator.PastDate),
}

// Types returns the field types a document may use, sorted.
func Types() []string {
	return slices.Sorted(maps.Keys(builders))
}

func buildRule(f FieldDoc, o *options) (*validator.Rule, error) {
	build, ok := builders[f.Type]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownType, f.Type)
	}

	var opts []validator.RuleOption
	if f.Required != nil {
		opts = append(opts, validator.WithRequired(*f.Required))
	}
	if f.Error != "" {
		opts = append(opts, validator.Message(f.Error))
	}
	if f.RequiredError != "" {
		opts = append(opts, validator.RequiredMessage(f.RequiredError))
	}
	return build(f, o, opts)
}

func plain(ctor func(...validator.RuleOption) *validator.Rule) ruleBuilder {
	return func(_ FieldDoc, _ *options, opts []validator.RuleOption) (*validator.Rule, error) {
		return ctor(opts...), nil
	}
}

func buildJSON(f FieldDoc, _ *options, opts []validator.RuleOption) (*validator.Rule, error) {
	if f.Schema == "" {
		return nil, fmt.Errorf("%w: json field needs schema", ErrMissingParam)
	}
	return validator.JSONRef(f.Schema, opts...), nil
}

func buildFunction(f FieldDoc, o *options, opts []validator.RuleOption) (*validator.Rule, error) {
	var fn validator.ValidateFunc
	if f.Func != "" {
		var ok bool
		if fn, ok = o.funcs[f.Func]; !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownFunc, f.Func)
		}
	}
	return validator.NewFunction(fn, f.Method, opts...)
}

func buildURL(f FieldDoc, _ *options, opts []validator.RuleOption) (*validator.Rule, error) {
	return validator.URL(f.Schemes, opts...), nil
}

func buildChoice(ctor func([]string, ...validator.RuleOption) *validator.Rule) ruleBuilder {
	return func(f FieldDoc, _ *options, opts []validator.RuleOption) (*validator.Rule, error) {
		if len(f.Choices) == 0 {
			return nil, fmt.Errorf("%w: %s field needs choices", ErrMissingParam, f.Type)
		}
		return ctor(f.Choices, opts...), nil
	}
}

type bound int

const (
	boundMin bound = iota
	boundMax
)

func (b bound) pick(f FieldDoc) (*float64, string) {
	if b == boundMin {
		return f.Min, "min"
	}
	return f.Max, "max"
}

func intBound(b bound, ctor func(int, ...validator.RuleOption) *validator.Rule) ruleBuilder {
	return func(f FieldDoc, _ *options, opts []validator.RuleOption) (*validator.Rule, error) {
		v, key := b.pick(f)
		if v == nil {
			return nil, fmt.Errorf("%w: %s field needs %s", ErrMissingParam, f.Type, key)
		}
		n, err := count(*v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s of %s field: %w", ErrInvalidParam, key, f.Type, err)
		}
		return ctor(n, opts...), nil
	}
}

// count accepts whole, non-negative numbers.
func count(v float64) (int, error) {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v):
		return 0, fmt.Errorf("%v is not a whole number", v)
	case v < 0:
		return 0, fmt.Errorf("%v is negative", v)
	case v > math.MaxInt32:
		return 0, fmt.Errorf("%v is too large", v)
	}
	return int(v), nil
}

func finite(key string, f FieldDoc, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s of %s field must be a finite number", ErrInvalidParam, key, f.Type)
	}
	return nil
}

func floatBound(b bound, ctor func(float64, ...validator.RuleOption) *validator.Rule) ruleBuilder {
	return func(f FieldDoc, _ *options, opts []validator.RuleOption) (*validator.Rule, error) {
		v, key := b.pick(f)
		if v == nil {
			return nil, fmt.Errorf("%w: %s field needs %s", ErrMissingParam, f.Type, key)
		}
		if err := finite(key, f, *v); err != nil {
			return nil, err
		}
		return ctor(*v, opts...), nil
	}
}

func buildLength(f FieldDoc, _ *options, opts []validator.RuleOption) (*validator.Rule, error) {
	if f.Length == nil {
		return nil, fmt.Errorf("%w: length field needs length", ErrMissingParam)
	}
	if *f.Length < 0 {
		return nil, fmt.Errorf("%w: length %d is negative", ErrInvalidParam, *f.Length)
	}
	return validator.Length(*f.Length, opts...), nil
}

func buildBetween(f FieldDoc, _ *options, opts []validator.RuleOption) (*validator.Rule, error) {
	if f.Min == nil || f.Max == nil {
		return nil, fmt.Errorf("%w: between field needs min and max", ErrMissingParam)
	}
	if err := finite("min", f, *f.Min); err != nil {
		return nil, err
	}
	if err := finite("max", f, *f.Max); err != nil {
		return nil, err
	}
	if *f.Min > *f.Max {
		return nil, fmt.Errorf("%w: between min %v is greater than max %v", ErrInvalidParam, *f.Min, *f.Max)
	}
	return validator.Between(*f.Min, *f.Max, opts...), nil
}

func buildDate(ctor func(string, ...validator.RuleOption) *validator.Rule) ruleBuilder {
	return func(f FieldDoc, _ *options, opts []validator.RuleOption) (*validator.Rule, error) {
		return ctor(f.Layout, opts...), nil
	}
}
