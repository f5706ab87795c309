package schemafile

import "github.com/dmitrymomot/incoming/pkg/validator"

// Option configures how documents are turned into schemas.
type Option func(*options)

type options struct {
	funcs   map[string]validator.ValidateFunc
	methods map[string]map[string]validator.ValidateFunc
}

func newOptions(opts []Option) *options {
	o := &options{
		funcs:   make(map[string]validator.ValidateFunc),
		methods: make(map[string]map[string]validator.ValidateFunc),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithFunc makes fn available to function fields declaring `func: name`.
func WithFunc(name string, fn validator.ValidateFunc) Option {
	return func(o *options) {
		if name != "" && fn != nil {
			o.funcs[name] = fn
		}
	}
}

// WithFuncs registers several functions at once.
func WithFuncs(funcs map[string]validator.ValidateFunc) Option {
	return func(o *options) {
		for name, fn := range funcs {
			WithFunc(name, fn)(o)
		}
	}
}

// WithMethod registers fn as method name of the schema called schema, for
// function fields declaring `method: name`.
func WithMethod(schema, name string, fn validator.ValidateFunc) Option {
	return func(o *options) {
		if schema == "" || name == "" || fn == nil {
			return
		}
		if o.methods[schema] == nil {
			o.methods[schema] = make(map[string]validator.ValidateFunc)
		}
		o.methods[schema][name] = fn
	}
}
