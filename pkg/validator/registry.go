package validator

import "fmt"

// Registry builds a group of schemas that reference each other by name,
// including forward and mutual references. Define every schema, then call
// Build once; Lookup is valid after a successful Build.
//
// A Registry is not safe for concurrent Define calls. The schemas it builds
// are.
type Registry struct {
	defs    []definition
	index   map[string]int
	schemas map[string]*Schema
	built   bool
}

type definition struct {
	name   string
	fields []Field
	opts   []SchemaOption
}

func NewRegistry() *Registry {
	return &Registry{
		index:   make(map[string]int),
		schemas: make(map[string]*Schema),
	}
}

// Define records a schema declaration. Errors in the declaration itself are
// reported by Build.
func (r *Registry) Define(name string, fields []Field, opts ...SchemaOption) error {
	if r.built {
		return fmt.Errorf("%w: cannot define %q", ErrRegistryBuilt, name)
	}
	if name == "" {
		return schemaError(name, "", ErrEmptyName)
	}
	if _, dup := r.index[name]; dup {
		return schemaError(name, "", ErrDuplicateSchema)
	}
	r.index[name] = len(r.defs)
	r.defs = append(r.defs, definition{name: name, fields: fields, opts: opts})
	return nil
}

// Build compiles every definition, resolves JSONRef rules across the
// registry and flags recursive schemas. Local scopes given with WithSchemas
// take precedence over registry names.
func (r *Registry) Build() error {
	if r.built {
		return ErrRegistryBuilt
	}

	built := make([]*Schema, 0, len(r.defs))
	scopes := make([]map[string]*Schema, 0, len(r.defs))
	byName := make(map[string]*Schema, len(r.defs))
	for _, d := range r.defs {
		s, scope, err := compile(d.name, d.fields, d.opts)
		if err != nil {
			return err
		}
		built = append(built, s)
		scopes = append(scopes, scope)
		byName[d.name] = s
	}

	for i, s := range built {
		scope := scopes[i]
		lookup := func(ref string) *Schema {
			if local, ok := scope[ref]; ok {
				return local
			}
			return byName[ref]
		}
		if err := s.resolve(lookup); err != nil {
			return err
		}
	}

	markRecursive(built)
	r.schemas = byName
	r.built = true
	return nil
}

// Lookup returns a built schema by name.
func (r *Registry) Lookup(name string) (*Schema, bool) {
	s, ok := r.schemas[name]
	return s, ok
}

// MustLookup is like Lookup but panics when the schema is missing.
func (r *Registry) MustLookup(name string) *Schema {
	s, ok := r.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("validator: schema %q not found in registry", name))
	}
	return s
}

// Names returns schema names in definition order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.defs))
	for i, d := range r.defs {
		names[i] = d.name
	}
	return names
}

func (r *Registry) Built() bool {
	return r.built
}
