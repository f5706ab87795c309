package schemasource

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/incoming/pkg/schemafile"
	"github.com/dmitrymomot/incoming/pkg/validator"
)

// Source yields raw schema documents.
type Source interface {
	Fetch(ctx context.Context) ([]schemafile.Raw, error)
	// String names the location in logs and errors.
	String() string
}

// Load fetches every document of src and builds them into one registry.
func Load(ctx context.Context, src Source, opts ...schemafile.Option) (*validator.Registry, error) {
	docs, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	return schemafile.LoadRaw(docs, opts...)
}
