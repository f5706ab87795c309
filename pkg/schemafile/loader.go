package schemafile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/incoming/pkg/validator"
)

// Parse decodes a YAML or JSON schema document. Unknown keys are rejected.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, errors.Join(ErrFailedToParse, err)
	}
	if len(doc.Schemas) == 0 {
		return nil, ErrEmptyDocument
	}
	return &doc, nil
}

// Define adds every schema of the document to reg. The registry still has
// to be built.
func (d *Document) Define(reg *validator.Registry, opts ...Option) error {
	return d.define(reg, newOptions(opts))
}

func (d *Document) define(reg *validator.Registry, o *options) error {
	for _, sd := range d.Schemas {
		fields := make([]validator.Field, 0, len(sd.Fields))
		for _, fd := range sd.Fields {
			rule, err := buildRule(fd, o)
			if err != nil {
				return fmt.Errorf("%w: schema %q, field %q: %w", ErrInvalidDocument, sd.Name, fd.Name, err)
			}
			fields = append(fields, validator.Field{Name: fd.Name, Rule: rule})
		}

		if err := reg.Define(sd.Name, fields, sd.options(o)...); err != nil {
			return err
		}
	}
	return nil
}

func (sd SchemaDoc) options(o *options) []validator.SchemaOption {
	opts := []validator.SchemaOption{
		validator.StrictMode(sd.Strict),
		validator.StrictError(sd.StrictError),
		validator.RequiredError(sd.RequiredError),
	}
	if sd.Required != nil {
		opts = append(opts, validator.RequiredByDefault(*sd.Required))
	}
	for name, fn := range o.methods[sd.Name] {
		opts = append(opts, validator.WithMethod(name, fn))
	}
	return opts
}

// Load parses a single document and returns its built registry.
func Load(r io.Reader, opts ...Option) (*validator.Registry, error) {
	doc, err := Parse(r)
	if err != nil {
		return nil, err
	}

	reg := validator.NewRegistry()
	if err := doc.Define(reg, opts...); err != nil {
		return nil, err
	}
	if err := reg.Build(); err != nil {
		return nil, err
	}
	return reg, nil
}

// LoadFile is Load for the document stored at path.
func LoadFile(path string, opts ...Option) (*validator.Registry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	reg, err := Load(bytes.NewReader(content), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

// Raw is an unparsed schema document. Name identifies it in error messages.
type Raw struct {
	Name    string
	Content []byte
}

// LoadRaw loads every document into a single registry, so schemas may
// reference schemas declared in other documents. Documents are defined in
// the given order.
func LoadRaw(docs []Raw, opts ...Option) (*validator.Registry, error) {
	if len(docs) == 0 {
		return nil, ErrEmptyDocument
	}

	o := newOptions(opts)
	reg := validator.NewRegistry()
	for _, raw := range docs {
		doc, err := Parse(bytes.NewReader(raw.Content))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", raw.Name, err)
		}
		if err := doc.define(reg, o); err != nil {
			return nil, fmt.Errorf("%s: %w", raw.Name, err)
		}
	}

	if err := reg.Build(); err != nil {
		return nil, err
	}
	return reg, nil
}

// ReadFS reads every file of fsys matching pattern, in lexical order.
func ReadFS(fsys fs.FS, pattern string) ([]Raw, error) {
	names, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoFilesMatched, pattern)
	}

	docs := make([]Raw, 0, len(names))
	for _, name := range names {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		docs = append(docs, Raw{Name: name, Content: content})
	}
	return docs, nil
}

// LoadFS loads every file of fsys matching pattern into a single registry.
func LoadFS(fsys fs.FS, pattern string, opts ...Option) (*validator.Registry, error) {
	docs, err := ReadFS(fsys, pattern)
	if err != nil {
		return nil, err
	}
	return LoadRaw(docs, opts...)
}
