package schemasource

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/incoming/pkg/schemafile"
)

// File reads a schema document from disk. A path containing glob
// metacharacters reads every matching file in lexical order.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) String() string {
	return f.path
}

func (f *File) Fetch(ctx context.Context) ([]schemafile.Raw, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !strings.ContainsAny(f.path, "*?[") {
		doc, err := readFile(f.path)
		if err != nil {
			return nil, err
		}
		return []schemafile.Raw{doc}, nil
	}

	// Metacharacters may appear in any path element, not only the last.
	names, err := filepath.Glob(f.path)
	if err != nil {
		return nil, errors.Join(schemafile.ErrFailedToReadFile, err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %q", schemafile.ErrNoFilesMatched, f.path)
	}

	docs := make([]schemafile.Raw, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, err := readFile(name)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func readFile(path string) (schemafile.Raw, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return schemafile.Raw{}, errors.Join(ErrNotFound, schemafile.ErrFailedToReadFile, err)
		}
		return schemafile.Raw{}, errors.Join(schemafile.ErrFailedToReadFile, err)
	}
	return schemafile.Raw{Name: path, Content: content}, nil
}
