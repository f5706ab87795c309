package schemafile

import "errors"

var (
	ErrFailedToReadFile = errors.New("failed to read schema file")
	ErrFailedToParse    = errors.New("failed to parse schema document")
	ErrEmptyDocument    = errors.New("schema document declares no schemas")
	ErrNoFilesMatched   = errors.New("no schema files matched")

	// ErrInvalidDocument wraps field declaration problems found while
	// turning a document into rules.
	ErrInvalidDocument = errors.New("invalid schema document")
	ErrUnknownType     = errors.New("unknown field type")
	ErrUnknownFunc     = errors.New("unknown function")
	ErrMissingParam    = errors.New("missing rule parameter")
	ErrInvalidParam    = errors.New("invalid rule parameter")
)
