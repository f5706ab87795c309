package payload

import "errors"

var (
	ErrDecode               = errors.New("failed to decode payload")
	ErrNotObject            = errors.New("payload must be an object")
	ErrMissingContentType   = errors.New("missing content type")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrBodyTooLarge         = errors.New("payload body too large")
)
