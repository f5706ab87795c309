// Package payload defines the dynamically typed data tree validated by
// package validator and the decoders that produce it.
//
// A Payload is a map from field name to value, where a value is an integer,
// a float, a string, a boolean, an array ([]any) or a nested object
// (map[string]any). KindOf classifies any value into one of these kinds.
//
// # Decoding
//
// Go's encoding/json turns every number into float64 which erases the
// integer/float distinction the validator relies on. Decode keeps it by
// decoding with UseNumber and normalizing each number into int64 or float64:
//
//	p, err := payload.Decode(strings.NewReader(`{"age": 23, "score": 4.5}`))
//	// p["age"] is int64(23), p["score"] is float64(4.5)
//
// DecodeYAML does the same for YAML documents and FromRequest reads a JSON
// request body with content-type and size checks.
//
// # Error Handling
//
// All errors wrap one of the exported sentinels (ErrDecode, ErrNotObject,
// ErrMissingContentType, ErrUnsupportedMediaType, ErrBodyTooLarge) and can be
// matched with errors.Is.
package payload
