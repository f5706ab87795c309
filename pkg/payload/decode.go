package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Decode reads a single JSON object from r. Integer literals become int64,
// or *big.Int when they do not fit; other numbers become float64.
func Decode(r io.Reader) (Payload, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty body", ErrDecode)
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	// Ensure the entire input was consumed
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrDecode)
	}

	obj, ok := normalize(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNotObject, KindOf(raw))
	}
	return Payload(obj), nil
}

// DecodeBytes is Decode over an in-memory document.
func DecodeBytes(data []byte) (Payload, error) {
	return Decode(bytes.NewReader(data))
}

// DecodeYAML reads a single YAML mapping from r.
func DecodeYAML(r io.Reader) (Payload, error) {
	var raw any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrDecode)
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	norm, err := normalizeYAML(raw)
	if err != nil {
		return nil, err
	}
	obj, ok := norm.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNotObject, KindOf(norm))
	}
	return Payload(obj), nil
}

func normalize(v any) any {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if b, ok := bigInteger(val); ok {
			return b
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case map[string]any:
		for k, item := range val {
			val[k] = normalize(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = normalize(item)
		}
		return val
	}
	return v
}

func normalizeYAML(v any) (any, error) {
	switch val := v.(type) {
	case int:
		return int64(val), nil
	case map[string]any:
		for k, item := range val {
			n, err := normalizeYAML(item)
			if err != nil {
				return nil, err
			}
			val[k] = n
		}
		return val, nil
	case map[any]any:
		obj := make(map[string]any, len(val))
		for k, item := range val {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: non-string object key %v", ErrDecode, k)
			}
			n, err := normalizeYAML(item)
			if err != nil {
				return nil, err
			}
			obj[key] = n
		}
		return obj, nil
	case []any:
		for i, item := range val {
			n, err := normalizeYAML(item)
			if err != nil {
				return nil, err
			}
			val[i] = n
		}
		return val, nil
	}
	return v, nil
}
