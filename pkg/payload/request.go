package payload

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// MaxBodySize is the maximum accepted request body size (1MB).
const MaxBodySize = 1 << 20

// FromRequest decodes the JSON object in the request body.
func FromRequest(r *http.Request) (Payload, error) {
	ctx := r.Context()
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrDecode, ctx.Err())
	default:
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: expected application/json", ErrMissingContentType)
	}

	// Extract media type without parameters
	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(contentType[:idx])
	}
	if mediaType != "application/json" {
		return nil, fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
	}

	if r.Body == nil {
		return nil, fmt.Errorf("%w: empty body", ErrDecode)
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read request body: %v", ErrDecode, err)
	}
	if len(body) > MaxBodySize {
		return nil, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, MaxBodySize)
	}

	return Decode(bytes.NewReader(body))
}
