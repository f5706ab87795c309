package payload_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/incoming/pkg/payload"
)

func newJSONRequest(body string, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestFromRequest(t *testing.T) {
	t.Parallel()

	t.Run("decodes body", func(t *testing.T) {
		req := newJSONRequest(`{"name": "test", "age": 23}`, "application/json; charset=utf-8")

		p, err := payload.FromRequest(req)
		require.NoError(t, err)
		assert.Equal(t, "test", p["name"])
		assert.Equal(t, int64(23), p["age"])
	})

	t.Run("missing content type", func(t *testing.T) {
		_, err := payload.FromRequest(newJSONRequest(`{}`, ""))
		assert.ErrorIs(t, err, payload.ErrMissingContentType)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		_, err := payload.FromRequest(newJSONRequest(`{}`, "text/plain"))
		assert.ErrorIs(t, err, payload.ErrUnsupportedMediaType)
	})

	t.Run("body too large", func(t *testing.T) {
		body := `{"data": "` + strings.Repeat("x", payload.MaxBodySize) + `"}`
		_, err := payload.FromRequest(newJSONRequest(body, "application/json"))
		assert.ErrorIs(t, err, payload.ErrBodyTooLarge)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req := newJSONRequest(`{}`, "application/json").WithContext(ctx)

		_, err := payload.FromRequest(req)
		assert.ErrorIs(t, err, payload.ErrDecode)
	})

	t.Run("array body", func(t *testing.T) {
		_, err := payload.FromRequest(newJSONRequest(`[]`, "application/json"))
		assert.ErrorIs(t, err, payload.ErrNotObject)
	})
}
