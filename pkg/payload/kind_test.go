package payload_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/incoming/pkg/payload"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  payload.Kind
	}{
		{"nil", nil, payload.Null},
		{"int", 23, payload.Integer},
		{"int64", int64(-2), payload.Integer},
		{"uint8", uint8(7), payload.Integer},
		{"float64", 2.1, payload.Float},
		{"float32", float32(2.5), payload.Float},
		{"json integer", json.Number("42"), payload.Integer},
		{"json float", json.Number("4.2"), payload.Float},
		{"json big integer", json.Number("98765432109876543210"), payload.Integer},
		{"json exponent", json.Number("1e2"), payload.Float},
		{"big int", new(big.Int).Lsh(big.NewInt(1), 80), payload.Integer},
		{"string", "test", payload.String},
		{"bool", false, payload.Boolean},
		{"array", []any{"a", 1}, payload.Array},
		{"typed slice", []string{"a"}, payload.Array},
		{"object", map[string]any{"a": 1}, payload.Object},
		{"payload", payload.Payload{"a": 1}, payload.Object},
		{"typed map", map[string]int{"a": 1}, payload.Object},
		{"bytes", []byte("raw"), payload.Unknown},
		{"struct", struct{}{}, payload.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, payload.KindOf(tt.value))
		})
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "integer", payload.Integer.String())
	assert.Equal(t, "object", payload.Object.String())
	assert.Equal(t, "unknown", payload.Kind(200).String())
}

func TestAsObject(t *testing.T) {
	t.Parallel()

	t.Run("map", func(t *testing.T) {
		obj, ok := payload.AsObject(map[string]any{"a": 1})
		assert.True(t, ok)
		assert.Equal(t, payload.Payload{"a": 1}, obj)
	})

	t.Run("typed map", func(t *testing.T) {
		obj, ok := payload.AsObject(map[string]string{"a": "b"})
		assert.True(t, ok)
		assert.Equal(t, payload.Payload{"a": "b"}, obj)
	})

	t.Run("not an object", func(t *testing.T) {
		_, ok := payload.AsObject([]any{1})
		assert.False(t, ok)

		_, ok = payload.AsObject(nil)
		assert.False(t, ok)
	})
}

func TestAsFloat(t *testing.T) {
	t.Parallel()

	f, ok := payload.AsFloat(int64(3))
	assert.True(t, ok)
	assert.Equal(t, 3.0, f)

	f, ok = payload.AsFloat(json.Number("1.5"))
	assert.True(t, ok)
	assert.Equal(t, 1.5, f)

	_, ok = payload.AsFloat("3")
	assert.False(t, ok)
}

func TestLen(t *testing.T) {
	t.Parallel()

	n, ok := payload.Len([]any{1, 2, 3})
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	n, ok = payload.Len([]string{"a"})
	assert.True(t, ok)
	assert.Equal(t, 1, n)

	_, ok = payload.Len("abc")
	assert.False(t, ok)

	_, ok = payload.Len(nil)
	assert.False(t, ok)
}
