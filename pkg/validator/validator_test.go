package validator_test

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/incoming/pkg/logger"
	"github.com/dmitrymomot/incoming/pkg/payload"
	"github.com/dmitrymomot/incoming/pkg/validator"
)

func personSchema(t *testing.T, opts ...validator.SchemaOption) *validator.Schema {
	t.Helper()
	s, err := validator.NewSchema("person", []validator.Field{
		{Name: "name", Rule: validator.String(validator.Required())},
		{Name: "age", Rule: validator.Integer(validator.Required())},
		{Name: "hobbies", Rule: validator.Array(validator.Required())},
	}, opts...)
	require.NoError(t, err)
	return s
}

func TestValidator_Scenarios(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		res := validator.New(personSchema(t)).Validate(payload.Payload{
			"name":    "test",
			"age":     int64(23),
			"hobbies": []any{"x"},
		})
		assert.True(t, res.Valid)
		assert.Nil(t, res.Errors)
		assert.NoError(t, res.Err())
	})

	t.Run("missing required field", func(t *testing.T) {
		res := validator.New(personSchema(t)).Validate(payload.Payload{
			"name": "test",
			"age":  int64(23),
		})
		assert.False(t, res.Valid)
		assert.Equal(t, validator.Report{
			"hobbies": {{Message: "Expecting a value for this field."}},
		}, res.Errors)
		assert.ErrorIs(t, res.Err(), validator.ErrValidationFailed)
	})

	t.Run("strict schema rejects extra key", func(t *testing.T) {
		res := validator.New(personSchema(t, validator.StrictMode(true))).Validate(payload.Payload{
			"name":    "test",
			"age":     int64(23),
			"hobbies": []any{},
			"extra":   true,
		})
		assert.False(t, res.Valid)
		assert.Equal(t, []string{"Unexpected field."}, res.Errors.Messages("extra"))
	})

	t.Run("optional field may be absent", func(t *testing.T) {
		s := validator.MustSchema("age", []validator.Field{
			{Name: "age", Rule: validator.Integer(validator.Optional())},
		})
		res := validator.New(s).Validate(payload.Payload{})
		assert.True(t, res.Valid)
		assert.Nil(t, res.Errors)
	})

	t.Run("nested schema failure", func(t *testing.T) {
		address := validator.MustSchema("address", []validator.Field{
			{Name: "pincode", Rule: validator.Integer()},
		})
		parent := validator.MustSchema("parent", []validator.Field{
			{Name: "address", Rule: validator.JSON(address)},
		})

		res := validator.New(parent).Validate(payload.Payload{
			"address": map[string]any{"pincode": "123"},
		})
		require.False(t, res.Valid)
		require.Len(t, res.Errors["address"], 2)
		assert.Equal(t, validator.JSONMessage, res.Errors["address"][0].Message)
		assert.Equal(t, validator.Report{
			"pincode": {{Message: "Expected an integer."}},
		}, res.Errors["address"][1].Nested)
	})
}

func TestValidator_TypeRules(t *testing.T) {
	tests := []struct {
		name  string
		rule  *validator.Rule
		value any
		valid bool
		msg   string
	}{
		{"integer accepts int64", validator.Integer(), int64(1), true, ""},
		{"integer rejects float", validator.Integer(), 1.5, false, validator.IntegerMessage},
		{"integer rejects bool", validator.Integer(), true, false, validator.IntegerMessage},
		{"float accepts float64", validator.Float(), 1.5, true, ""},
		{"float rejects integer", validator.Float(), int64(1), false, validator.FloatMessage},
		{"number accepts integer", validator.Number(), 3, true, ""},
		{"number accepts float", validator.Number(), 3.5, true, ""},
		{"number rejects string", validator.Number(), "3", false, validator.NumberMessage},
		{"string accepts string", validator.String(), "x", true, ""},
		{"string rejects nil", validator.String(), nil, false, validator.StringMessage},
		{"array accepts slice", validator.Array(), []any{1}, true, ""},
		{"array rejects object", validator.Array(), map[string]any{}, false, validator.ArrayMessage},
		{"boolean accepts bool", validator.Boolean(), false, true, ""},
		{"boolean rejects integer", validator.Boolean(), int64(0), false, validator.BooleanMessage},
		{"custom message", validator.String(validator.Message("Name please.")), 1, false, "Name please."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validator.MustSchema("s", []validator.Field{{Name: "f", Rule: tt.rule}})
			res := validator.New(s).Validate(payload.Payload{"f": tt.value})
			assert.Equal(t, tt.valid, res.Valid)
			if !tt.valid {
				assert.Equal(t, []string{tt.msg}, res.Errors.Messages("f"))
			}
		})
	}
}

func TestValidator_DecodedIntegers(t *testing.T) {
	s := validator.MustSchema("s", []validator.Field{
		{Name: "n", Rule: validator.Integer()},
		{Name: "x", Rule: validator.Number()},
	})

	p, err := payload.DecodeBytes([]byte(`{"n": 12345678901234567890, "x": -98765432109876543210}`))
	require.NoError(t, err)
	res := validator.New(s).Validate(p)
	assert.True(t, res.Valid, res.Errors)

	p, err = payload.DecodeBytes([]byte(`{"n": 1e3, "x": 1}`))
	require.NoError(t, err)
	res = validator.New(s).Validate(p)
	assert.Equal(t, []string{validator.IntegerMessage}, res.Errors.Messages("n"))
}

func TestValidator_Strict(t *testing.T) {
	p := payload.Payload{"name": "x", "age": int64(1), "hobbies": []any{}, "extra": 1}

	t.Run("non strict ignores extra keys", func(t *testing.T) {
		res := validator.New(personSchema(t)).Validate(p)
		assert.True(t, res.Valid)
	})

	t.Run("call override enables strict mode", func(t *testing.T) {
		res := validator.New(personSchema(t)).Validate(p, validator.OverrideStrict(true))
		assert.False(t, res.Valid)
		assert.True(t, res.Errors.Has("extra"))
	})

	t.Run("call override disables strict mode", func(t *testing.T) {
		s := personSchema(t, validator.StrictMode(true))
		res := validator.New(s).Validate(p, validator.OverrideStrict(false))
		assert.True(t, res.Valid)
	})

	t.Run("custom strict error", func(t *testing.T) {
		s := personSchema(t, validator.StrictMode(true), validator.StrictError("Nope."))
		res := validator.New(s).Validate(p)
		assert.Equal(t, []string{"Nope."}, res.Errors.Messages("extra"))
	})
}

func TestValidator_RequiredPrecedence(t *testing.T) {
	s := validator.MustSchema("s", []validator.Field{
		{Name: "plain", Rule: validator.String()},
		{Name: "forced", Rule: validator.String(validator.Required())},
		{Name: "optional", Rule: validator.String(validator.Optional())},
	}, validator.RequiredByDefault(false))

	t.Run("schema default applies to plain fields", func(t *testing.T) {
		res := validator.New(s).Validate(payload.Payload{})
		assert.Equal(t, []string{"forced"}, res.Errors.Fields())
	})

	t.Run("call override beats schema default", func(t *testing.T) {
		res := validator.New(s).Validate(payload.Payload{}, validator.OverrideRequired(true))
		assert.Equal(t, []string{"forced", "plain"}, res.Errors.Fields())
	})

	t.Run("field setting beats call override", func(t *testing.T) {
		res := validator.New(s).Validate(payload.Payload{"plain": "x"}, validator.OverrideRequired(false))
		assert.Equal(t, []string{"forced"}, res.Errors.Fields())
	})

	t.Run("required messages", func(t *testing.T) {
		s := validator.MustSchema("s", []validator.Field{
			{Name: "a", Rule: validator.String()},
			{Name: "b", Rule: validator.String(validator.RequiredMessage("Give me b."))},
		}, validator.RequiredError("Missing."))

		res := validator.New(s).Validate(payload.Payload{})
		assert.Equal(t, []string{"Missing."}, res.Errors.Messages("a"))
		assert.Equal(t, []string{"Give me b."}, res.Errors.Messages("b"))
	})
}

func TestValidator_FunctionRule(t *testing.T) {
	t.Run("receives value key and payload", func(t *testing.T) {
		var gotKey string
		var gotPayload payload.Payload
		s := validator.MustSchema("s", []validator.Field{
			{Name: "age", Rule: validator.Function(func(v any, key string, p payload.Payload) bool {
				gotKey, gotPayload = key, p
				n, ok := v.(int64)
				return ok && n >= 18
			})},
		})

		p := payload.Payload{"age": int64(12)}
		res := validator.New(s).Validate(p)
		assert.False(t, res.Valid)
		assert.Equal(t, []string{validator.FunctionMessage}, res.Errors.Messages("age"))
		assert.Equal(t, "age", gotKey)
		assert.Equal(t, p, gotPayload)
	})

	t.Run("optional absent field is probed with nil", func(t *testing.T) {
		var calls int
		var gotValue any = "unset"
		s := validator.MustSchema("s", []validator.Field{
			{Name: "gender", Rule: validator.String()},
			{Name: "title", Rule: validator.Function(func(v any, _ string, p payload.Payload) bool {
				calls++
				gotValue = v
				return p["gender"] == "other"
			}, validator.Optional(), validator.Message("Title needed."))},
		})

		res := validator.New(s).Validate(payload.Payload{"gender": "male"})
		assert.Equal(t, 1, calls)
		assert.Nil(t, gotValue)
		assert.Equal(t, []string{"Title needed."}, res.Errors.Messages("title"))

		res = validator.New(s).Validate(payload.Payload{"gender": "other"})
		assert.True(t, res.Valid)
	})

	t.Run("required absent field is not probed", func(t *testing.T) {
		var calls int
		s := validator.MustSchema("s", []validator.Field{
			{Name: "f", Rule: validator.Function(func(any, string, payload.Payload) bool {
				calls++
				return true
			})},
		})

		res := validator.New(s).Validate(payload.Payload{})
		assert.Zero(t, calls)
		assert.Equal(t, []string{validator.DefaultRequiredError}, res.Errors.Messages("f"))
	})

	t.Run("optional type rule is not probed", func(t *testing.T) {
		s := validator.MustSchema("s", []validator.Field{
			{Name: "f", Rule: validator.NotBlank(validator.Optional())},
		})
		assert.True(t, validator.New(s).Validate(payload.Payload{}).Valid)
	})

	t.Run("method bound at construction", func(t *testing.T) {
		s := validator.MustSchema("s", []validator.Field{
			{Name: "code", Rule: validator.Method("validateCode")},
		}, validator.WithMethod("validateCode", func(v any, _ string, _ payload.Payload) bool {
			return v == "ok"
		}))

		assert.True(t, validator.New(s).Validate(payload.Payload{"code": "ok"}).Valid)
		assert.False(t, validator.New(s).Validate(payload.Payload{"code": "bad"}).Valid)
	})
}

func TestValidator_MessageOrder(t *testing.T) {
	s := validator.MustSchema("s", []validator.Field{
		{Name: "a", Rule: validator.NewRule(func(_ any, c *validator.Context) bool {
			c.Errors.Append(c.Key, "detail")
			return false
		}, "Invalid a.")},
	})

	res := validator.New(s).Validate(payload.Payload{"a": 1})
	assert.Equal(t, []string{"Invalid a.", "detail"}, res.Errors.Messages("a"))
}

func TestValidator_Nested(t *testing.T) {
	address := validator.MustSchema("address", []validator.Field{
		{Name: "street", Rule: validator.String()},
		{Name: "pincode", Rule: validator.Integer()},
	}, validator.StrictMode(true))
	parent := validator.MustSchema("parent", []validator.Field{
		{Name: "address", Rule: validator.JSON(address)},
	})

	t.Run("nested report equals nested validator report", func(t *testing.T) {
		sub := map[string]any{"pincode": 1.5, "zip": "x"}

		own := validator.New(address).Validate(payload.Payload(sub))
		res := validator.New(parent).Validate(payload.Payload{"address": sub})

		require.False(t, own.Valid)
		assert.Equal(t, own.Errors, res.Errors.Nested("address"))
	})

	t.Run("non object value reports only type error", func(t *testing.T) {
		res := validator.New(parent).Validate(payload.Payload{"address": "Main St"})
		assert.Equal(t, validator.Report{"address": {{Message: validator.JSONMessage}}}, res.Errors)
	})

	t.Run("call overrides do not reach nested schemas", func(t *testing.T) {
		res := validator.New(parent).Validate(payload.Payload{
			"address": map[string]any{"street": "x", "pincode": int64(1), "extra": 1},
		}, validator.OverrideStrict(false))
		assert.False(t, res.Valid)
		assert.Equal(t, []string{"Unexpected field."}, res.Errors.Nested("address").Messages("extra"))
	})

	t.Run("valid nested object", func(t *testing.T) {
		res := validator.New(parent).Validate(payload.Payload{
			"address": map[string]any{"street": "x", "pincode": int64(1)},
		})
		assert.True(t, res.Valid)
	})
}

func TestValidator_MaxDepth(t *testing.T) {
	reg := validator.NewRegistry()
	require.NoError(t, reg.Define("node", []validator.Field{
		{Name: "value", Rule: validator.Integer()},
		{Name: "child", Rule: validator.JSONRef("node", validator.Optional())},
	}))
	require.NoError(t, reg.Build())
	node := reg.MustLookup("node")

	deep := payload.Payload{"value": int64(1)}
	for range 3 {
		deep = payload.Payload{"value": int64(1), "child": map[string]any(deep)}
	}

	t.Run("within limit", func(t *testing.T) {
		assert.True(t, validator.New(node).Validate(deep).Valid)
	})

	t.Run("past limit", func(t *testing.T) {
		res := validator.New(node, validator.WithMaxDepth(2)).Validate(deep)
		require.False(t, res.Valid)

		level := res.Errors
		for range 2 {
			level = level.Nested("child")
			require.NotNil(t, level)
		}
		assert.Equal(t, []string{validator.JSONMessage, validator.DepthExceededMessage}, level.Messages("child"))
	})
}

func TestValidator_Determinism(t *testing.T) {
	s := personSchema(t, validator.StrictMode(true))
	p := payload.Payload{"name": 1, "age": "x", "a": 1, "b": 2, "c": 3}
	v := validator.New(s)

	first := v.Validate(p)
	for range 10 {
		assert.Equal(t, first, v.Validate(p))
	}

	valid := payload.Payload{"name": "x", "age": int64(1), "hobbies": []any{}}
	assert.True(t, v.Validate(valid).Valid)
	assert.True(t, v.Validate(valid).Valid)
}

func TestValidator_Concurrent(t *testing.T) {
	v := validator.New(personSchema(t))
	valid := payload.Payload{"name": "x", "age": int64(1), "hobbies": []any{}}
	invalid := payload.Payload{"name": 1}

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				assert.True(t, v.Validate(valid).Valid)
				return
			}
			res := v.Validate(invalid)
			assert.Equal(t, []string{"age", "hobbies", "name"}, res.Errors.Fields())
		}(i)
	}
	wg.Wait()
}

func TestValidator_Logging(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))

	v := validator.New(personSchema(t), validator.WithLogger(log))
	v.Validate(payload.Payload{})

	out := buf.String()
	assert.Contains(t, out, `"schema":"person"`)
	assert.Contains(t, out, `"valid":false`)
	assert.Contains(t, out, `"failed_fields":3`)
	assert.Contains(t, out, `"field":"age"`)

	buf.Reset()
	v.Validate(payload.Payload{"name": "Ann", "age": int64(30), "hobbies": []any{}})
	assert.Contains(t, buf.String(), `"valid":true`)
	assert.NotContains(t, buf.String(), `"field"`)
}

func TestNew_NilSchema(t *testing.T) {
	assert.Panics(t, func() { validator.New(nil) })
}
