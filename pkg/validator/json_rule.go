package validator

import "github.com/dmitrymomot/incoming/pkg/payload"

// JSONMessage is the default message of nested schema rules.
const JSONMessage = "Expected JSON."

// DepthExceededMessage is recorded instead of descending past the
// validator's maximum nesting depth.
const DepthExceededMessage = "Maximum nesting depth exceeded."

// JSON creates a rule validating an object value against the nested schema.
//
// When the nested object is invalid, the nested report is appended under the
// field key after the rule's own message:
//
//	{"address": ["Expected JSON.", {"pincode": ["Expected an integer."]}]}
func JSON(s *Schema, opts ...RuleOption) *Rule {
	r := newRule(KindJSON, nil, JSONMessage, opts)
	r.schema = s
	return r
}

// JSONRef is JSON with the nested schema referenced by name. The reference is
// resolved when the owning schema is built: against schemas given with
// WithSchemas, the owning schema itself, or the other schemas of a Registry.
func JSONRef(name string, opts ...RuleOption) *Rule {
	r := newRule(KindJSON, nil, JSONMessage, opts)
	r.ref = name
	return r
}

func validateNested(s *Schema, value any, c *Context) bool {
	obj, ok := payload.AsObject(value)
	if !ok {
		return false
	}
	if c.depth+1 > c.maxDepth {
		c.Errors.Append(c.Key, DepthExceededMessage)
		return false
	}

	res := run(s, obj, overrides{}, c.depth+1, c.maxDepth)
	if res.Valid {
		return true
	}
	c.Errors.AppendNested(c.Key, res.Errors)
	return false
}
