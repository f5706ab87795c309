// Package validator validates decoded JSON payloads against declarative
// schemas and reports every problem it finds, keyed by field name.
//
// A Schema is an ordered set of fields, each bound to a Rule, plus two
// policies: whether fields are required by default and whether keys the
// schema does not declare are rejected (strict mode). A Validator runs a
// schema against a payload.Payload and returns a Result whose Report maps
// field names to the messages collected for them.
//
// # Architecture
//
// Rules come in a closed set of kinds:
//   - Integer, Float, Number, String, Array, Boolean: type checks
//   - Function and Method: caller-supplied predicates with access to the whole payload
//   - JSON and JSONRef: delegate an object value to a nested schema
//   - NewRule: custom predicates, used by the rule families in
//     string_rules.go, numeric_rules.go, format_rules.go and friends
//
// Schemas are compiled once by NewSchema or Registry.Build: rules are copied,
// method names are bound and nested schema references are resolved. After
// that a schema is immutable and a Validator holds no per-call state, so both
// are safe for concurrent use. Every validation pass writes into its own
// Errors collector.
//
// # Usage
//
//	address := validator.MustSchema("address", []validator.Field{
//	    {Name: "street", Rule: validator.String()},
//	    {Name: "pincode", Rule: validator.Integer()},
//	})
//	person := validator.MustSchema("person", []validator.Field{
//	    {Name: "name", Rule: validator.String()},
//	    {Name: "address", Rule: validator.JSON(address)},
//	}, validator.StrictMode(true))
//
//	res := validator.New(person).Validate(p)
//	if !res.Valid {
//	    // {"address": ["Expected JSON.", {"pincode": ["Expected an integer."]}]}
//	}
//
// Schemas referring to each other by name, including themselves, are built
// together with a Registry. Recursive schemas are allowed; the validator
// stops descending at WithMaxDepth levels and records DepthExceededMessage.
//
// # Error Handling
//
// Schema construction errors wrap ErrInvalidSchema and never describe payload
// data. Data problems never produce a Go error from Validate: they are
// collected in the Report, which itself implements error and matches
// ErrValidationFailed with errors.Is. Use ExtractReport to recover it from a
// wrapped error.
package validator
