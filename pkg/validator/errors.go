package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"maps"
	"slices"
	"strings"
)

// Default schema-level messages.
const (
	DefaultRequiredError = "Expecting a value for this field."
	DefaultStrictError   = "Unexpected field."
)

var (
	// ErrValidationFailed matches any Report with errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidSchema wraps every schema construction error. It never
	// describes payload data.
	ErrInvalidSchema = errors.New("invalid schema")

	ErrNoFields              = errors.New("no fields defined")
	ErrDuplicateField        = errors.New("duplicate field")
	ErrEmptyName             = errors.New("empty name")
	ErrMissingPredicate      = errors.New("rule has no predicate")
	ErrFunctionMisconfigured = errors.New("function rule needs exactly one of a function or a method name")
	ErrUnknownMethod         = errors.New("unknown method")
	ErrUnresolvedSchema      = errors.New("unresolved nested schema")
	ErrDuplicateSchema       = errors.New("duplicate schema")
	ErrRegistryBuilt         = errors.New("registry already built")
)

// Entry is one reported item for a field: a message, or the report of a
// nested schema.
type Entry struct {
	Message string
	Nested  Report
}

func (e Entry) IsNested() bool {
	return e.Nested != nil
}

// MarshalJSON encodes a message entry as a string and a nested entry as
// the nested report object.
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.Nested != nil {
		return json.Marshal(e.Nested)
	}
	return json.Marshal(e.Message)
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var nested Report
		if err := json.Unmarshal(data, &nested); err != nil {
			return err
		}
		*e = Entry{Nested: nested}
		return nil
	}
	var msg string
	if err := json.Unmarshal(data, &msg); err != nil {
		return err
	}
	*e = Entry{Message: msg}
	return nil
}

// Report is the outcome of a failed validation: field name to the ordered
// entries reported for it. Fields without entries never appear.
type Report map[string][]Entry

// Error implements the error interface. Nested reports are flattened into
// dotted paths.
func (r Report) Error() string {
	if len(r) == 0 {
		return ErrValidationFailed.Error()
	}

	var parts []string
	r.walk("", func(path, msg string) {
		parts = append(parts, path+": "+msg)
	})
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (r Report) Is(target error) bool {
	return target == ErrValidationFailed
}

func (r Report) walk(prefix string, fn func(path, msg string)) {
	for _, field := range r.Fields() {
		path := field
		if prefix != "" {
			path = prefix + "." + field
		}
		for _, e := range r[field] {
			if e.Nested != nil {
				e.Nested.walk(path, fn)
				continue
			}
			fn(path, e.Message)
		}
	}
}

func (r Report) Has(field string) bool {
	return len(r[field]) > 0
}

// Messages returns the plain messages reported for field, skipping nested reports.
func (r Report) Messages(field string) []string {
	var messages []string
	for _, e := range r[field] {
		if e.Nested == nil {
			messages = append(messages, e.Message)
		}
	}
	return messages
}

// Nested returns the nested report recorded for field, or nil.
func (r Report) Nested(field string) Report {
	for _, e := range r[field] {
		if e.Nested != nil {
			return e.Nested
		}
	}
	return nil
}

// Fields returns the failing field names in sorted order.
func (r Report) Fields() []string {
	return slices.Sorted(maps.Keys(r))
}

func (r Report) IsEmpty() bool {
	return len(r) == 0
}

func (r Report) clone() Report {
	if r == nil {
		return nil
	}
	out := make(Report, len(r))
	for field, entries := range r {
		if len(entries) == 0 {
			continue
		}
		cp := make([]Entry, len(entries))
		for i, e := range entries {
			cp[i] = Entry{Message: e.Message, Nested: e.Nested.clone()}
		}
		out[field] = cp
	}
	return out
}

// ExtractReport returns the Report wrapped in err, or nil.
func ExtractReport(err error) Report {
	if err == nil {
		return nil
	}
	var report Report
	if errors.As(err, &report) {
		return report
	}
	return nil
}

func IsValidationError(err error) bool {
	return ExtractReport(err) != nil
}

// Errors collects the messages of a single validation pass. It is not safe
// for concurrent use and must not outlive the pass that created it.
type Errors struct {
	entries map[string][]Entry
}

func NewErrors() *Errors {
	return &Errors{entries: make(map[string][]Entry)}
}

// Append adds msg after the messages already collected for key.
func (e *Errors) Append(key, msg string) {
	e.entries[key] = append(e.entries[key], Entry{Message: msg})
}

// Prepend adds msg before the messages already collected for key.
func (e *Errors) Prepend(key, msg string) {
	e.entries[key] = slices.Insert(e.entries[key], 0, Entry{Message: msg})
}

// AppendNested adds a nested schema report after the entries of key.
func (e *Errors) AppendNested(key string, nested Report) {
	e.entries[key] = append(e.entries[key], Entry{Nested: nested})
}

// Contains reports whether key has at least one entry.
func (e *Errors) Contains(key string) bool {
	return len(e.entries[key]) > 0
}

// Report returns a deep copy of the collected entries with empty keys pruned.
func (e *Errors) Report() Report {
	return Report(e.entries).clone()
}

func (e *Errors) HasErrors() bool {
	for _, entries := range e.entries {
		if len(entries) > 0 {
			return true
		}
	}
	return false
}
