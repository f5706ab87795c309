package api

import "github.com/dmitrymomot/incoming/pkg/validator"

// SchemaInfo describes a schema to API clients.
type SchemaInfo struct {
	Name            string      `json:"name"`
	RequiredDefault bool        `json:"required_default"`
	Strict          bool        `json:"strict"`
	Recursive       bool        `json:"recursive,omitempty"`
	Fields          []FieldInfo `json:"fields"`
}

// FieldInfo describes one declared field. Required is omitted when the field
// follows the schema default.
type FieldInfo struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Required *bool  `json:"required,omitempty"`
}

func describe(s *validator.Schema) SchemaInfo {
	info := SchemaInfo{
		Name:            s.Name(),
		RequiredDefault: s.RequiredDefault(),
		Strict:          s.Strict(),
		Recursive:       s.Recursive(),
	}
	for _, name := range s.Fields() {
		rule, _ := s.Rule(name)
		fi := FieldInfo{Name: name, Kind: rule.Kind().String()}
		if required, ok := rule.IsRequired(); ok {
			fi.Required = &required
		}
		info.Fields = append(info.Fields, fi)
	}
	return info
}
