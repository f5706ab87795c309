package schemafile

// Document is the root of a schema file.
type Document struct {
	Schemas []SchemaDoc `yaml:"schemas" json:"schemas"`
}

// SchemaDoc declares one named schema.
type SchemaDoc struct {
	Name          string     `yaml:"name" json:"name"`
	Required      *bool      `yaml:"required,omitempty" json:"required,omitempty"`
	Strict        bool       `yaml:"strict,omitempty" json:"strict,omitempty"`
	StrictError   string     `yaml:"strict_error,omitempty" json:"strict_error,omitempty"`
	RequiredError string     `yaml:"required_error,omitempty" json:"required_error,omitempty"`
	Fields        []FieldDoc `yaml:"fields" json:"fields"`
}

// FieldDoc declares one field and its rule. Which of the parameter keys
// apply depends on Type.
type FieldDoc struct {
	Name          string `yaml:"name" json:"name"`
	Type          string `yaml:"type" json:"type"`
	Error         string `yaml:"error,omitempty" json:"error,omitempty"`
	Required      *bool  `yaml:"required,omitempty" json:"required,omitempty"`
	RequiredError string `yaml:"required_error,omitempty" json:"required_error,omitempty"`

	// json
	Schema string `yaml:"schema,omitempty" json:"schema,omitempty"`

	// function
	Func   string `yaml:"func,omitempty" json:"func,omitempty"`
	Method string `yaml:"method,omitempty" json:"method,omitempty"`

	// one_of, one_of_fold
	Choices []string `yaml:"choices,omitempty" json:"choices,omitempty"`

	// length, number and item bounds
	Min    *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max    *float64 `yaml:"max,omitempty" json:"max,omitempty"`
	Length *int     `yaml:"length,omitempty" json:"length,omitempty"`

	// date, past_date
	Layout string `yaml:"layout,omitempty" json:"layout,omitempty"`

	// url
	Schemes []string `yaml:"schemes,omitempty" json:"schemes,omitempty"`
}
