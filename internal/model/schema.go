package model

type Schema struct {
	Name        string
	Description string
	Type        SchemaType
	Format      string

	// Object properties
	Properties []Property
	Required   []string

	// Array items
	Items *Schema

	// String enumeration values
	Enum []string

	// Reference to a named component
	Ref string
}

type SchemaType string

const (
	TypeString  SchemaType = "string"
	TypeNumber  SchemaType = "number"
	TypeInteger SchemaType = "integer"
	TypeBoolean SchemaType = "boolean"
	TypeArray   SchemaType = "array"
	TypeObject  SchemaType = "object"
)

type Property struct {
	Name   string
	Schema *Schema
}

// IsRequired reports whether the named property appears in the schema's
// required set.
func (s *Schema) IsRequired(property string) bool {
	for _, r := range s.Required {
		if r == property {
			return true
		}
	}
	return false
}
