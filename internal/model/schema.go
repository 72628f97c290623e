package model

// ResolvedSchema mirrors RawSchema with every reference replaced by its
// registry target. A reference with no matching registry entry resolves to
// a marker with Unresolved set and Ref retaining the dangling pointer, so
// broken descriptions stay inspectable instead of losing data.
type ResolvedSchema struct {
	Name       string
	Unresolved bool
	Ref        string

	Type        SchemaType
	Format      string
	Description string
	Enum        []any
	Default     any

	Properties           map[string]*ResolvedSchema
	Required             []string
	Items                *ResolvedSchema
	AdditionalProperties *ResolvedSchema

	AllOf []*ResolvedSchema
	OneOf []*ResolvedSchema
	AnyOf []*ResolvedSchema
}

type SchemaType string

const (
	TypeString  SchemaType = "string"
	TypeNumber  SchemaType = "number"
	TypeInteger SchemaType = "integer"
	TypeBoolean SchemaType = "boolean"
	TypeArray   SchemaType = "array"
	TypeObject  SchemaType = "object"
	TypeNull    SchemaType = "null"
)

// IsNumeric reports whether values of this schema render as numbers.
func (s *ResolvedSchema) IsNumeric() bool {
	return s != nil && (s.Type == TypeNumber || s.Type == TypeInteger)
}

// IsDateTime reports whether this schema describes a timestamp string.
func (s *ResolvedSchema) IsDateTime() bool {
	return s != nil && s.Type == TypeString && (s.Format == "date-time" || s.Format == "date")
}
