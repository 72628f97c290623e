package model

// Document is the neutral form of a product's API description, decoupled
// from whichever library parsed it. The discovery engine consumes this and
// nothing else.
type Document struct {
	Version string
	Info    Info
	Paths   map[string]PathItem
	Schemas map[string]*RawSchema
}

type Info struct {
	Title       string
	Description string
	Version     string
}

// PathItem maps upper-case HTTP method names to raw operations. Keys that
// are not HTTP methods are skipped by discovery without diagnostics.
type PathItem map[string]RawOperation

type RawOperation struct {
	Summary     string
	Description string
	Tags        []string
	Parameters  []RawParameter
	RequestBody map[string]*RawSchema            // content type -> schema
	Responses   map[string]map[string]*RawSchema // status code -> content type -> schema
}

type RawParameter struct {
	Name     string
	In       string
	Required bool
}

// RawSchema is a structural schema fragment as found in the description.
// A fragment is either a reference (Ref != "") or an inline schema;
// references may appear at any depth.
type RawSchema struct {
	Ref string

	Type        string
	Format      string
	Description string
	Enum        []any
	Default     any

	Properties           map[string]*RawSchema
	Required             []string
	Items                *RawSchema
	AdditionalProperties *RawSchema

	AllOf []*RawSchema
	OneOf []*RawSchema
	AnyOf []*RawSchema
}
