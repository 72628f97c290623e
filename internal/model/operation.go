package model

// Operation is one (method, path) pair under the admin prefix, with its
// classification and resolved request/response schemas. ID is derived from
// method and path so re-parsing the same description yields the same IDs.
type Operation struct {
	ID          string
	ResourceKey string
	Type        OperationType
	Method      Method
	Path        string   // stripped path template, admin prefix removed
	PathParams  []string // parameter names, left to right

	RequestSchema  *ResolvedSchema
	ResponseSchema *ResolvedSchema

	Summary     string
	Description string
	Tags        []string
}

type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodPatch   Method = "PATCH"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
	MethodTrace   Method = "TRACE"
)

// Methods lists the HTTP methods discovery recognizes, in the order
// operations are emitted for a single path.
var Methods = []Method{
	MethodGet,
	MethodPost,
	MethodPut,
	MethodDelete,
	MethodPatch,
	MethodHead,
	MethodOptions,
	MethodTrace,
}

// OperationType is the closed set of operation kinds the console renders.
type OperationType string

const (
	OpList      OperationType = "list"
	OpDetail    OperationType = "detail"
	OpSubList   OperationType = "sub-list"
	OpSubDetail OperationType = "sub-detail"
	OpCreate    OperationType = "create"
	OpUpdate    OperationType = "update"
	OpDelete    OperationType = "delete"
	OpAction    OperationType = "action"
	OpSubAction OperationType = "sub-action"
	OpCustom    OperationType = "custom"
)

// Mutates reports whether the operation changes server state, which the
// console uses to gate confirmation prompts.
func (t OperationType) Mutates() bool {
	switch t {
	case OpList, OpDetail, OpSubList, OpSubDetail, OpCustom:
		return false
	case OpCreate, OpUpdate, OpDelete, OpAction, OpSubAction:
		return true
	}
	return false
}
