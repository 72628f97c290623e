package model

// DataShape is the closed set of presentation verdicts for a runtime
// response payload.
type DataShape string

const (
	ShapeEmpty      DataShape = "empty"
	ShapeScalar     DataShape = "scalar"
	ShapeSummary    DataShape = "summary"
	ShapeList       DataShape = "list"
	ShapeTimeSeries DataShape = "time-series"
	ShapeEventLog   DataShape = "event-log"
)

// DetectedFields names the canonical roles inferred from a sample of
// record-like items. Role fields are empty when no candidate matched.
type DetectedFields struct {
	ID          string
	Date        string
	Description string
	Type        string
	Actor       string
	Metrics     []string
	All         []string
}

// ClassifiedData is the classifier's verdict for one response payload.
// Data is the raw decoded payload, untouched; Items is the extracted
// record collection when one was found.
type ClassifiedData struct {
	Shape  DataShape
	Fields DetectedFields
	Data   any
	Items  []any
	Title  string
}
