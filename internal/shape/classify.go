package shape

import "github.com/opsdeck/opsdeck/internal/model"

// Classify runs the full classification pipeline with the default
// detector. The title is a passthrough for the renderer and never feeds
// classification.
func Classify(payload any, schema *model.ResolvedSchema, title string) model.ClassifiedData {
	return NewDetector().Classify(payload, schema, title)
}

// Classify turns one decoded response payload into a shape verdict.
//
// The orchestration order and its tie-breaks are exact contracts: a nil
// payload and an empty list are empty; a non-container value is a scalar;
// an object with no extractable collection, or a single extracted record
// from a non-list payload, is a summary; otherwise field detection decides
// between time-series, event-log, and plain list.
func (d *Detector) Classify(payload any, schema *model.ResolvedSchema, title string) model.ClassifiedData {
	out := model.ClassifiedData{Data: payload, Title: title}

	if payload == nil {
		out.Shape = model.ShapeEmpty
		return out
	}

	list, isList := payload.([]any)
	if isList && len(list) == 0 {
		out.Shape = model.ShapeEmpty
		return out
	}

	if _, isObject := payload.(map[string]any); !isObject && !isList {
		out.Shape = model.ShapeScalar
		return out
	}

	items, found := ExtractItems(payload)
	if !found && !isList {
		// The whole object is one record.
		out.Shape = model.ShapeSummary
		return out
	}

	out.Items = items
	if len(items) == 1 && !isList {
		out.Shape = model.ShapeSummary
		return out
	}

	fields := d.Detect(items, schema)
	out.Fields = fields

	switch {
	case fields.Date != "" && len(fields.Metrics) >= 1 && len(fields.Metrics) >= otherFieldCount(fields):
		out.Shape = model.ShapeTimeSeries
	case fields.Date != "" && fields.Description != "":
		out.Shape = model.ShapeEventLog
	default:
		out.Shape = model.ShapeList
	}
	return out
}

// otherFieldCount counts the fields that are neither the date field nor
// metrics; the time-series verdict requires at least as many metrics.
func otherFieldCount(fields model.DetectedFields) int {
	metrics := make(map[string]bool, len(fields.Metrics))
	for _, m := range fields.Metrics {
		metrics[m] = true
	}
	count := 0
	for _, name := range fields.All {
		if name == fields.Date || metrics[name] {
			continue
		}
		count++
	}
	return count
}
