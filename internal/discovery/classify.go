package discovery

import "github.com/opsdeck/opsdeck/internal/model"

// ClassifyOperation assigns an operation type from the method and the
// stripped path template. The table is ordered; the first matching row
// wins. "Nested" means more than one literal segment remains after
// removing parameters and at least one parameter is present.
func ClassifyOperation(method model.Method, path string) model.OperationType {
	segs := segments(path)
	var literals, params int
	for _, s := range segs {
		if isParam(s) {
			params++
		} else {
			literals++
		}
	}
	trailingParam := len(segs) > 0 && isParam(segs[len(segs)-1])
	nested := literals > 1 && params >= 1

	switch method {
	case model.MethodGet:
		switch {
		case params == 0:
			return model.OpList
		case trailingParam && literals == 1:
			return model.OpDetail
		case trailingParam && literals > 1:
			return model.OpSubDetail
		case !trailingParam:
			return model.OpSubList
		}
	case model.MethodPost:
		switch {
		case params == 0 && len(segs) == 1:
			return model.OpCreate
		case params >= 1 && nested:
			return model.OpSubAction
		case params >= 1:
			return model.OpAction
		case len(segs) > 1:
			// Bare operation endpoint such as POST /cache/flush.
			return model.OpAction
		}
	case model.MethodPatch, model.MethodPut:
		switch {
		case trailingParam && !nested:
			return model.OpUpdate
		case trailingParam || params >= 1:
			return model.OpSubAction
		}
	case model.MethodDelete:
		switch {
		case trailingParam && !nested:
			return model.OpDelete
		case nested:
			return model.OpSubAction
		default:
			return model.OpAction
		}
	}
	return model.OpCustom
}
