// Package shape classifies arbitrary decoded JSON payloads so the console
// can pick a renderer without per-endpoint logic. Like discovery, every
// function here is a pure transformation; nothing is cached or mutated.
package shape

// envelopeKeys is the priority order of wrapper keys scanned for the
// record collection inside pagination and envelope objects.
var envelopeKeys = []string{
	"data",
	"items",
	"results",
	"records",
	"rows",
	"list",
	"entries",
	"values",
	"content",
}

// ExtractItems best-effort locates the record collection inside a decoded
// payload: the payload itself when it is a list, else the first
// list-valued envelope key of a keyed container. The second return is
// false when no collection can be found. The payload is never mutated.
func ExtractItems(payload any) ([]any, bool) {
	switch v := payload.(type) {
	case []any:
		return v, true
	case map[string]any:
		for _, key := range envelopeKeys {
			if items, ok := v[key].([]any); ok {
				return items, true
			}
		}
	}
	return nil, false
}
