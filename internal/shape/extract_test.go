package shape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractItems(t *testing.T) {
	tests := []struct {
		name     string
		payload  any
		expected []any
		found    bool
	}{
		{"nil payload", nil, nil, false},
		{"payload is a list", []any{1.0, 2.0}, []any{1.0, 2.0}, true},
		{"empty list", []any{}, []any{}, true},
		{"data envelope", map[string]any{"data": []any{"a"}}, []any{"a"}, true},
		{"items envelope", map[string]any{"items": []any{"a"}}, []any{"a"}, true},
		{"results envelope", map[string]any{"total": 2.0, "results": []any{"a", "b"}}, []any{"a", "b"}, true},
		{"data wins over results", map[string]any{"results": []any{"r"}, "data": []any{"d"}}, []any{"d"}, true},
		{"non-list envelope value skipped", map[string]any{"data": "nope", "items": []any{"a"}}, []any{"a"}, true},
		{"no collection", map[string]any{"total": 10.0, "page": 1.0}, nil, false},
		{"scalar", 42, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, found := ExtractItems(tt.payload)
			require.Equal(t, tt.found, found)
			require.Equal(t, tt.expected, items)
		})
	}
}

func TestExtractItemsDoesNotMutate(t *testing.T) {
	payload := map[string]any{"data": []any{"a", "b"}, "page": 1.0}

	_, found := ExtractItems(payload)

	require.True(t, found)
	require.Equal(t, map[string]any{"data": []any{"a", "b"}, "page": 1.0}, payload)
}
