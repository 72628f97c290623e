package shape

import (
	"fmt"
	"testing"

	"github.com/opsdeck/opsdeck/internal/model"
	"github.com/stretchr/testify/require"
)

func TestDetectRoles(t *testing.T) {
	items := []any{
		map[string]any{
			"id":        "u-1",
			"createdAt": "2024-01-01T00:00:00Z",
			"message":   "signed up",
			"status":    "active",
			"createdBy": "admin",
			"amount":    5.0,
			"balance":   100.0,
		},
		map[string]any{
			"id":        "u-2",
			"createdAt": "2024-01-02T00:00:00Z",
			"message":   "upgraded plan",
			"status":    "active",
			"createdBy": "admin",
			"amount":    7.0,
			"balance":   93.0,
		},
	}

	fields := NewDetector().Detect(items, nil)

	require.Equal(t, "id", fields.ID)
	require.Equal(t, "createdAt", fields.Date)
	require.Equal(t, "message", fields.Description)
	require.Equal(t, "status", fields.Type)
	require.Equal(t, "createdBy", fields.Actor)
	require.Equal(t, []string{"amount", "balance"}, fields.Metrics)
	require.Len(t, fields.All, 7)
}

func TestDetectDateRequiresTimestampValue(t *testing.T) {
	items := []any{
		map[string]any{"updatedAt": "yesterday"},
		map[string]any{"updatedAt": "last week"},
	}

	fields := NewDetector().Detect(items, nil)
	require.Empty(t, fields.Date)
}

func TestDetectDateAcceptsDateOnly(t *testing.T) {
	items := []any{
		map[string]any{"date": "2024-03-01"},
	}

	fields := NewDetector().Detect(items, nil)
	require.Equal(t, "date", fields.Date)
}

func TestDetectIdentifierByUniqueness(t *testing.T) {
	items := []any{
		map[string]any{"sku": "A-100", "qty": 3.0},
		map[string]any{"sku": "B-200", "qty": 3.0},
		map[string]any{"sku": "C-300", "qty": 3.0},
	}

	fields := NewDetector().Detect(items, nil)
	require.Equal(t, "sku", fields.ID)
	require.Equal(t, []string{"qty"}, fields.Metrics)
}

func TestDetectMetricsExcludeIDAndDate(t *testing.T) {
	items := []any{
		map[string]any{"id": 1.0, "createdAt": "2024-01-01T00:00:00Z", "amount": 5.0},
		map[string]any{"id": 2.0, "createdAt": "2024-01-02T00:00:00Z", "amount": 7.0},
	}

	fields := NewDetector().Detect(items, nil)

	require.Equal(t, "id", fields.ID)
	require.Equal(t, "createdAt", fields.Date)
	require.Equal(t, []string{"amount"}, fields.Metrics)
}

func TestDetectActorObject(t *testing.T) {
	items := []any{
		map[string]any{"actor": map[string]any{"name": "root", "email": "root@example.com"}},
	}

	fields := NewDetector().Detect(items, nil)
	require.Equal(t, "actor", fields.Actor)
}

func TestDetectMixedValueFieldIsNotMetric(t *testing.T) {
	items := []any{
		map[string]any{"code": 200.0},
		map[string]any{"code": "timeout"},
	}

	fields := NewDetector().Detect(items, nil)
	require.Empty(t, fields.Metrics)
}

func TestDetectSchemaHint(t *testing.T) {
	// "when" matches no date name pattern; the schema format carries it.
	schema := &model.ResolvedSchema{
		Type: model.TypeArray,
		Items: &model.ResolvedSchema{
			Type: model.TypeObject,
			Properties: map[string]*model.ResolvedSchema{
				"when": {Type: model.TypeString, Format: "date-time"},
				"ref":  {Type: model.TypeString, Format: "uuid"},
			},
		},
	}
	items := []any{
		map[string]any{"when": "2024-01-01T00:00:00Z", "ref": "a", "v": 1.0},
		map[string]any{"when": "2024-01-02T00:00:00Z", "ref": "b", "v": 2.0},
	}

	fields := NewDetector().Detect(items, schema)

	require.Equal(t, "when", fields.Date)
	require.Equal(t, "ref", fields.ID)
	require.Equal(t, []string{"v"}, fields.Metrics)
}

func TestDetectSampleBound(t *testing.T) {
	var items []any
	for i := 0; i < 500; i++ {
		items = append(items, map[string]any{"n": float64(i)})
	}
	// A field only present past the sample bound must not be seen.
	items = append(items, map[string]any{"n": 0.0, "late": "x"})

	fields := NewDetector().Detect(items, nil)
	require.Equal(t, []string{"n"}, fields.All)
}

func TestDetectDeterministic(t *testing.T) {
	items := []any{
		map[string]any{"id": "a", "type": "x", "amount": 1.0, "createdAt": "2024-01-01"},
		map[string]any{"id": "b", "type": "y", "amount": 2.0, "createdAt": "2024-01-02"},
	}

	first := NewDetector().Detect(items, nil)
	for i := 0; i < 50; i++ {
		require.Equal(t, first, NewDetector().Detect(items, nil), fmt.Sprintf("run %d", i))
	}
}

func TestDetectSkipsNonRecordItems(t *testing.T) {
	items := []any{"a", 1.0, map[string]any{"id": "x"}}

	fields := NewDetector().Detect(items, nil)
	require.Equal(t, []string{"id"}, fields.All)
}
