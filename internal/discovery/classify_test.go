package discovery

import (
	"testing"

	"github.com/opsdeck/opsdeck/internal/model"
	"github.com/stretchr/testify/require"
)

func TestClassifyOperation(t *testing.T) {
	tests := []struct {
		name     string
		method   model.Method
		path     string
		expected model.OperationType
	}{
		{"get collection", model.MethodGet, "/users", model.OpList},
		{"get nested collection no params", model.MethodGet, "/users/credits", model.OpList},
		{"get by id", model.MethodGet, "/users/{userId}", model.OpDetail},
		{"get nested by id", model.MethodGet, "/users/{userId}/credits/{creditId}", model.OpSubDetail},
		{"get child collection", model.MethodGet, "/users/{userId}/credits", model.OpSubList},
		{"get all params", model.MethodGet, "/{userId}", model.OpCustom},

		{"post collection", model.MethodPost, "/users", model.OpCreate},
		{"post nested with params", model.MethodPost, "/users/{userId}/credits", model.OpSubAction},
		{"post on id", model.MethodPost, "/users/{userId}", model.OpAction},
		{"post bare operation endpoint", model.MethodPost, "/cache/flush", model.OpAction},

		{"patch by id", model.MethodPatch, "/users/{userId}", model.OpUpdate},
		{"put by id", model.MethodPut, "/users/{userId}", model.OpUpdate},
		{"patch nested by id", model.MethodPatch, "/users/{userId}/flags/{flagId}", model.OpSubAction},
		{"patch trailing literal", model.MethodPatch, "/users/{userId}/suspend", model.OpSubAction},
		{"patch no params", model.MethodPatch, "/users", model.OpCustom},

		{"delete by id", model.MethodDelete, "/users/{userId}", model.OpDelete},
		{"delete nested", model.MethodDelete, "/users/{userId}/credits/{creditId}", model.OpSubAction},
		{"delete collection", model.MethodDelete, "/users", model.OpAction},

		{"head", model.MethodHead, "/users", model.OpCustom},
		{"options", model.MethodOptions, "/users/{userId}", model.OpCustom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ClassifyOperation(tt.method, tt.path))
		})
	}
}
