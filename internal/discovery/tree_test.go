package discovery

import (
	"testing"

	"github.com/opsdeck/opsdeck/internal/model"
	"github.com/stretchr/testify/require"
)

func op(method model.Method, path string) model.Operation {
	return model.Operation{
		ID:          operationID(method, path),
		ResourceKey: ResourceKey(path),
		Type:        ClassifyOperation(method, path),
		Method:      method,
		Path:        path,
		PathParams:  PathParams(path),
	}
}

func TestBuildTreeSynthesizesAncestors(t *testing.T) {
	// Only the grandchild has operations; both ancestors must exist.
	roots := BuildTree([]model.Operation{
		op(model.MethodGet, "/users/{userId}/credits/{creditId}/entries"),
	})

	require.Len(t, roots, 1)
	users := roots[0]
	require.Equal(t, "users", users.Key)
	require.Empty(t, users.Operations)

	require.Len(t, users.Children, 1)
	credits := users.Children[0]
	require.Equal(t, "users.credits", credits.Key)
	require.Equal(t, "users", credits.ParentKey)
	require.Empty(t, credits.Operations)

	require.Len(t, credits.Children, 1)
	entries := credits.Children[0]
	require.Equal(t, "users.credits.entries", entries.Key)
	require.Equal(t, "entries", entries.PathSegment)
	require.Len(t, entries.Operations, 1)
}

func TestBuildTreeSiblingOrder(t *testing.T) {
	roots := BuildTree([]model.Operation{
		op(model.MethodGet, "/zones"),
		op(model.MethodGet, "/accounts"),
		op(model.MethodGet, "/users/{userId}/tokens"),
		op(model.MethodGet, "/users/{userId}/credits"),
		op(model.MethodGet, "/users"),
	})

	require.Len(t, roots, 3)
	require.Equal(t, "accounts", roots[0].Key)
	require.Equal(t, "users", roots[1].Key)
	require.Equal(t, "zones", roots[2].Key)

	users := roots[1]
	require.Len(t, users.Children, 2)
	require.Equal(t, "users.credits", users.Children[0].Key)
	require.Equal(t, "users.tokens", users.Children[1].Key)
}

func TestRequiresParentID(t *testing.T) {
	ops := []model.Operation{
		op(model.MethodGet, "/users"),
		op(model.MethodGet, "/users/{userId}"),
		op(model.MethodGet, "/users/{userId}/credits"),
		op(model.MethodGet, "/reports/daily"),
	}

	roots := BuildTree(ops)

	var users, reports *model.Resource
	for _, r := range roots {
		switch r.Key {
		case "users":
			users = r
		case "reports":
			reports = r
		}
	}

	require.NotNil(t, users)
	require.False(t, users.RequiresParentID)
	require.Len(t, users.Children, 1)
	require.True(t, users.Children[0].RequiresParentID)

	require.NotNil(t, reports)
	require.False(t, reports.RequiresParentID)
	require.False(t, reports.Children[0].RequiresParentID)
}

func TestRequiresParentIDFromDescendantPaths(t *testing.T) {
	// No operation targets "users" directly under a parameter, but a
	// descendant path places a parameter before the "credits" segment.
	roots := BuildTree([]model.Operation{
		op(model.MethodGet, "/users/{userId}/credits/{creditId}/entries"),
	})

	users := roots[0]
	credits := users.Children[0]
	entries := credits.Children[0]

	require.False(t, users.RequiresParentID)
	require.True(t, credits.RequiresParentID)
	require.True(t, entries.RequiresParentID)
}

func TestResourceNames(t *testing.T) {
	roots := BuildTree([]model.Operation{
		op(model.MethodGet, "/api_keys"),
		op(model.MethodGet, "/userAccounts"),
	})

	require.Equal(t, "API Keys", roots[0].Name)
	require.Equal(t, "User Accounts", roots[1].Name)
}
