package discovery

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPathParams(t *testing.T) {
	tests := []struct {
		path     string
		expected []string
	}{
		{"/users", nil},
		{"/users/{userId}", []string{"userId"}},
		{"/users/{userId}/credits/{creditId}", []string{"userId", "creditId"}},
		{"/{a}/{b}", []string{"a", "b"}},
		{"/users/{userId/credits", nil},
		{"/users/{}", nil},
		{"/", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.expected, PathParams(tt.path))
		})
	}
}

func TestResourceKey(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/users", "users"},
		{"/users/{userId}", "users"},
		{"/users/{userId}/credits", "users.credits"},
		{"/users/{userId}/credits/{creditId}", "users.credits"},
		{"/{userId}", "root"},
		{"/{a}/{b}", "root"},
		{"/", "root"},
		{"/a//b", "a.b"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.expected, ResourceKey(tt.path))
		})
	}
}

func TestResourceKeyDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		require.Equal(t, "users.credits", ResourceKey("/users/{userId}/credits"))
	}
}
