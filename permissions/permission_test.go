package permissions_test

import (
	"testing"

	"choreboard/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	createType := data.FindPermissions("/chore-types/create", "POST")
	assert.Equal(t, []string{"admin"}, createType.Permissions)

	assert.True(t, data.FindPermissions("/health", "GET").Skip)

	missing := data.FindPermissions("/chores", "GET")
	assert.Empty(t, missing.Permissions)
	assert.Equal(t, "/chores", missing.Path)
}

func TestAllows(t *testing.T) {
	tests := []struct {
		name       string
		permission permissions.Permission
		role       string
		expected   bool
	}{
		{"listed role", permissions.Permission{Permissions: []string{"admin"}}, "admin", true},
		{"unlisted role", permissions.Permission{Permissions: []string{"admin"}}, "user", false},
		{"no roles", permissions.Permission{}, "user", true},
		{"skipped", permissions.Permission{Permissions: []string{"admin"}, Skip: true}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.permission.Allows(tt.role))
		})
	}
}
