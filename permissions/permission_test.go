package permissions_test

import (
	"testing"

	"forest/permissions"
	"forest/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEmbedded(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)
	require.NotEmpty(t, data.Endpoints)

	seen := map[string]bool{}

	for _, endpoint := range data.Endpoints {
		key := endpoint.Method + " " + endpoint.Path
		assert.False(t, seen[key], "duplicate route %s", key)
		seen[key] = true

		if !endpoint.Skip {
			assert.True(t, endpoint.Allows(constant.RoleSuperAdmin), "superadmin cannot reach %s", key)
		}
	}
}

func TestFindPermissions(t *testing.T) {
	data, err := permissions.Parse([]byte(`{
		"skip": false,
		"endpoints": [
			{"path": "/v1/orders/", "method": "POST", "permissions": [], "skip": true},
			{"path": "/v1/orders/{id}", "method": "GET", "permissions": ["admin", "superadmin"], "skip": false}
		]
	}`))
	require.NoError(t, err)

	tests := []struct {
		name      string
		path      string
		method    string
		wantSkip  bool
		wantAdmin bool
	}{
		{name: "public checkout without slash", path: "/v1/orders", method: "POST", wantSkip: true},
		{name: "public checkout with slash", path: "/v1/orders/", method: "POST", wantSkip: true},
		{name: "admin read", path: "/v1/orders/{id}", method: "GET", wantAdmin: true},
		{name: "method is case-insensitive", path: "/v1/orders/{id}", method: "get", wantAdmin: true},
		{name: "unknown route is not public", path: "/v1/orders/{id}", method: "DELETE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, permission.Skip)
			assert.Equal(t, tt.wantAdmin, permission.Allows(constant.RoleAdmin))
		})
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := permissions.Parse([]byte(`{"endpoints": [`))

	assert.Error(t, err)
}

func TestFindPermissionsOnLiteral(t *testing.T) {
	data := &permissions.PermissionData{Endpoints: []permissions.Permission{
		{Path: "/v1/carts/{id}", Method: "GET", Skip: true},
	}}

	assert.True(t, data.FindPermissions("/v1/carts/{id}/", "GET").Skip)
}
