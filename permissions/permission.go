package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission lists the roles allowed on one route. Skip makes the route public.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// Allows reports whether role is listed.
func (p Permission) Allows(role string) bool {
	return slices.Contains(p.Permissions, role)
}

// PermissionData is the route table. A global Skip disables every check.
type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	once  sync.Once
	index map[string]Permission
}

func routeKey(method, path string) string {
	return strings.ToUpper(method) + " " + strings.TrimSuffix(path, "/")
}

// FindPermissions matches a chi route pattern. Trailing slashes are ignored on both sides.
// Unknown routes get the zero Permission, which is not skipped.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	r.once.Do(r.buildIndex)

	return r.index[routeKey(method, path)]
}

func (r *PermissionData) buildIndex() {
	r.index = make(map[string]Permission, len(r.Endpoints))

	for _, endpoint := range r.Endpoints {
		r.index[routeKey(endpoint.Method, endpoint.Path)] = endpoint
	}
}

// Parse decodes a route table.
func Parse(data []byte) (*PermissionData, error) {
	permissions := PermissionData{}

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, errors.Wrap(err, "decode permissions")
	}

	permissions.once.Do(permissions.buildIndex)

	return &permissions, nil
}

// Get loads the embedded route table and exits the process when it is malformed.
func Get() *PermissionData {
	permissions, err := Parse(permissionsData)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load embedded permissions")
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Loaded embedded permissions")

	return permissions
}
