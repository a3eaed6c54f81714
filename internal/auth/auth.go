// internal/auth/auth.go
package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"os"
)

// Role governs which actions an identity may perform.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleDataEntry Role = "data-entry"
	RoleOperator  Role = "operator"
)

// Action names one of the customer operations guarded by the matrix.
type Action string

const (
	ActionList   Action = "list"
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// permissions is the fixed role matrix: list/read for everyone, create/update
// for admin and data-entry, delete for admin only.
var permissions = map[Action][]Role{
	ActionList:   {RoleAdmin, RoleDataEntry, RoleOperator},
	ActionRead:   {RoleAdmin, RoleDataEntry, RoleOperator},
	ActionCreate: {RoleAdmin, RoleDataEntry},
	ActionUpdate: {RoleAdmin, RoleDataEntry},
	ActionDelete: {RoleAdmin},
}

// Allowed reports whether role may perform action.
func Allowed(role Role, action Action) bool {
	for _, r := range permissions[action] {
		if r == role {
			return true
		}
	}
	return false
}

// Identity is one static username/password/role entry. Credentials are plain
// text; the service does not hash passwords or issue sessions.
type Identity struct {
	Username string
	Password string
	Role     Role
}

// Authenticator holds the immutable identity table built at process start.
// When Enabled is false every Require middleware passes through untouched.
type Authenticator struct {
	Enabled    bool
	identities map[string]Identity
}

// New builds an Authenticator from an explicit identity list.
func New(enabled bool, identities []Identity) *Authenticator {
	table := make(map[string]Identity, len(identities))
	for _, id := range identities {
		table[id.Username] = id
	}
	return &Authenticator{Enabled: enabled, identities: table}
}

// DefaultIdentities returns the three built-in identities. Passwords can be
// overridden via ADMIN_PASSWORD, CAPTURISTA_PASSWORD and OPERADOR_PASSWORD so
// deployments never ship the defaults.
func DefaultIdentities() []Identity {
	return []Identity{
		{Username: "admin", Password: envOr("ADMIN_PASSWORD", "admin123"), Role: RoleAdmin},
		{Username: "capturista", Password: envOr("CAPTURISTA_PASSWORD", "capturista123"), Role: RoleDataEntry},
		{Username: "operador", Password: envOr("OPERADOR_PASSWORD", "operador123"), Role: RoleOperator},
	}
}

// FromEnv builds the default Authenticator. Auth is on unless AUTH_ENABLED is
// explicitly "false".
func FromEnv() *Authenticator {
	enabled := os.Getenv("AUTH_ENABLED") != "false"
	return New(enabled, DefaultIdentities())
}

// Authenticate resolves Basic credentials to a role.
func (a *Authenticator) Authenticate(username, password string) (Role, bool) {
	id, ok := a.identities[username]
	if !ok {
		return "", false
	}
	if subtle.ConstantTimeCompare([]byte(id.Password), []byte(password)) != 1 {
		return "", false
	}
	return id.Role, true
}

// Require returns middleware enforcing the permission matrix for one action:
// 401 for missing/bad credentials, 403 for a known identity whose role is not
// allowed.
func (a *Authenticator) Require(action Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.Enabled {
				next.ServeHTTP(w, r)
				return
			}

			username, password, ok := r.BasicAuth()
			if !ok {
				unauthorized(w)
				return
			}
			role, ok := a.Authenticate(username, password)
			if !ok {
				unauthorized(w)
				return
			}
			if !Allowed(role, action) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(map[string]string{"detail": "insufficient permissions"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="customer-registry"`)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"detail": "not authenticated"})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
