// internal/app/system/authz/roles.go
package authz

import (
	"net/http"
	"strings"
)

// HasAnyRole reports whether the current request's user has any of the given
// roles. Returns false if no user is present (i.e., not signed in).
func HasAnyRole(r *http.Request, roles ...Role) bool {
	cur, _, _, ok := UserCtx(r)
	if !ok {
		return false
	}
	for _, want := range roles {
		if cur == Role(strings.ToLower(string(want))) {
			return true
		}
	}
	return false
}

// HasRole is a convenience wrapper for a single role.
func HasRole(r *http.Request, role Role) bool {
	return HasAnyRole(r, role)
}

// RoleOf returns the current user's role and whether a user is present.
func RoleOf(r *http.Request) (Role, bool) {
	role, _, _, ok := UserCtx(r)
	return role, ok
}
