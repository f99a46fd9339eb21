// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/dalemusser/resourcehub/internal/app/system/auth"
	"github.com/dalemusser/resourcehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the derived, non-persisted classification governing permitted
// actions. It is computed once at login from the superuser flag and group
// memberships, cached in the session, and injected into request context.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleFaculty       Role = "faculty"
	RoleStudent       Role = "student"
)

// ResolveRole derives a role from the superuser flag and the user's group
// names. Pure and total: it always yields exactly one of the three roles.
// Rule, in order: superuser → administrator; member of "Faculty" → faculty;
// else student. Membership in an explicit "Student" group carries no extra
// capability; anyone in neither group is also a student.
func ResolveRole(isSuperuser bool, groups []string) Role {
	if isSuperuser {
		return RoleAdministrator
	}
	for _, g := range groups {
		if g == models.GroupFaculty {
			return RoleFaculty
		}
	}
	return RoleStudent
}

// ResolveUserRole is a convenience wrapper over ResolveRole for a loaded
// user record plus its group names.
func ResolveUserRole(u *models.User, groups []string) Role {
	return ResolveRole(u.IsSuperuser, groups)
}

// UserCtx returns the user's role, display name, Mongo ObjectID, and a found
// flag. If no user is present in context or the user ID is malformed, it
// returns RoleStudent, "", NilObjectID, false — callers can trust that
// ok=true means a valid, authenticated user with a valid ObjectID.
func UserCtx(r *http.Request) (role Role, name string, userID primitive.ObjectID, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return RoleStudent, "", primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		// Malformed user ID in session - fail closed.
		return RoleStudent, "", primitive.NilObjectID, false
	}
	name = user.Name
	if name == "" {
		name = user.Username
	}
	return Role(strings.ToLower(user.Role)), name, userID, true
}

// IsAdministrator reports whether the current request's user is an administrator.
func IsAdministrator(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == RoleAdministrator
}

// IsFaculty reports whether the current request's user is faculty.
func IsFaculty(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == RoleFaculty
}

// IsStudent reports whether the current request's user is a student.
func IsStudent(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == RoleStudent
}
