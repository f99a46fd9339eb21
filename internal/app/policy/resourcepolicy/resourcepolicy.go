// Package resourcepolicy decides who may edit or delete a resource.
//
// Policies are pure functions over (role, resource, user); they never touch
// the database. Callers are responsible for surfacing a rejection (redirect
// plus user-visible notice) when these return false.
package resourcepolicy

import (
	"github.com/dalemusser/resourcehub/internal/app/system/authz"
	"github.com/dalemusser/resourcehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CanEdit reports whether the role may edit resources. Edit permission is
// role-only and resource-independent: faculty may edit resources they do not
// own, even though delete is ownership-scoped. The asymmetry is deliberate
// and mirrors the delete rule's stricter treatment of destructive actions.
func CanEdit(role authz.Role) bool {
	return role == authz.RoleAdministrator || role == authz.RoleFaculty
}

// CanDelete reports whether the user may delete the resource.
// Administrators may delete anything; faculty only their own; students never.
func CanDelete(role authz.Role, r *models.Resource, userID primitive.ObjectID) bool {
	switch role {
	case authz.RoleAdministrator:
		return true
	case authz.RoleFaculty:
		return r.CreatedByID == userID
	default:
		return false
	}
}
