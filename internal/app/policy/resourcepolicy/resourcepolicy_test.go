package resourcepolicy_test

import (
	"testing"

	"github.com/dalemusser/resourcehub/internal/app/policy/resourcepolicy"
	"github.com/dalemusser/resourcehub/internal/app/system/authz"
	"github.com/dalemusser/resourcehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCanEdit(t *testing.T) {
	tests := []struct {
		role authz.Role
		want bool
	}{
		{authz.RoleAdministrator, true},
		{authz.RoleFaculty, true},
		{authz.RoleStudent, false},
	}
	for _, tt := range tests {
		if got := resourcepolicy.CanEdit(tt.role); got != tt.want {
			t.Errorf("CanEdit(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestCanDelete(t *testing.T) {
	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()
	res := &models.Resource{ID: primitive.NewObjectID(), CreatedByID: owner}

	tests := []struct {
		name string
		role authz.Role
		user primitive.ObjectID
		want bool
	}{
		{"administrator deletes anything", authz.RoleAdministrator, other, true},
		{"administrator deletes own", authz.RoleAdministrator, owner, true},
		{"faculty deletes own", authz.RoleFaculty, owner, true},
		{"faculty cannot delete others'", authz.RoleFaculty, other, false},
		{"student never deletes", authz.RoleStudent, owner, false},
		{"student never deletes others'", authz.RoleStudent, other, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resourcepolicy.CanDelete(tt.role, res, tt.user); got != tt.want {
				t.Errorf("CanDelete(%q, res, %v) = %v, want %v", tt.role, tt.user, got, tt.want)
			}
		})
	}
}

func TestCanEdit_ResourceIndependent(t *testing.T) {
	// Faculty may edit resources they do not own; only delete is
	// ownership-scoped.
	owner := primitive.NewObjectID()
	faculty := primitive.NewObjectID()
	res := &models.Resource{CreatedByID: owner}

	if !resourcepolicy.CanEdit(authz.RoleFaculty) {
		t.Error("faculty should be able to edit any resource")
	}
	if resourcepolicy.CanDelete(authz.RoleFaculty, res, faculty) {
		t.Error("faculty should not be able to delete a resource they do not own")
	}
}
