package authz_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/resourcehub/internal/app/system/auth"
	"github.com/dalemusser/resourcehub/internal/app/system/authz"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestResolveRole(t *testing.T) {
	tests := []struct {
		name        string
		isSuperuser bool
		groups      []string
		want        authz.Role
	}{
		{"superuser is administrator", true, nil, authz.RoleAdministrator},
		{"superuser wins over faculty group", true, []string{"Faculty"}, authz.RoleAdministrator},
		{"faculty group member is faculty", false, []string{"Faculty"}, authz.RoleFaculty},
		{"faculty among other groups", false, []string{"Chess Club", "Faculty"}, authz.RoleFaculty},
		{"student group member is student", false, []string{"Student"}, authz.RoleStudent},
		{"no groups defaults to student", false, nil, authz.RoleStudent},
		{"empty groups defaults to student", false, []string{}, authz.RoleStudent},
		{"unknown group defaults to student", false, []string{"Chess Club"}, authz.RoleStudent},
		{"group name is case sensitive", false, []string{"faculty"}, authz.RoleStudent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := authz.ResolveRole(tt.isSuperuser, tt.groups)
			if got != tt.want {
				t.Errorf("ResolveRole(%v, %v) = %q, want %q", tt.isSuperuser, tt.groups, got, tt.want)
			}
		})
	}
}

func TestResolveRole_Total(t *testing.T) {
	// Every combination yields exactly one of the three roles.
	valid := map[authz.Role]bool{
		authz.RoleAdministrator: true,
		authz.RoleFaculty:       true,
		authz.RoleStudent:       true,
	}
	for _, su := range []bool{true, false} {
		for _, groups := range [][]string{nil, {}, {"Faculty"}, {"Student"}, {"Faculty", "Student"}, {"x"}} {
			if got := authz.ResolveRole(su, groups); !valid[got] {
				t.Errorf("ResolveRole(%v, %v) = %q, not a known role", su, groups, got)
			}
		}
	}
}

func TestUserCtx_NoUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	role, name, uid, ok := authz.UserCtx(req)
	if ok {
		t.Error("expected ok=false with no user in context")
	}
	if role != authz.RoleStudent || name != "" || uid != primitive.NilObjectID {
		t.Errorf("unexpected zero values: role=%q name=%q uid=%v", role, name, uid)
	}
}

func TestUserCtx_MalformedID(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{
		ID:   "not-a-valid-objectid",
		Role: "administrator",
	})

	_, _, _, ok := authz.UserCtx(req)
	if ok {
		t.Error("expected ok=false for malformed user ID (fail closed)")
	}
}

func TestUserCtx_ValidUser(t *testing.T) {
	id := primitive.NewObjectID()
	req := httptest.NewRequest("GET", "/", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{
		ID:       id.Hex(),
		Username: "faculty",
		Name:     "Fay Cultee",
		Role:     "Faculty", // role comparison is case-insensitive
	})

	role, name, uid, ok := authz.UserCtx(req)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if role != authz.RoleFaculty {
		t.Errorf("role: got %q, want %q", role, authz.RoleFaculty)
	}
	if name != "Fay Cultee" {
		t.Errorf("name: got %q", name)
	}
	if uid != id {
		t.Errorf("uid: got %v, want %v", uid, id)
	}
}

func TestHasAnyRole(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{
		ID:   primitive.NewObjectID().Hex(),
		Role: "faculty",
	})

	if !authz.HasAnyRole(req, authz.RoleAdministrator, authz.RoleFaculty) {
		t.Error("faculty should match {administrator, faculty}")
	}
	if authz.HasAnyRole(req, authz.RoleAdministrator) {
		t.Error("faculty should not match {administrator}")
	}
	if authz.HasAnyRole(httptest.NewRequest("GET", "/", nil), authz.RoleStudent) {
		t.Error("anonymous request should match nothing")
	}
}
