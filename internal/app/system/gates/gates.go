// Package gates provides authorization gate functions for HTTP handlers.
// Gates check authentication and authorization, rendering appropriate error
// pages when checks fail.
//
// Three tiers of authorization are used:
//
//  1. Route-level middleware (auth.RequireSignedIn, auth.RequireRole)
//     applied in routes.go for coarse-grained access control.
//  2. Handler-level gates (this package) for handlers that need user
//     context plus a check the route group does not provide.
//  3. Policy layer (internal/app/policy/*) for resource-specific
//     authorization over a loaded record. Policies return bool; callers
//     handle the rejection.
//
// Don't stack gates on top of equivalent middleware: if routes.go already
// has RequireRole("administrator", "faculty"), the handler only needs
// authz.UserCtx to read the user.
package gates

import (
	"net/http"

	uierrors "github.com/dalemusser/resourcehub/internal/app/features/errors"
	"github.com/dalemusser/resourcehub/internal/app/system/authz"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Result contains the result of an authorization gate check.
type Result struct {
	Role   authz.Role
	Name   string
	UserID primitive.ObjectID
	OK     bool
}

// RequireAuth ensures a user is authenticated.
// If not authenticated, it renders an unauthorized error and returns OK=false.
// The loginURL parameter specifies where to redirect for login.
func RequireAuth(w http.ResponseWriter, r *http.Request, loginURL string) Result {
	role, name, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, loginURL)
		return Result{OK: false}
	}
	return Result{Role: role, Name: name, UserID: uid, OK: true}
}

// RequireAnyRole ensures the user is authenticated and has one of the
// specified roles. If not authenticated, renders an unauthorized error; if
// authenticated with a role outside the allowed list, renders a forbidden
// error with the provided message and fallback URL.
func RequireAnyRole(w http.ResponseWriter, r *http.Request, forbiddenMsg, fallbackURL string, allowed ...authz.Role) Result {
	role, name, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login/")
		return Result{OK: false}
	}

	for _, a := range allowed {
		if role == a {
			return Result{Role: role, Name: name, UserID: uid, OK: true}
		}
	}

	uierrors.RenderForbidden(w, r, forbiddenMsg, fallbackURL)
	return Result{OK: false}
}

// RequireEditor ensures the user is authenticated with a role that may
// create or edit resources (administrator or faculty).
func RequireEditor(w http.ResponseWriter, r *http.Request, forbiddenMsg, fallbackURL string) Result {
	return RequireAnyRole(w, r, forbiddenMsg, fallbackURL,
		authz.RoleAdministrator, authz.RoleFaculty)
}
