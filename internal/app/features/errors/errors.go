// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/resourcehub/internal/app/system/auth"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the basic view model for error pages.
type pageData struct {
	Title      string
	IsLoggedIn bool
	Role       string
	UserName   string
	Message    string
	BackURL    string
}

// renderPage fills the common chrome and renders the shared error template.
func renderPage(w http.ResponseWriter, r *http.Request, title, msg, backURL string) {
	u, signed := auth.CurrentUser(r)
	role, name := "", ""
	if signed && u != nil {
		role, name = u.Role, u.Name
	}
	if backURL == "" {
		backURL = httpnav.ResolveBackURL(r, "/")
	}

	templates.Render(w, r, "error_forbidden", pageData{
		Title:      title,
		IsLoggedIn: signed,
		Role:       role,
		UserName:   name,
		Message:    msg,
		BackURL:    backURL,
	})
}

// RenderUnauthorized shows a friendly "sign in required" page.
// If backURL is empty, it defaults to /login/.
func RenderUnauthorized(w http.ResponseWriter, r *http.Request, backURL string) {
	if backURL == "" {
		backURL = "/login/"
	}
	renderPage(w, r, "Sign in required", "Please sign in to continue.", backURL)
}

// RenderForbidden shows a friendly access error page with a message.
// If backURL is empty, it resolves a safe back URL with a default fallback.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	renderPage(w, r, "Access denied", msg, backURL)
}

// RenderBadRequest shows an error page for malformed input with a 400 status.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	w.WriteHeader(http.StatusBadRequest)
	renderPage(w, r, "Bad request", msg, backURL)
}

// RenderNotFound shows an error page for a missing record with a 404 status.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	w.WriteHeader(http.StatusNotFound)
	renderPage(w, r, "Not found", msg, backURL)
}

// RenderServerError shows a generic failure page with a 500 status.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	w.WriteHeader(http.StatusInternalServerError)
	renderPage(w, r, "Something went wrong", msg, backURL)
}
