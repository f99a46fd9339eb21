// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/dalemusser/resourcehub/internal/app/system/auth"
	"github.com/dalemusser/resourcehub/internal/app/system/authz"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(w, r, "Page Title", "/default-back"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	// User context (from auth middleware)
	IsLoggedIn bool
	Role       string
	UserName   string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// CSRF protection
	CSRFToken string

	// Flash notices drained from the session for this render
	Notices []auth.Notice
}

// sessionMgr is set by Init and used to drain flash notices into the VM.
var sessionMgr *auth.SessionManager

// Init sets the session manager used to pop flash notices.
// Call this once at startup from bootstrap.
func Init(sm *auth.SessionManager) {
	sessionMgr = sm
}

// NewBaseVM creates a fully populated BaseVM for a full-page render.
// It drains queued flash notices, so call it exactly once per page.
//
// Parameters:
//   - w, r: the HTTP response/request pair (notices need the response to save the session)
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(w http.ResponseWriter, r *http.Request, title, backDefault string) BaseVM {
	role, name, _, signedIn := authz.UserCtx(r)

	vm := BaseVM{
		IsLoggedIn:  signedIn,
		Role:        string(role),
		UserName:    name,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}

	if sessionMgr != nil {
		vm.Notices = sessionMgr.PopNotices(w, r)
	}

	return vm
}
