// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/resourcehub/internal/app/features/errors"
	groupstore "github.com/dalemusser/resourcehub/internal/app/store/groups"
	userstore "github.com/dalemusser/resourcehub/internal/app/store/users"
	"github.com/dalemusser/resourcehub/internal/app/system/auth"
	"github.com/dalemusser/resourcehub/internal/app/system/authutil"
	"github.com/dalemusser/resourcehub/internal/app/system/authz"
	"github.com/dalemusser/resourcehub/internal/app/system/timeouts"
	"github.com/dalemusser/resourcehub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type Handler struct {
	Users      *userstore.Store
	Groups     *groupstore.Store
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
}

type loginFormData struct {
	viewdata.BaseVM
	Error     string
	Username  string
	ReturnURL string
}

func NewHandler(
	users *userstore.Store,
	groups *groupstore.Store,
	sessionMgr *auth.SessionManager,
	errLog *uierrors.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Users:      users,
		Groups:     groups,
		Log:        logger,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login/                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	// Already signed in? Go straight to the resource list.
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(w, r, "Login", "/"),
		ReturnURL: query.Get(r, "return"),
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login/                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/login/")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	returnURL := r.FormValue("return")

	if username == "" || password == "" {
		h.renderFormWithError(w, r, "Please enter your username and password.", username, returnURL)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, username)
	switch {
	case errors.Is(err, userstore.ErrNotFound):
		h.renderFormWithError(w, r, "Invalid username or password.", username, returnURL)
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "DB find user", err, "A server error occurred.", "/login/")
		return
	}

	if !authutil.CheckPassword(u.PasswordHash, password) {
		h.Log.Info("login failed: bad password", zap.String("username", u.Username))
		h.renderFormWithError(w, r, "Invalid username or password.", username, returnURL)
		return
	}

	// Role is derived at login from superuser flag and group memberships;
	// it is never stored on the user record.
	groups, err := h.Groups.GroupNamesForUser(ctx, u.ID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "DB find groups", err, "A server error occurred.", "/login/")
		return
	}
	role := authz.ResolveUserRole(&u, groups)

	su := &auth.SessionUser{
		ID:       u.ID.Hex(),
		Username: u.Username,
		Name:     u.FullName,
		Role:     string(role),
	}
	if err := h.SessionMgr.SignIn(w, r, su); err != nil {
		h.ErrLog.LogServerError(w, r, "create session", err, "A server error occurred.", "/login/")
		return
	}

	h.SessionMgr.Flash(w, r, "success", "Welcome back, "+u.Username+"!")
	h.Log.Info("login ok",
		zap.String("username", u.Username),
		zap.String("role", string(role)),
	)

	http.Redirect(w, r, safeReturn(returnURL), http.StatusSeeOther)
}

// safeReturn keeps redirects on-site. Anything that is not a local path
// falls back to the resource list.
func safeReturn(ret string) string {
	if ret == "" || !strings.HasPrefix(ret, "/") || strings.HasPrefix(ret, "//") {
		return "/"
	}
	return ret
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, username, returnURL string) {
	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(w, r, "Login", "/"),
		Error:     msg,
		Username:  username,
		ReturnURL: returnURL,
	})
}
