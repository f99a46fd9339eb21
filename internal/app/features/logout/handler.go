// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/dalemusser/resourcehub/internal/app/system/auth"
	"go.uber.org/zap"
)

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
}

func NewHandler(sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
	}
}

// ServeLogout signs the user out and sends them to the login page with a
// confirmation notice. Both GET and POST land here.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	notice := auth.Notice{Kind: "info", Message: "You have been logged out."}
	if err := h.SessionMgr.SignOut(w, r, notice); err != nil {
		h.Log.Error("logout: save session", zap.Error(err))
	}

	if u != nil {
		h.Log.Info("logout", zap.String("username", u.Username))
	}

	http.Redirect(w, r, "/login/", http.StatusSeeOther)
}
