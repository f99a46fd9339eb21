// internal/app/features/resources/delete.go
package resources

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/resourcehub/internal/app/features/errors"
	resourcestore "github.com/dalemusser/resourcehub/internal/app/store/resources"
	"github.com/dalemusser/resourcehub/internal/app/policy/resourcepolicy"
	"github.com/dalemusser/resourcehub/internal/app/system/gates"
	"github.com/dalemusser/resourcehub/internal/app/system/timeouts"
	"github.com/dalemusser/resourcehub/internal/app/system/viewdata"
	"github.com/dalemusser/resourcehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// loadForDelete fetches the resource and checks the delete policy for the
// current user. Administrators can delete anything; faculty only their own.
func (h *Handler) loadForDelete(w http.ResponseWriter, r *http.Request) (models.Resource, bool) {
	g := gates.RequireAuth(w, r, "/login/")
	if !g.OK {
		return models.Resource{}, false
	}

	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Resource not found.", "/")
		return models.Resource{}, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	res, err := h.Resources.GetByID(ctx, oid)
	if errors.Is(err, resourcestore.ErrNotFound) {
		uierrors.RenderNotFound(w, r, "Resource not found.", "/")
		return models.Resource{}, false
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "find resource failed", err, "A database error occurred.", "/")
		return models.Resource{}, false
	}

	if !resourcepolicy.CanDelete(g.Role, &res, g.UserID) {
		h.SessionMgr.Flash(w, r, "error", "You do not have permission to delete this resource.")
		http.Redirect(w, r, "/resource/"+idHex+"/", http.StatusSeeOther)
		return models.Resource{}, false
	}
	return res, true
}

// ServeDeleteConfirm renders the "are you sure?" page.
func (h *Handler) ServeDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	res, ok := h.loadForDelete(w, r)
	if !ok {
		return
	}

	templates.Render(w, r, "resource_confirm_delete", confirmDeleteData{
		BaseVM:        viewdata.NewBaseVM(w, r, "Delete Resource", "/resource/"+res.ID.Hex()+"/"),
		ID:            res.ID.Hex(),
		ResourceTitle: res.Title,
		TypeLabel:     typeLabel(res.Type),
		OwnerName:     res.CreatedByName,
	})
}

// HandleDelete removes the resource and its stored file.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	res, ok := h.loadForDelete(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Resources.Delete(ctx, res.ID); err != nil {
		if errors.Is(err, resourcestore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "Resource not found.", "/")
			return
		}
		h.ErrLog.LogServerError(w, r, "delete resource failed", err, "A database error occurred.", "/")
		return
	}

	// Best-effort file cleanup; the record is already gone.
	if res.HasFile() {
		if err := h.Storage.Delete(ctx, res.FilePath); err != nil {
			h.Log.Warn("failed to delete file for removed resource",
				zap.String("path", res.FilePath),
				zap.Error(err))
		}
	}

	h.SessionMgr.Flash(w, r, "success", "Resource deleted successfully.")
	h.Log.Info("resource deleted",
		zap.String("id", res.ID.Hex()),
		zap.String("title", res.Title),
	)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
