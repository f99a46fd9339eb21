// internal/app/features/resources/detail.go
package resources

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/resourcehub/internal/app/features/errors"
	resourcestore "github.com/dalemusser/resourcehub/internal/app/store/resources"
	"github.com/dalemusser/resourcehub/internal/app/policy/resourcepolicy"
	"github.com/dalemusser/resourcehub/internal/app/system/authz"
	"github.com/dalemusser/resourcehub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/resourcehub/internal/app/system/timeouts"
	"github.com/dalemusser/resourcehub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeDetail renders the detail view for a single resource. The edit and
// delete buttons reflect what the current user is actually allowed to do.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	role, _, userID, _ := authz.UserCtx(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Resource not found.", "/")
		return
	}

	res, err := h.Resources.GetByID(ctx, oid)
	if errors.Is(err, resourcestore.ErrNotFound) {
		uierrors.RenderNotFound(w, r, "Resource not found.", "/")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "find resource failed", err, "A database error occurred.", "/")
		return
	}

	data := detailData{
		BaseVM:        viewdata.NewBaseVM(w, r, res.Title, "/"),
		ID:            res.ID.Hex(),
		ResourceTitle: res.Title,
		Type:          res.Type,
		TypeLabel:     typeLabel(res.Type),
		Description:   htmlsanitize.PrepareForDisplay(res.Description),
		HasFile:       res.HasFile(),
		FileName:      res.FileName,
		FileSize:      res.FileSize,
		OwnerName:     res.CreatedByName,
		Created:       res.CreatedAt.Format("Jan 2, 2006 15:04"),
		CanEdit:       resourcepolicy.CanEdit(role),
		CanDelete:     resourcepolicy.CanDelete(role, &res, userID),
	}
	if res.UpdatedAt != nil {
		data.Updated = res.UpdatedAt.Format("Jan 2, 2006 15:04")
	}

	templates.Render(w, r, "resource_detail", data)
}
