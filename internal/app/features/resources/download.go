// internal/app/features/resources/download.go
package resources

import (
	"context"
	"errors"
	"net/http"
	"time"

	uierrors "github.com/dalemusser/resourcehub/internal/app/features/errors"
	resourcestore "github.com/dalemusser/resourcehub/internal/app/store/resources"
	"github.com/dalemusser/resourcehub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleDownload serves the resource file directly (for local storage) or
// generates a signed URL and redirects (for S3).
func (h *Handler) HandleDownload(w http.ResponseWriter, r *http.Request) {
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

	if !res.HasFile() {
		uierrors.RenderNotFound(w, r, "No file available for this resource.", "/resource/"+idHex+"/")
		return
	}

	filename := res.FileName
	if filename == "" {
		filename = "download"
	}
	contentDisposition := "attachment; filename=\"" + filename + "\""

	// Prevent browser caching of downloads (important when files are replaced)
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")

	// Local storage: serve the file directly.
	if localStorage, ok := h.Storage.(*storage.Local); ok {
		fullPath, err := localStorage.GetFullPath(res.FilePath)
		if err != nil {
			h.Log.Error("error getting file path",
				zap.Error(err),
				zap.String("path", res.FilePath))
			uierrors.RenderServerError(w, r, "Failed to locate file.", "/resource/"+idHex+"/")
			return
		}
		w.Header().Set("Content-Disposition", contentDisposition)
		http.ServeFile(w, r, fullPath)
		return
	}

	// S3/other storage: generate a signed URL and redirect.
	signedURL, err := h.Storage.PresignedURL(ctx, res.FilePath, &storage.PresignOptions{
		Expires:            15 * time.Minute,
		ContentDisposition: contentDisposition,
	})
	if err != nil {
		h.Log.Error("error generating signed URL",
			zap.Error(err),
			zap.String("path", res.FilePath))
		uierrors.RenderServerError(w, r, "Failed to generate download link.", "/resource/"+idHex+"/")
		return
	}
	http.Redirect(w, r, signedURL, http.StatusSeeOther)
}
