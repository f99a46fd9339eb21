// internal/app/features/resources/edit.go
package resources

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/resourcehub/internal/app/features/errors"
	resourcestore "github.com/dalemusser/resourcehub/internal/app/store/resources"
	"github.com/dalemusser/resourcehub/internal/app/policy/resourcepolicy"
	"github.com/dalemusser/resourcehub/internal/app/system/authz"
	"github.com/dalemusser/resourcehub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/resourcehub/internal/app/system/inputval"
	"github.com/dalemusser/resourcehub/internal/app/system/timeouts"
	"github.com/dalemusser/resourcehub/internal/app/system/viewdata"
	"github.com/dalemusser/resourcehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// editResourceInput defines validation rules for editing a resource.
type editResourceInput struct {
	Title       string `validate:"required,max=200" label:"Title"`
	Type        string `validate:"required" label:"Resource type"`
	Description string `validate:"required" label:"Description"`
}

// renderEditForm populates the common chrome for the Edit Resource page and
// renders the edit form.
func (h *Handler) renderEditForm(w http.ResponseWriter, r *http.Request, vm resourceFormVM, errMsg string) {
	vm.BaseVM = viewdata.NewBaseVM(w, r, "Edit Resource", "/resource/"+vm.ID+"/")
	vm.TypeOptions = resourceTypeOptions()

	if errMsg != "" {
		vm.Error = template.HTML(errMsg)
	}

	templates.Render(w, r, "resource_edit", vm)
}

// ServeEdit renders the Edit Resource form.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
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

	role, _ := authz.RoleOf(r)
	if !resourcepolicy.CanEdit(role) {
		h.SessionMgr.Flash(w, r, "error", "You do not have permission to edit this resource.")
		http.Redirect(w, r, "/resource/"+idHex+"/", http.StatusSeeOther)
		return
	}

	h.renderEditForm(w, r, resourceFormVM{
		ID:            res.ID.Hex(),
		ResourceTitle: res.Title,
		Type:          res.Type,
		Description:   res.Description,
		HasFile:       res.HasFile(),
		FileName:      res.FileName,
		FileSize:      res.FileSize,
	}, "")
}

// HandleEdit processes the Edit Resource form POST. A newly uploaded file
// replaces the stored one; otherwise the existing file is kept. Ownership
// and the creation stamp never change on update.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/")
		return
	}

	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Resource not found.", "/")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	existing, err := h.Resources.GetByID(ctx, oid)
	if errors.Is(err, resourcestore.ErrNotFound) {
		uierrors.RenderNotFound(w, r, "Resource not found.", "/")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "find resource failed", err, "A database error occurred.", "/")
		return
	}

	role, _ := authz.RoleOf(r)
	if !resourcepolicy.CanEdit(role) {
		h.SessionMgr.Flash(w, r, "error", "You do not have permission to edit this resource.")
		http.Redirect(w, r, "/resource/"+idHex+"/", http.StatusSeeOther)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	typeValue := strings.TrimSpace(r.FormValue("type"))
	description := htmlsanitize.Sanitize(strings.TrimSpace(r.FormValue("description")))

	reRender := func(msg string) {
		h.renderEditForm(w, r, resourceFormVM{
			ID:            idHex,
			ResourceTitle: title,
			Type:          typeValue,
			Description:   description,
			HasFile:       existing.HasFile(),
			FileName:      existing.FileName,
			FileSize:      existing.FileSize,
		}, msg)
	}

	input := editResourceInput{Title: title, Type: typeValue, Description: description}
	if result := inputval.Validate(input); result.HasErrors() {
		reRender(result.First())
		return
	}
	if !inputval.IsValidResourceType(typeValue) {
		reRender("Resource type is invalid.")
		return
	}

	file, header, fileErr := r.FormFile("file")
	hasNewFile := fileErr == nil && header != nil && header.Size > 0

	mut := models.Resource{
		Title:       title,
		Type:        typeValue,
		Description: description,
		FilePath:    existing.FilePath,
		FileName:    existing.FileName,
		FileSize:    existing.FileSize,
	}

	if hasNewFile {
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		info, err := uploadFile(ctx, h.Storage, header.Filename, file, header.Size, contentType)
		if err != nil {
			h.Log.Error("file upload failed", zap.Error(err))
			reRender("Failed to upload file. Please try again.")
			return
		}
		mut.FilePath = info.Path
		mut.FileName = info.FileName
		mut.FileSize = info.Size
	}

	if err := h.Resources.Update(ctx, oid, mut); err != nil {
		if hasNewFile {
			if delErr := h.Storage.Delete(ctx, mut.FilePath); delErr != nil {
				h.Log.Warn("failed to remove orphaned upload",
					zap.String("path", mut.FilePath),
					zap.Error(delErr))
			}
		}
		switch {
		case errors.Is(err, resourcestore.ErrDuplicateTitle):
			reRender("A resource with that title already exists.")
		case resourcestore.IsValidation(err):
			reRender(err.Error())
		default:
			h.ErrLog.LogServerError(w, r, "update resource failed", err, "A database error occurred.", "/")
		}
		return
	}

	// The update stuck; drop the replaced file.
	if hasNewFile && existing.HasFile() {
		if err := h.Storage.Delete(ctx, existing.FilePath); err != nil {
			h.Log.Warn("failed to delete old file during update",
				zap.String("path", existing.FilePath),
				zap.Error(err))
		}
	}

	h.SessionMgr.Flash(w, r, "success", "Resource updated successfully.")
	http.Redirect(w, r, "/resource/"+idHex+"/", http.StatusSeeOther)
}
