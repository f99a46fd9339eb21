// internal/app/features/resources/new.go
package resources

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"strings"

	resourcestore "github.com/dalemusser/resourcehub/internal/app/store/resources"
	"github.com/dalemusser/resourcehub/internal/app/system/authz"
	"github.com/dalemusser/resourcehub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/resourcehub/internal/app/system/inputval"
	"github.com/dalemusser/resourcehub/internal/app/system/timeouts"
	"github.com/dalemusser/resourcehub/internal/app/system/viewdata"
	"github.com/dalemusser/resourcehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// maxUploadBytes caps resource file uploads at 32MB.
const maxUploadBytes = 32 << 20

// createResourceInput defines validation rules for creating a resource.
type createResourceInput struct {
	Title       string `validate:"required,max=200" label:"Title"`
	Type        string `validate:"required" label:"Resource type"`
	Description string `validate:"required" label:"Description"`
}

// renderNewForm populates the common chrome for the New Resource page and
// renders the create form. Callers pass in a partially-filled resourceFormVM
// (for example, to echo back user input on validation errors) and an
// optional error message.
func (h *Handler) renderNewForm(w http.ResponseWriter, r *http.Request, vm resourceFormVM, errMsg string) {
	vm.BaseVM = viewdata.NewBaseVM(w, r, "New Resource", "/")
	vm.TypeOptions = resourceTypeOptions()

	if vm.Type == "" {
		vm.Type = models.ResourceTypeLecture
	}
	if errMsg != "" {
		vm.Error = template.HTML(errMsg)
	}

	templates.Render(w, r, "resource_new", vm)
}

// ServeCreate renders the empty create form.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	h.renderNewForm(w, r, resourceFormVM{}, "")
}

// HandleCreate processes the create form POST. A file upload is required;
// the record stores the generated storage path alongside the original
// filename and size.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/")
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	typeValue := strings.TrimSpace(r.FormValue("type"))
	description := htmlsanitize.Sanitize(strings.TrimSpace(r.FormValue("description")))

	reRender := func(msg string) {
		h.renderNewForm(w, r, resourceFormVM{
			ResourceTitle: title,
			Type:          typeValue,
			Description:   description,
		}, msg)
	}

	input := createResourceInput{Title: title, Type: typeValue, Description: description}
	if result := inputval.Validate(input); result.HasErrors() {
		reRender(result.First())
		return
	}
	if !inputval.IsValidResourceType(typeValue) {
		reRender("Resource type is invalid.")
		return
	}

	file, header, fileErr := r.FormFile("file")
	if fileErr != nil || header == nil || header.Size == 0 {
		reRender("Please choose a file to upload.")
		return
	}
	defer file.Close()

	_, uname, userID, ok := authz.UserCtx(r)
	if !ok {
		// RequireRole middleware should make this unreachable.
		http.Redirect(w, r, "/login/", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

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

	created, err := h.Resources.Create(ctx, models.Resource{
		Title:         title,
		Type:          typeValue,
		Description:   description,
		FilePath:      info.Path,
		FileName:      info.FileName,
		FileSize:      info.Size,
		CreatedByID:   userID,
		CreatedByName: uname,
	})
	if err != nil {
		// The record failed, so the uploaded file is an orphan.
		if delErr := h.Storage.Delete(ctx, info.Path); delErr != nil {
			h.Log.Warn("failed to remove orphaned upload",
				zap.String("path", info.Path),
				zap.Error(delErr))
		}
		switch {
		case errors.Is(err, resourcestore.ErrDuplicateTitle):
			reRender("A resource with that title already exists.")
		case resourcestore.IsValidation(err):
			reRender(err.Error())
		default:
			h.ErrLog.LogServerError(w, r, "create resource failed", err, "A database error occurred.", "/")
		}
		return
	}

	h.SessionMgr.Flash(w, r, "success", "Resource created successfully.")
	h.Log.Info("resource created",
		zap.String("id", created.ID.Hex()),
		zap.String("title", created.Title),
		zap.String("by", uname),
	)
	http.Redirect(w, r, "/resource/"+created.ID.Hex()+"/", http.StatusSeeOther)
}
