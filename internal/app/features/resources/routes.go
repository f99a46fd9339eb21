// internal/app/features/resources/routes.go
package resources

import (
	"github.com/dalemusser/resourcehub/internal/app/system/auth"
	"github.com/dalemusser/resourcehub/internal/app/system/authz"
	"github.com/go-chi/chi/v5"
)

// Routes mounts all resource routes. Every page requires a signed-in user;
// create is additionally gated to administrators and faculty by middleware.
// Update and delete carry per-request policy checks inside their handlers
// (delete permission depends on who owns the record, which middleware
// cannot see).
//
// Example from bootstrap:
//
//	h := resources.NewHandler(db, store, sessionMgr, errLog, logger)
//	r.Mount("/", resources.Routes(h, sessionMgr))
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		// LIST
		pr.Get("/", h.ServeList)

		// DETAIL + DOWNLOAD
		pr.Get("/resource/{id}/", h.ServeDetail)
		pr.Get("/resource/{id}/download", h.HandleDownload)

		// DELETE (ownership-checked in the handler)
		pr.Get("/resource/{id}/delete/", h.ServeDeleteConfirm)
		pr.Post("/resource/{id}/delete/", h.HandleDelete)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole(string(authz.RoleAdministrator), string(authz.RoleFaculty)))

		// CREATE
		pr.Get("/resource/create/", h.ServeCreate)
		pr.Post("/resource/create/", h.HandleCreate)

		// UPDATE
		pr.Get("/resource/{id}/update/", h.ServeEdit)
		pr.Post("/resource/{id}/update/", h.HandleEdit)
	})

	return r
}
