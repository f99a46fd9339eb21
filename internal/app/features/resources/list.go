// internal/app/features/resources/list.go
package resources

import (
	"context"
	"net/http"

	"github.com/dalemusser/resourcehub/internal/app/policy/resourcepolicy"
	"github.com/dalemusser/resourcehub/internal/app/system/authz"
	"github.com/dalemusser/resourcehub/internal/app/system/paging"
	"github.com/dalemusser/resourcehub/internal/app/system/timeouts"
	"github.com/dalemusser/resourcehub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// ServeList displays the paginated resource list, newest first.
// Page numbers outside the valid range clamp to the nearest page.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	role, _ := authz.RoleOf(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, page, err := h.Resources.ListPage(ctx, paging.ParsePage(r))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list resources failed", err, "A database error occurred.", "/")
		return
	}

	items := make([]listItem, 0, len(rows))
	for _, res := range rows {
		items = append(items, listItem{
			ID:          res.ID,
			Title:       res.Title,
			Type:        res.Type,
			TypeLabel:   typeLabel(res.Type),
			Description: res.Description,
			OwnerName:   res.CreatedByName,
			Created:     res.CreatedAt.Format("Jan 2, 2006"),
		})
	}

	templates.Render(w, r, "resource_list", listData{
		BaseVM:    viewdata.NewBaseVM(w, r, "Resources", "/"),
		Items:     items,
		Page:      page,
		CanCreate: resourcepolicy.CanEdit(role),
	})
}
