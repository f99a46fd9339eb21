// internal/app/features/resources/types.go
package resources

import (
	"html/template"

	"github.com/dalemusser/resourcehub/internal/app/system/paging"
	"github.com/dalemusser/resourcehub/internal/app/system/viewdata"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// listItem is a summary row in the resource list.
type listItem struct {
	ID          primitive.ObjectID
	Title       string
	Type        string
	TypeLabel   string
	Description string
	OwnerName   string
	Created     string
}

// listData provides template data for the resource list page.
type listData struct {
	viewdata.BaseVM

	Items []listItem
	Page  paging.Page

	// True for administrators and faculty; controls the "Add resource" button.
	CanCreate bool
}

// detailData is the view model for the resource detail page.
type detailData struct {
	viewdata.BaseVM

	ID            string
	ResourceTitle string
	Type          string
	TypeLabel     string
	Description   template.HTML
	HasFile       bool
	FileName      string
	FileSize      int64
	OwnerName     string
	Created       string
	Updated       string

	CanEdit   bool
	CanDelete bool
}

// ResourceTypeOption is used to populate the resource type select menu.
type ResourceTypeOption struct {
	ID    string
	Label string
}

// resourceFormVM is the unified form view-model used by the create and edit
// flows. Handlers populate this and then render the corresponding template.
type resourceFormVM struct {
	viewdata.BaseVM

	ID            string
	ResourceTitle string
	Type          string
	Description   string

	// Existing uploaded file (edit flow only).
	HasFile  bool
	FileName string
	FileSize int64

	// Error message to show above the form.
	Error template.HTML

	// Populated with models.ResourceTypes as ID + label.
	TypeOptions []ResourceTypeOption
}

// confirmDeleteData is the view model for the delete confirmation page.
type confirmDeleteData struct {
	viewdata.BaseVM

	ID            string
	ResourceTitle string
	TypeLabel     string
	OwnerName     string
}
