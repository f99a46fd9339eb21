// internal/domain/models/resource.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resource is an uploaded instructional item (lecture notes, an assignment,
// reference material).
//
// CreatedByID and CreatedAt are set once at creation and never changed by
// update; ownership scopes faculty delete permission.
type Resource struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title   string             `bson:"title" json:"title"`
	TitleCI string             `bson:"title_ci" json:"title_ci"` // lowercase, diacritics-stripped

	Type        string `bson:"type" json:"type"` // see resourcetypes.go
	Description string `bson:"description" json:"description"`

	// Uploaded file, stored under the resources/ namespace and referenced
	// by relative path.
	FilePath string `bson:"file_path" json:"file_path"`
	FileName string `bson:"file_name,omitempty" json:"file_name,omitempty"`
	FileSize int64  `bson:"file_size,omitempty" json:"file_size,omitempty"`

	CreatedByID   primitive.ObjectID `bson:"created_by_id" json:"created_by_id"`
	CreatedByName string             `bson:"created_by_name,omitempty" json:"created_by_name,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// HasFile reports whether the resource carries an uploaded file.
func (r *Resource) HasFile() bool {
	return r.FilePath != ""
}
