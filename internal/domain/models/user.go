// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account that can sign in: administrators, faculty,
// and students all share this record.
//
// NOTE:
//   - Role is never stored on the user. It is derived from IsSuperuser and
//     group membership (see internal/app/system/authz.ResolveRole).
//   - Group membership lives in the group_memberships collection.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username   string             `bson:"username" json:"username"`
	UsernameCI string             `bson:"username_ci" json:"username_ci"` // lowercase, diacritics-stripped
	FullName   string             `bson:"full_name,omitempty" json:"full_name,omitempty"`
	Email      string             `bson:"email,omitempty" json:"email,omitempty"`

	PasswordHash string `bson:"password_hash" json:"-"`
	IsSuperuser  bool   `bson:"is_superuser" json:"is_superuser"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
