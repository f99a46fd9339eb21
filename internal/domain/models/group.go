// internal/domain/models/group.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Group is a named role grouping ("Faculty", "Student").
//
// Membership is stored in the group_memberships collection, never embedded
// here. Groups exist only to drive role derivation; they carry no other
// capability data.
type Group struct {
	ID     primitive.ObjectID `bson:"_id" json:"id"`
	Name   string             `bson:"name" json:"name"`
	NameCI string             `bson:"name_ci" json:"name_ci"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Well-known group names used for role derivation.
const (
	GroupFaculty = "Faculty"
	GroupStudent = "Student"
)
