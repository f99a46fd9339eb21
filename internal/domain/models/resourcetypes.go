// internal/domain/models/resourcetypes.go
package models

// Canonical resource type identifiers.
//
// These values are stored in the database in the Resource.Type field and are
// used throughout the application as stable keys. Human-facing labels are
// provided where the select menus are built.
const (
	ResourceTypeLecture    = "lecture"
	ResourceTypeAssignment = "assignment"
	ResourceTypeReference  = "reference"
)

// ResourceTypes is the full set of allowed resource type identifiers.
//
// This slice is the single source of truth for validation. Any new type must
// be added here to be considered valid.
var ResourceTypes = []string{
	ResourceTypeLecture,
	ResourceTypeAssignment,
	ResourceTypeReference,
}

// IsValidResourceType reports whether t is one of the allowed identifiers.
func IsValidResourceType(t string) bool {
	for _, v := range ResourceTypes {
		if v == t {
			return true
		}
	}
	return false
}
