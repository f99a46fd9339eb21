// internal/app/features/resources/resourcetypes.go
package resources

import (
	"strings"

	"github.com/dalemusser/resourcehub/internal/domain/models"
)

// resourceTypeOptions returns the canonical list of resource types as
// ID/Label pairs for use in templates.
func resourceTypeOptions() []ResourceTypeOption {
	opts := make([]ResourceTypeOption, 0, len(models.ResourceTypes))
	for _, id := range models.ResourceTypes {
		opts = append(opts, ResourceTypeOption{ID: id, Label: typeLabel(id)})
	}
	return opts
}

// typeLabel is the human-friendly display form of a resource type ID
// (e.g., "lecture" -> "Lecture").
func typeLabel(id string) string {
	if id == "" {
		return ""
	}
	return strings.ToUpper(id[:1]) + id[1:]
}
