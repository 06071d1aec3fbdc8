package driftcheck

import (
	"sort"

	"ec2manager/internal/models"
)

// DriftResult represents the differences between the instance a user asked for
// and the instance the provider actually started.
type DriftResult struct {
	HasDrift  bool                          // True if any drift is detected
	Drifts    map[string]models.DriftDetail // Map of attribute names to drift details
	Requested *models.InstanceSpec          // The requested specification
	Actual    *models.InstanceAttributes    // The observed instance
}

// ConvertToDrifts converts a DriftResult to a slice ordered by attribute name.
func ConvertToDrifts(result *DriftResult) []models.DriftDetail {
	drifts := make([]models.DriftDetail, 0, len(result.Drifts))
	for _, detail := range result.Drifts {
		drifts = append(drifts, detail)
	}
	sort.Slice(drifts, func(i, j int) bool {
		return drifts[i].Attribute < drifts[j].Attribute
	})
	return drifts
}
