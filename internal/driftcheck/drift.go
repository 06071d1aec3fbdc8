package driftcheck

import (
	"slices"
	"strings"

	"ec2manager/internal/models"
)

const nameTagKey = "Name"

// getSkipAttributes returns a list of attributes that should be skipped during drift detection.
func getSkipAttributes() []string {
	skipAttributes := []string{"instance_id"}
	return skipAttributes
}

// AttributeComparator is a function type that compares a requested attribute with the
// observed one and returns whether they differ, along with both values.
type AttributeComparator func(requested *models.InstanceSpec, actual *models.InstanceAttributes) (hasDrift bool, requestedValue any, actualValue any)

// DetectDrift compares a requested instance specification with the attributes the
// provider reports for the started instance.
// The attributesToCheck parameter specifies which attributes to compare.
// If attributesToCheck is empty, it checks all comparable attributes.
func DetectDrift(requested *models.InstanceSpec, actual *models.InstanceAttributes, attributesToCheck []string) (*DriftResult, error) {
	if requested == nil {
		return nil, newConformanceError(ErrMissingInstance, "requested instance specification is nil", "")
	}
	if actual == nil {
		return nil, newConformanceError(ErrMissingInstance, "observed instance attributes are nil", "")
	}

	result := &DriftResult{
		HasDrift:  false,
		Drifts:    make(map[string]models.DriftDetail),
		Requested: requested,
		Actual:    actual,
	}

	allAttributes := getAttributeComparators()

	if len(attributesToCheck) > 0 {
		if err := checkSpecificAttributes(result, requested, actual, attributesToCheck, allAttributes); err != nil {
			return result, err
		}
	} else {
		checkAllAttributes(result, requested, actual, allAttributes)
	}

	return result, nil
}

// getAttributeComparators returns a map of attribute names to comparison functions.
// Requested values that are empty are treated as "no preference" and never drift.
func getAttributeComparators() map[string]AttributeComparator {
	return map[string]AttributeComparator{
		// instance ids are assigned by the provider, there is nothing to request
		"instance_id": func(_ *models.InstanceSpec, actual *models.InstanceAttributes) (bool, any, any) {
			return false, nil, actual.InstanceID
		},
		"instance_type": func(requested *models.InstanceSpec, actual *models.InstanceAttributes) (bool, any, any) {
			if requested.InstanceType == "" {
				return false, requested.InstanceType, actual.InstanceType
			}
			return requested.InstanceType != actual.InstanceType, requested.InstanceType, actual.InstanceType
		},
		"ami": func(requested *models.InstanceSpec, actual *models.InstanceAttributes) (bool, any, any) {
			if requested.ImageID == "" {
				return false, requested.ImageID, actual.ImageID
			}
			return requested.ImageID != actual.ImageID, requested.ImageID, actual.ImageID
		},
		"key_name": func(requested *models.InstanceSpec, actual *models.InstanceAttributes) (bool, any, any) {
			if requested.KeyPairName == "" {
				return false, requested.KeyPairName, actual.KeyPairName
			}
			return requested.KeyPairName != actual.KeyPairName, requested.KeyPairName, actual.KeyPairName
		},
		"name": func(requested *models.InstanceSpec, actual *models.InstanceAttributes) (bool, any, any) {
			name, tagged := actual.Tags[nameTagKey]
			if requested.Name == "" {
				return false, requested.Name, name
			}
			return !tagged || name != requested.Name, requested.Name, name
		},
		"security_groups": func(requested *models.InstanceSpec, actual *models.InstanceAttributes) (bool, any, any) {
			if requested.RuleGroupName == "" {
				return false, nil, actual.RuleGroupNames
			}
			// Other groups may be attached as well, only the requested one must be present
			return !slices.Contains(actual.RuleGroupNames, requested.RuleGroupName),
				[]string{requested.RuleGroupName}, actual.RuleGroupNames
		},
	}
}

// checkSpecificAttributes checks for drift in a specific set of attributes
func checkSpecificAttributes(
	result *DriftResult,
	requested *models.InstanceSpec,
	actual *models.InstanceAttributes,
	attributesToCheck []string,
	allAttributes map[string]AttributeComparator,
) error {
	for _, attr := range attributesToCheck {
		normalizedAttr := normalizeAttributeName(attr)
		checkFn, exists := allAttributes[normalizedAttr]
		if !exists {
			return newConformanceError(ErrUnknownAttribute, "cannot compare attribute", attr)
		}
		checkAttributeAndUpdateResult(result, normalizedAttr, checkFn, requested, actual)
	}
	return nil
}

// checkAllAttributes checks for drift in all available attributes except the skipped ones
func checkAllAttributes(
	result *DriftResult,
	requested *models.InstanceSpec,
	actual *models.InstanceAttributes,
	allAttributes map[string]AttributeComparator,
) {
	for attr, checkFn := range allAttributes {
		if slices.Contains(getSkipAttributes(), attr) {
			continue
		}
		checkAttributeAndUpdateResult(result, attr, checkFn, requested, actual)
	}
}

// checkAttributeAndUpdateResult checks a single attribute for drift and updates the result
func checkAttributeAndUpdateResult(
	result *DriftResult,
	attrName string,
	checkFn AttributeComparator,
	requested *models.InstanceSpec,
	actual *models.InstanceAttributes,
) {
	hasDrift, requestedValue, actualValue := checkFn(requested, actual)
	if !hasDrift {
		return
	}

	result.HasDrift = true
	result.Drifts[attrName] = models.DriftDetail{
		Attribute:      attrName,
		RequestedValue: requestedValue,
		ActualValue:    actualValue,
	}
}

// normalizeAttributeName standardizes attribute names for comparison, so that
// "instance-type", "instanceType" and "type" all resolve to the same comparator.
func normalizeAttributeName(attr string) string {
	normalized := strings.ToLower(attr)

	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.ReplaceAll(normalized, " ", "_")

	specialCases := map[string]string{
		"type":           "instance_type",
		"instancetype":   "instance_type",
		"class":          "instance_type",
		"image":          "ami",
		"image_id":       "ami",
		"ami_id":         "ami",
		"key":            "key_name",
		"keyname":        "key_name",
		"key_pair":       "key_name",
		"sg":             "security_groups",
		"securitygroup":  "security_groups",
		"security_group": "security_groups",
		"securitygroups": "security_groups",
		"tag_name":       "name",
		"id":             "instance_id",
	}

	if replacement, exists := specialCases[normalized]; exists {
		return replacement
	}

	return normalized
}
