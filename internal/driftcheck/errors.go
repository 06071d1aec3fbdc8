package driftcheck

import (
	"errors"
	"fmt"
)

// Failure kinds reported by the conformance check.
const (
	// ErrMissingInstance means either the request or the observed instance was not supplied.
	ErrMissingInstance = "missing_instance"

	// ErrUnknownAttribute means a configured attribute has no comparator.
	ErrUnknownAttribute = "unknown_attribute"
)

// ConformanceError explains why a started instance could not be checked
// against the request that launched it.
type ConformanceError struct {
	Kind      string
	Reason    string
	Attribute string
}

func (e *ConformanceError) Error() string {
	if e.Attribute == "" {
		return fmt.Sprintf("conformance check %s: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("conformance check %s: %s %q", e.Kind, e.Reason, e.Attribute)
}

func newConformanceError(kind, reason, attribute string) *ConformanceError {
	return &ConformanceError{Kind: kind, Reason: reason, Attribute: attribute}
}

// IsKind reports whether err is a ConformanceError of the given kind.
func IsKind(err error, kind string) bool {
	var e *ConformanceError
	return errors.As(err, &e) && e.Kind == kind
}

// ValidateAttributes rejects attribute names that no comparator understands,
// so a misspelt configuration fails before any instance is launched.
func ValidateAttributes(attributes []string) error {
	comparators := getAttributeComparators()
	var errs []error
	for _, attr := range attributes {
		if _, ok := comparators[normalizeAttributeName(attr)]; !ok {
			errs = append(errs, newConformanceError(ErrUnknownAttribute, "cannot compare attribute", attr))
		}
	}
	return errors.Join(errs...)
}
