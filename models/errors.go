package models

import (
	"fmt"
	"strings"
)

// ValidationError reports a mismatch between a JSON payload and an entity
// schema. Path is the dotted path to the offending field, using internal
// field names (e.g. "otf_class.studio.studio_uuid").
type ValidationError struct {
	Path    string
	Reason  string
	Value   any
	Allowed []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("validation failed for %q: %s", e.Path, e.Reason)
	if e.Value != nil {
		msg += fmt.Sprintf(" (got %v)", e.Value)
	}
	if len(e.Allowed) > 0 {
		msg += fmt.Sprintf(", allowed: [%s]", strings.Join(e.Allowed, ", "))
	}
	return msg
}

// nest prefixes a validation error coming out of a nested entity with the
// parent field name, so callers always see the full dotted path.
func nest(field string, err error) error {
	if ve, ok := err.(*ValidationError); ok {
		return &ValidationError{
			Path:    field + "." + ve.Path,
			Reason:  ve.Reason,
			Value:   ve.Value,
			Allowed: ve.Allowed,
		}
	}
	return &ValidationError{Path: field, Reason: err.Error()}
}
