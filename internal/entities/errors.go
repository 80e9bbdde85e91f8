package entities

import (
	"errors"
	"fmt"
)

// NotFoundError indicates that a referenced group or asset does not exist
// in its backing store. It signals a caller bug (e.g. a stale id), not a
// normal absence-of-rule condition.
type NotFoundError struct {
	Kind string // "group" or "asset"
	ID   int64
	Name string // set instead of ID for lookups by name
}

func (e *NotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
	}
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// TreeIntegrityError indicates that a group or asset hierarchy is corrupt:
// a cycle, an unknown parent, or a depth value inconsistent with the parent
// chain. Resolution under a broken tree would produce wrong security
// decisions, so this is surfaced instead of worked around.
type TreeIntegrityError struct {
	Kind   string // "group" or "asset"
	Detail string
}

func (e *TreeIntegrityError) Error() string {
	return fmt.Sprintf("%s tree integrity violation: %s", e.Kind, e.Detail)
}

// IsNotFound returns true if err is (or wraps) a NotFoundError
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// IsTreeIntegrity returns true if err is (or wraps) a TreeIntegrityError
func IsTreeIntegrity(err error) bool {
	var tie *TreeIntegrityError
	return errors.As(err, &tie)
}
