package resolve

import (
	"fmt"
	"strings"
)

// UnknownProfileError reports a reference to a profile that does not exist.
type UnknownProfileError struct {
	Name         string // Missing profile
	ReferencedBy string // Profile holding the reference, "" for a direct request
}

func (e *UnknownProfileError) Error() string {
	if e.ReferencedBy == "" {
		return fmt.Sprintf("profile %q does not exist", e.Name)
	}
	return fmt.Sprintf("profile %q referenced by %q does not exist", e.Name, e.ReferencedBy)
}

// CyclicReferenceError reports a profile that inherits from itself,
// directly or through other profiles.
type CyclicReferenceError struct {
	Chain []string // Reference path, first and last element are the same profile
}

func (e *CyclicReferenceError) Error() string {
	return "cyclic profile reference: " + strings.Join(e.Chain, " -> ")
}
