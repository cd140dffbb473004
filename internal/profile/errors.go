package profile

import (
	"fmt"

	"github.com/pkg/errors"
)

// ConfigStructureError reports a document that does not have the expected
// shape: a field of the wrong type, a missing name, a duplicate name.
type ConfigStructureError struct {
	Index  int    // Position in the profile array, -1 for document-level keys
	Field  string // Field path inside the entry, e.g. "env.PATH[1]"
	Reason string // What is wrong, e.g. "is not a string"
}

func (e *ConfigStructureError) Error() string {
	return fmt.Sprintf("invalid configuration: key %s %s", e.Key(), e.Reason)
}

// Key locates the offending entry, e.g. "profile[2].env.PATH[1]".
func (e *ConfigStructureError) Key() string {
	if e.Index < 0 {
		return e.Field
	}
	key := fmt.Sprintf("%s[%d]", profileKey, e.Index)
	if e.Field != "" {
		key += "." + e.Field
	}
	return key
}

// ErrConfigNotFound is returned when no Profiles.toml can be located.
var ErrConfigNotFound = errors.New("profiles configuration not found")
