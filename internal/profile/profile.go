// Package profile turns a parsed Profiles.toml document into a table of
// named profiles.
package profile

import "envprof/internal/model"

// Profile is one entry of the top-level `profile` array.
type Profile struct {
	Name   string        // Unique key used by requests and references
	Index  int64         // Ordering hint for listings, unused by resolution
	Add    []string      // Profiles whose additions and removals are inherited as is
	Remove []string      // Profiles whose additions and removals all become removals
	Env    *model.EnvMap // Values this profile adds directly
	Pos    int           // Position in the document's profile array
}

// Inherits reports whether the profile references other profiles.
func (p *Profile) Inherits() bool {
	return len(p.Add) > 0 || len(p.Remove) > 0
}
