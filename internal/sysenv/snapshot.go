// Package sysenv captures the current process environment as path sets.
package sysenv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"envprof/internal/model"
)

// EncodingError reports an environment entry that is not valid UTF-8.
// A snapshot missing that variable would produce a wrong plan, so the
// whole capture fails instead.
type EncodingError struct {
	Variable string // Offending name, possibly with invalid bytes
	Segment  string // Offending value segment, "" when the name is at fault
}

func (e *EncodingError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("environment variable name %q is not valid UTF-8", e.Variable)
	}
	return fmt.Sprintf("environment variable %q has a value that is not valid UTF-8: %q", e.Variable, e.Segment)
}

// Capture reads the environment of the current process.
func Capture() (*model.EnvMap, error) {
	return FromEnviron(os.Environ())
}

// FromEnviron builds a snapshot from "NAME=value" lines such as
// os.Environ returns. Each value is split on the platform path-list
// separator; empty segments are dropped and duplicates coalesced.
// Names that differ only by case share one entry.
func FromEnviron(environ []string) (*model.EnvMap, error) {
	snapshot := model.NewEnvMap()

	for _, entry := range environ {
		name, value, ok := splitEntry(entry)
		if !ok {
			continue
		}
		if !utf8.ValidString(name) {
			return nil, &EncodingError{Variable: name}
		}

		set := model.NewPathSet()
		for _, segment := range filepath.SplitList(value) {
			if !utf8.ValidString(segment) {
				return nil, &EncodingError{Variable: name, Segment: segment}
			}
			if segment == "" {
				continue
			}
			set.Add(model.NewPathValue(segment))
		}
		snapshot.InsertSet(name, set)
	}

	return snapshot, nil
}

// splitEntry cuts "NAME=value". Windows keeps per-drive directories in
// names that start with '=', so the search for '=' skips the first byte.
func splitEntry(entry string) (name, value string, ok bool) {
	if entry == "" {
		return "", "", false
	}
	i := strings.IndexByte(entry[1:], '=')
	if i < 0 {
		return "", "", false
	}
	return entry[:i+1], entry[i+2:], true
}
