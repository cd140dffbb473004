package model

import (
	"strings"
	"unicode"
)

// PathValue is one segment of a path-list variable such as PATH.
//
// Two values are equal when they match case-insensitively, treating '/' and
// '\' as the same character at every position and ignoring any trailing
// separators. "C:/Foo/" and "c:\foo" are the same PathValue.
type PathValue struct {
	raw string // Value as written in the profile or the environment
	key string // Normalized form used for equality
}

// NewPathValue wraps s. The original spelling is kept for output.
func NewPathValue(s string) PathValue {
	return PathValue{raw: s, key: pathKey(s)}
}

// String returns the value as it was written.
func (p PathValue) String() string {
	return p.raw
}

// Key returns the normalized comparison key.
func (p PathValue) Key() string {
	return p.key
}

// Equal reports whether p and o name the same path.
func (p PathValue) Equal(o PathValue) bool {
	return p.key == o.key
}

// pathKey folds one rune at a time, so a key has exactly as many runes as
// the trimmed value. "ß" stays distinct from "ss".
func pathKey(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\\' {
			return '/'
		}
		return unicode.ToLower(unicode.ToUpper(r))
	}, strings.TrimRight(s, `/\`))
}
