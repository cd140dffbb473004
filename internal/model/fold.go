package model

import "golang.org/x/text/cases"

// FoldKey returns the case-folded form of s, used to compare variable names.
func FoldKey(s string) string {
	// A Caser keeps state, so each call gets its own.
	return cases.Fold().String(s)
}
