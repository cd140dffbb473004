package model

import "regexp"

var variableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidName reports whether name can be written unquoted as a variable
// name in every supported shell.
func ValidName(name string) bool {
	return variableName.MatchString(name)
}
