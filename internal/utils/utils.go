package utils

import "strings"

// TrimmedOrNil returns a pointer to the trimmed value, or nil when it is blank.
func TrimmedOrNil(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
