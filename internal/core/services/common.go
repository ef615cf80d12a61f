package services

import "strings"

// optionalField returns the trimmed value of an optional request field, or
// the empty string when the field was absent.
func optionalField(field *string) string {
	if field == nil {
		return ""
	}
	return strings.TrimSpace(*field)
}
