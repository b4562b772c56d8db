package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		// Format field name with spaces for error message (e.g., "itemID" -> "item ID")
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "collectionID" -> "collection ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"itemID":       "item ID",
		"collectionID": "collection ID",
		"siteID":       "site ID",
		"apiToken":     "API token",
		"path":         "path",
		"content":      "content",
		"query":        "query",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidatePageSize checks a page size against the service maximum.
// Zero means "use the default" and is accepted.
func ValidatePageSize(size, max int) error {
	if size < 0 || size > max {
		return &ValidationError{
			Field:   "pageSize",
			Message: fmt.Sprintf("must be between 1 and %d, got: %d", max, size),
		}
	}
	return nil
}
