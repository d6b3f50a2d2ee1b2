// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
)

// NonEmpty validates a string is non-empty after trimming whitespace.
func NonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("value is required")
	}
	return nil
}

// Field returns a criterio validator for a required string field.
func Field(field, value string) error {
	return criterio.Run(field, value, NonEmpty)
}
