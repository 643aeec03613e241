package schema

import (
	"fmt"
	"strings"
)

// MalformedSchemaError reports authoring defects in a schema definition:
// duplicate or empty parameter names, a required parameter carrying a
// default, or a default that fails its own check. It indicates a bug in the
// library defining the schema, never misuse by a caller, and is therefore a
// failure class separate from Violations.
type MalformedSchemaError struct {
	Component string
	Defects   []string
}

func (e *MalformedSchemaError) Error() string {
	return fmt.Sprintf("malformed schema for %q: %s", e.Component, strings.Join(e.Defects, "; "))
}
