package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ViolationKind classifies a single argument mismatch.
type ViolationKind string

const (
	// ViolationUnknownArgument reports a supplied key the schema does not declare.
	ViolationUnknownArgument ViolationKind = "unknown_argument"
	// ViolationMissingArgument reports a required parameter with no entry in the call.
	ViolationMissingArgument ViolationKind = "missing_argument"
	// ViolationInvalidValue reports a present value that failed its parameter's check.
	ViolationInvalidValue ViolationKind = "invalid_value"
)

// Violation is one detected mismatch between supplied arguments and a schema.
type Violation struct {
	Param   string        `json:"param"`
	Kind    ViolationKind `json:"kind"`
	Type    string        `json:"type,omitempty"`
	Message string        `json:"message"`
}

// Violations aggregates every mismatch found in a single validation call. It
// implements the error interface. A consumer treats it as a fatal
// precondition failure for the one component invocation it describes,
// aborting the rendering of that instance, never as a process-fatal error.
type Violations struct {
	Component string      `json:"component"`
	List      []Violation `json:"violations"`
}

func (v *Violations) add(violation Violation) {
	v.List = append(v.List, violation)
}

// Error renders all violations in one line, prefixed with the component name.
func (v *Violations) Error() string {
	if len(v.List) == 0 {
		return fmt.Sprintf("%s: invalid arguments", v.Component)
	}

	parts := make([]string, 0, len(v.List))
	for _, violation := range v.List {
		parts = append(parts, fmt.Sprintf("%s: %s", violation.Param, violation.Message))
	}
	return fmt.Sprintf("%s: invalid arguments: %s", v.Component, strings.Join(parts, "; "))
}

// Len returns the number of violations.
func (v *Violations) Len() int {
	return len(v.List)
}

// Has reports whether any violation names the given parameter.
func (v *Violations) Has(param string) bool {
	for _, violation := range v.List {
		if violation.Param == param {
			return true
		}
	}
	return false
}

// Get returns every violation naming the given parameter, in report order.
func (v *Violations) Get(param string) []Violation {
	var out []Violation
	for _, violation := range v.List {
		if violation.Param == param {
			out = append(out, violation)
		}
	}
	return out
}

// Params returns the distinct parameter names with violations, in report order.
func (v *Violations) Params() []string {
	var params []string
	seen := make(map[string]bool, len(v.List))
	for _, violation := range v.List {
		if !seen[violation.Param] {
			params = append(params, violation.Param)
			seen[violation.Param] = true
		}
	}
	return params
}

// AsViolations extracts a *Violations from an error chain. It returns nil
// when the chain contains none.
func AsViolations(err error) *Violations {
	if err == nil {
		return nil
	}

	var v *Violations
	if errors.As(err, &v) {
		return v
	}
	return nil
}

// IsViolations reports whether the error chain contains argument violations.
func IsViolations(err error) bool {
	if err == nil {
		return false
	}

	var v *Violations
	return errors.As(err, &v)
}
