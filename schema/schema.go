package schema

import (
	"fmt"
	"sort"
)

// Args is the named-argument map a caller supplies when constructing a
// component. Keys are parameter names declared by the component's Schema;
// values are arbitrary. A nil map is treated as empty.
type Args map[string]any

// Param describes one accepted argument of a component.
type Param struct {
	// Name identifies the parameter. It must be unique within a schema.
	Name string `json:"name"`

	// Required marks the parameter as mandatory: validation fails when no
	// entry for it is present in the argument map.
	Required bool `json:"required,omitempty"`

	// Default is substituted by Resolve when the parameter is absent.
	// A required parameter must not carry a default.
	Default any `json:"default,omitempty"`

	// Type is a human-readable type tag ("string", "content", "time.Time").
	// It is documentation only, never enforced directly, and is echoed in
	// diagnostics to aid diagnosis.
	Type string `json:"type,omitempty"`

	// Check is an optional predicate evaluated when the parameter is
	// present. A false result (or a panic during evaluation) fails
	// validation for that parameter.
	Check func(any) bool `json:"-"`

	// Doc is documentation text for generated reference material. It is
	// never evaluated.
	Doc string `json:"doc,omitempty"`
}

// Schema is an immutable, ordered set of parameter specifications bound to a
// component name. Construct one per component at definition time and reuse it
// for every invocation; all methods are safe for concurrent use.
type Schema struct {
	component string
	params    []Param
	index     map[string]int
}

// New builds a Schema for the named component. It rejects malformed
// definitions (empty component name, no parameters, empty or duplicate
// parameter names, a required parameter carrying a default, or a default that
// fails its own Check) with a *MalformedSchemaError listing every defect.
// Malformed schemas are library bugs, not caller misuse, which is why this
// failure class is distinct from Violations.
func New(component string, params ...Param) (*Schema, error) {
	var defects []string

	if component == "" {
		defects = append(defects, "component name is empty")
	}
	if len(params) == 0 {
		defects = append(defects, "schema declares no parameters")
	}

	index := make(map[string]int, len(params))
	for i, p := range params {
		if p.Name == "" {
			defects = append(defects, fmt.Sprintf("parameter %d has an empty name", i))
			continue
		}
		if _, dup := index[p.Name]; dup {
			defects = append(defects, fmt.Sprintf("duplicate parameter %q", p.Name))
			continue
		}
		index[p.Name] = i

		if p.Required && p.Default != nil {
			defects = append(defects, fmt.Sprintf("parameter %q is required and must not carry a default", p.Name))
		}
		if p.Default != nil && p.Check != nil && !evalCheck(p.Check, p.Default) {
			defects = append(defects, fmt.Sprintf("default for parameter %q fails its own check", p.Name))
		}
	}

	if len(defects) > 0 {
		return nil, &MalformedSchemaError{Component: component, Defects: defects}
	}

	s := &Schema{
		component: component,
		params:    make([]Param, len(params)),
		index:     index,
	}
	copy(s.params, params)
	return s, nil
}

// MustNew is like New but panics on a malformed schema. It is the form used
// at component definition sites, where a defect should abort startup rather
// than surface later as a runtime error.
func MustNew(component string, params ...Param) *Schema {
	s, err := New(component, params...)
	if err != nil {
		panic(err)
	}
	return s
}

// Component returns the component name the schema is bound to.
func (s *Schema) Component() string {
	return s.component
}

// Params returns the parameter specifications in declaration order. The
// returned slice is a copy; mutating it does not affect the schema.
func (s *Schema) Params() []Param {
	out := make([]Param, len(s.params))
	copy(out, s.params)
	return out
}

// Lookup returns the specification for the named parameter.
func (s *Schema) Lookup(name string) (Param, bool) {
	i, ok := s.index[name]
	if !ok {
		return Param{}, false
	}
	return s.params[i], true
}

// Validate checks an argument map against the schema. It is a pure function
// of its inputs: no state is read or written, so concurrent calls need no
// coordination.
//
// All problems are collected before reporting; Validate never stops at the
// first mismatch. Violations appear in a stable order: unknown arguments in
// lexical key order, then missing required parameters and failed checks in
// schema declaration order. On success Validate returns nil; otherwise it
// returns a *Violations error listing every mismatch.
func (s *Schema) Validate(args Args) error {
	v := &Violations{Component: s.component}

	// Closed-world arguments: every supplied key must be declared.
	var unknown []string
	for name := range args {
		if _, ok := s.index[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		v.add(Violation{
			Param:   name,
			Kind:    ViolationUnknownArgument,
			Message: "unknown argument",
		})
	}

	for _, p := range s.params {
		if !p.Required {
			continue
		}
		if _, ok := args[p.Name]; !ok {
			v.add(Violation{
				Param:   p.Name,
				Kind:    ViolationMissingArgument,
				Type:    p.Type,
				Message: "required argument is missing",
			})
		}
	}

	for _, p := range s.params {
		if p.Check == nil {
			continue
		}
		value, ok := args[p.Name]
		if !ok {
			continue
		}
		if !evalCheck(p.Check, value) {
			v.add(Violation{
				Param:   p.Name,
				Kind:    ViolationInvalidValue,
				Type:    p.Type,
				Message: invalidMessage(p.Type, value),
			})
		}
	}

	if v.Len() == 0 {
		return nil
	}
	return v
}

// Resolve validates the argument map and, on success, returns a new map with
// defaults filled in for absent optional parameters. The input map is never
// mutated. On failure the returned map is nil and the error is the same
// *Violations value Validate would produce.
func (s *Schema) Resolve(args Args) (Args, error) {
	if err := s.Validate(args); err != nil {
		return nil, err
	}

	resolved := make(Args, len(s.params))
	for name, value := range args {
		resolved[name] = value
	}
	for _, p := range s.params {
		if _, ok := resolved[p.Name]; ok {
			continue
		}
		if p.Default != nil {
			resolved[p.Name] = p.Default
		}
	}
	return resolved, nil
}

// evalCheck runs a predicate against a value, treating a panic during
// evaluation as a failed check. Predicates are arbitrary caller code; a
// misbehaving one should fail the single argument it guards, not take down
// the invocation.
func evalCheck(check func(any) bool, value any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return check(value)
}

func invalidMessage(typeTag string, value any) string {
	if typeTag == "" {
		return fmt.Sprintf("failed validation (got %T)", value)
	}
	return fmt.Sprintf("not a valid %s (got %T)", typeTag, value)
}
