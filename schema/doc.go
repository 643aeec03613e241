// Package schema provides declarative argument validation for UI components.
//
// Components in viewkit accept their arguments as untyped named-argument maps
// (Args). A Schema is the component's safety net against misuse: it declares
// every accepted parameter once, at component definition time, and every
// construction of the component is checked against it before any output is
// produced. Validation is closed-world (an argument the schema does not
// declare is itself an error) and exhaustive: all problems with a call are
// collected and reported in a single diagnostic, so a consumer can fix
// everything at once instead of playing whack-a-mole.
//
// # Architecture
//
// The package separates two failure classes. A malformed schema (duplicate
// parameter names, a default that fails its own predicate) is a library bug
// and surfaces as *MalformedSchemaError from New, or as a panic from MustNew
// at definition time. A bad argument map is consumer misuse and surfaces as
// *Violations from Validate or Resolve, scoped to that one invocation.
//
// Core building blocks:
//   - Param      – one named, optionally required, optionally validated argument
//   - Schema     – immutable, ordered set of Params bound to a component name
//   - Args       – the per-invocation argument map supplied by a caller
//   - Violations – error type carrying every detected mismatch, in stable order
//
// Schemas hold no mutable state after construction, so a single Schema value
// is safe to share across arbitrarily many concurrent validations.
//
// # Usage
//
//	var buttonSchema = schema.MustNew("button",
//		schema.Param{Name: "label", Required: true, Type: "string", Check: schema.IsString},
//		schema.Param{Name: "kind", Default: "primary", Type: "string",
//			Check: schema.OneOf("primary", "secondary", "ghost")},
//	)
//
//	func Button(args schema.Args) (string, error) {
//		resolved, err := buttonSchema.Resolve(args)
//		if err != nil {
//			return "", err
//		}
//		// resolved has "kind" filled in with "primary" when absent
//		...
//	}
//
// # Error Handling
//
// Violations implements the error interface and is detected with
// IsViolations or extracted with AsViolations, including through wrapped
// errors. Each Violation names the offending parameter, the kind of mismatch
// (unknown, missing, invalid) and the parameter's declared type tag when one
// was given, which is usually enough to correct the call site without reading
// the component's source.
//
// # Performance Considerations
//
// Validation cost is bounded by the schema and argument map sizes, both of
// which are small and fixed per component. Predicates are arbitrary caller
// code: the validator treats them as opaque and recovers from panics (a
// panicking predicate counts as a failed check), but it does not time-box
// them; keep expensive work out of Check functions.
package schema
