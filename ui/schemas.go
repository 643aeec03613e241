package ui

import "github.com/dmitrymomot/viewkit/schema"

// gallery order, stable across releases
var componentSchemas = []*schema.Schema{
	labelSchema,
	titleSchema,
	paragraphSchema,
	boxSchema,
	vboxSchema,
	hboxSchema,
	datePickerSchema,
}

// Schemas returns every component schema in gallery order. The slice is a
// copy; the schemas themselves are immutable.
func Schemas() []*schema.Schema {
	out := make([]*schema.Schema, len(componentSchemas))
	copy(out, componentSchemas)
	return out
}

// SchemaFor returns the schema of the named component.
func SchemaFor(component string) (*schema.Schema, bool) {
	for _, s := range componentSchemas {
		if s.Component() == component {
			return s, true
		}
	}
	return nil, false
}
