package demo

import (
	"github.com/dmitrymomot/viewkit"
	"github.com/dmitrymomot/viewkit/schema"
	"github.com/dmitrymomot/viewkit/ui"
)

// SchemaDoc is the JSON shape of one component schema. Param checks are code,
// not data, so only the declarative fields are exposed.
type SchemaDoc struct {
	Component string         `json:"component"`
	Params    []schema.Param `json:"params"`
}

// schemas serves every component schema in gallery order.
func (g *Gallery) schemas(ctx viewkit.Context, _ noArgs) viewkit.Response {
	all := ui.Schemas()
	docs := make([]SchemaDoc, 0, len(all))
	for _, s := range all {
		docs = append(docs, SchemaDoc{
			Component: s.Component(),
			Params:    s.Params(),
		})
	}
	return viewkit.JSON(docs)
}
