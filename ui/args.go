package ui

import (
	"time"

	"github.com/dmitrymomot/viewkit/schema"
)

// Typed readers for resolved argument maps. The zero-value fallbacks never
// fire for arguments that passed their schema checks; they make absent
// optional arguments read as zero values.

func stringArg(args schema.Args, name string) string {
	s, _ := args[name].(string)
	return s
}

func boolArg(args schema.Args, name string) bool {
	b, _ := args[name].(bool)
	return b
}

func intArg(args schema.Args, name string) int {
	n, _ := args[name].(int)
	return n
}

// timeArg reports a usable time argument. A zero time counts as absent.
func timeArg(args schema.Args, name string) (time.Time, bool) {
	t, ok := args[name].(time.Time)
	return t, ok && !t.IsZero()
}

func contentArg(args schema.Args, name string) Content {
	c, _ := AsContent(args[name])
	return c
}
