// Package demo is the component gallery: a small server-rendered app that
// exercises every viewkit component against its schema. Each component gets a
// page with live examples and a generated parameter reference, the misuse
// page shows the violation reports broken calls produce, and the date picker
// page drives the full Datastar round trip. Schemas are also served as JSON
// under /api/schemas, and theme file edits stream to open pages over SSE.
package demo
