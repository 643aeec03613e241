package viewkit

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// Datastar detection constants.
const (
	// DataStarAcceptHeader is the Accept header value that marks a Datastar request.
	DataStarAcceptHeader = "text/event-stream"

	// DataStarQueryParam is the query parameter Datastar uses for signals.
	DataStarQueryParam = "datastar"
)

// Patch mode aliases so call sites don't import the datastar package.
const (
	PatchOuter   = datastar.ElementPatchModeOuter   // Morphs element (default)
	PatchInner   = datastar.ElementPatchModeInner   // Replace inner HTML
	PatchReplace = datastar.ElementPatchModeReplace // Replace entire element
	PatchRemove  = datastar.ElementPatchModeRemove  // Remove element
	PatchAppend  = datastar.ElementPatchModeAppend  // Append inside element
	PatchPrepend = datastar.ElementPatchModePrepend // Prepend inside element
	PatchBefore  = datastar.ElementPatchModeBefore  // Insert before element
	PatchAfter   = datastar.ElementPatchModeAfter   // Insert after element
)

// IsDataStar checks if the request comes from Datastar. Such requests accept
// Server-Sent Events and may carry signals in the query parameter or body.
func IsDataStar(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	if strings.Contains(accept, DataStarAcceptHeader) {
		return true
	}

	if r.URL.Query().Has(DataStarQueryParam) {
		return true
	}

	contentType := r.Header.Get("Content-Type")
	return strings.Contains(contentType, "application/x-datastar")
}

// NewSSE creates a Server-Sent Event generator for Datastar responses.
func NewSSE(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}
