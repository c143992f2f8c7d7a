// Package resources implements the MCP resource handlers.
//
// Resources provide read-only data the host can poll for context. The
// status resource re-derives everything from the documents on each
// read — there is no cached state to go stale between polls.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"planfiles/internal/planner"

	"github.com/mark3labs/mcp-go/mcp"
)

// Handler manages the planning resource endpoints.
type Handler struct {
	planner *planner.Planner
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(p *planner.Planner) *Handler {
	return &Handler{planner: p}
}

// StatusResource returns the MCP resource definition for planning status.
func (h *Handler) StatusResource() mcp.Resource {
	return mcp.NewResource(
		"plan://status",
		"Planning Session Status",
		mcp.WithResourceDescription("Checklist progress, error count, and document presence for the current plan"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleStatus returns the freshly computed planning snapshot as JSON.
func (h *Handler) HandleStatus(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	snap, err := h.planner.Snapshot()
	if err != nil {
		return errorResource(req.Params.URI, err.Error()), nil
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling status: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// errorResource returns a resource with an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Error: %s", message),
		},
	}
}
