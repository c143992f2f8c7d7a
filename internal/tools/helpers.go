// Package tools implements the MCP tool handlers for the planning
// operations.
//
// Each tool follows the same pattern:
// - A struct holding its dependency (*planner.Planner) injected via constructor
// - Definition() returns the mcp.Tool schema
// - Handle() validates arguments and delegates to the planner
//
// Domain outcomes (missing document, no matching item) come back from
// the planner as prefixed result strings and are returned as ordinary
// text results; mcp.NewToolResultError is reserved for malformed
// arguments.
package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// intArg extracts an integer argument from a tool request, returning
// defaultVal if the key is missing or not a number (JSON numbers are float64).
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

// boolArg extracts a boolean argument from a tool request.
func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}

// stringSliceArg extracts a string-array argument from a tool request.
// Non-string elements are skipped.
func stringSliceArg(req mcp.CallToolRequest, key string) []string {
	raw, ok := req.GetArguments()[key].([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
