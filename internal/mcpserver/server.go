// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the oasfix pipeline as an MCP tool over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/leseb/oasfix"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oasfix MCP server — repairs swag-generated OpenAPI 3.1 documents so they conform to the OpenAI-compatible reference specification.

The fix tool applies the full pipeline: nullable anyOf wrapping for pointer-typed fields, chunking-strategy discriminated unions (response and request side), request-body placeholder de-wrapping, the multipart upload body rewrite, search-request shape fixes, and null-type quoting. Lookup misses are returned as warnings and never abort the run.

Use dry_run=true to preview fixes without writing the document back, and include_document=true to receive the corrected document inline.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasfix", Version: oasfix.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fix",
		Description: "Apply the OpenAPI post-processing pipeline to a swag-generated document. Rewrites nullable fields, discriminated unions, the multipart upload body, and search-request shapes, then writes the document back in place. Use dry_run to preview and include_document to return the corrected document inline.",
	}, handleFix)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
