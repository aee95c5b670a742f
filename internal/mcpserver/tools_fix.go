package mcpserver

import (
	"context"
	"fmt"

	"github.com/leseb/oasfix/fixer"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type fixInput struct {
	Path            string `json:"path"                       jsonschema:"Path to the generated OpenAPI document (YAML or JSON)"`
	DryRun          bool   `json:"dry_run,omitempty"          jsonschema:"Preview fixes without writing the document back"`
	IncludeDocument bool   `json:"include_document,omitempty" jsonschema:"Include the full corrected document in output"`
}

type fixApplied struct {
	Type        string `json:"type"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

type fixOutput struct {
	FixCount  int          `json:"fix_count"`
	Fixes     []fixApplied `json:"fixes,omitempty"`
	Warnings  []string     `json:"warnings,omitempty"`
	WrittenTo string       `json:"written_to,omitempty"`
	Document  string       `json:"document,omitempty"`
}

func handleFix(_ context.Context, _ *mcp.CallToolRequest, input fixInput) (*mcp.CallToolResult, fixOutput, error) {
	if input.Path == "" {
		return errResult(fmt.Errorf("path is required")), fixOutput{}, nil
	}

	result, err := fixer.FixWithOptions(fixer.WithFilePath(input.Path))
	if err != nil {
		return errResult(err), fixOutput{}, nil
	}

	output := fixOutput{
		FixCount: result.FixCount,
		Warnings: result.Warnings,
	}

	output.Fixes = makeSlice[fixApplied](len(result.Fixes))
	for _, f := range result.Fixes {
		output.Fixes = append(output.Fixes, fixApplied{
			Type:        string(f.Type),
			Path:        f.Path,
			Description: f.Description,
		})
	}

	if !input.DryRun {
		if err := result.Document.Save(); err != nil {
			return errResult(fmt.Errorf("failed to write document: %w", err)), fixOutput{}, nil
		}
		output.WrittenTo = input.Path
	}

	if input.IncludeDocument {
		data, err := result.Document.Marshal()
		if err != nil {
			return errResult(err), fixOutput{}, nil
		}
		output.Document = string(data)
	}

	return nil, output, nil
}
