package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/leseb/oasfix"
	"github.com/leseb/oasfix/fixer"
	"github.com/leseb/oasfix/internal/cliutil"
	"github.com/leseb/oasfix/internal/mcpserver"
)

func main() {
	if len(os.Args) != 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "version", "-v", "--version":
		fmt.Printf("oasfix v%s\n", oasfix.Version())
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	case "mcp":
		if err := mcpserver.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		if err := handleFix(os.Args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// handleFix runs the fix pipeline against the document at path and writes
// it back in place. Warnings stream to stderr and do not affect the exit
// code; any error returned here is fatal and aborts before the write.
func handleFix(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%s does not exist", path)
	}

	logger := fixer.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	result, err := fixer.FixWithOptions(
		fixer.WithFilePath(path),
		fixer.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if err := result.Document.Write(path); err != nil {
		return err
	}

	fmt.Printf("Fixed %d issue(s) in %s\n", result.FixCount, path)
	return nil
}

func printUsage(w io.Writer) {
	cliutil.Writef(w, "Usage: oasfix <openapi.yaml|openapi.json>\n\n")
	cliutil.Writef(w, "Post-process a swag-generated OpenAPI 3.1 document so it conforms to the\n")
	cliutil.Writef(w, "OpenAI-compatible reference specification. The document is fixed in place.\n\n")
	cliutil.Writef(w, "Applied fixes:\n")
	cliutil.Writef(w, "  - Nullable fields: pointer-typed fields become anyOf unions with a null variant\n")
	cliutil.Writef(w, "  - Chunking strategy: response and request schemas become discriminated unions\n")
	cliutil.Writef(w, "  - Request bodies: placeholder oneOf wrappers collapse to direct references\n")
	cliutil.Writef(w, "  - Files API: the multipart upload body is rewritten and a redundant type\n")
	cliutil.Writef(w, "    marker is removed\n")
	cliutil.Writef(w, "  - Search requests: query and filters become unions, defaults are injected\n")
	cliutil.Writef(w, "  - Null markers: {type: \"null\"} is always written as a quoted string\n\n")
	cliutil.Writef(w, "Other commands:\n")
	cliutil.Writef(w, "  oasfix mcp        run the MCP stdio server\n")
	cliutil.Writef(w, "  oasfix version    print the version\n")
	cliutil.Writef(w, "  oasfix help       print this help\n\n")
	cliutil.Writef(w, "Lookup misses (schema or field names absent from the document) are reported\n")
	cliutil.Writef(w, "as warnings on stderr; the affected rewrite is skipped and the run continues.\n")
}
