// Package oasfix post-processes swag-generated OpenAPI 3.1 documents so they
// conform to the OpenAI-compatible reference specification.
//
// swag v2 cannot express several constructs the reference specification
// requires: nullable unions (anyOf with {type: "null"}), discriminated unions
// selected by a literal discriminator field, and multipart form request
// bodies. oasfix loads the generated document, applies a fixed sequence of
// structural rewrites keyed by schema and field name, and writes the
// corrected document back while preserving key order and formatting.
//
// The repository consists of three main packages:
//
//   - document: an order-preserving OpenAPI document model built on yaml.Node,
//     with suffix-based schema addressing
//   - fixer: the fix pipeline (nullable wrapping, union rewrites, files-API
//     and search-request shape fixes, null-type quoting)
//   - cmd/oasfix: the command-line interface
//
// # Quick Start
//
// Fix a generated document in place:
//
//	oasfix docs/openapi.yaml
//
// Or from Go:
//
//	import "github.com/leseb/oasfix/fixer"
//
//	result, err := fixer.FixWithOptions(fixer.WithFilePath("docs/openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.Document.Save(); err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("applied %d fixes\n", result.FixCount)
//
// Lookup misses (a configured schema suffix or field name absent from the
// document) are reported as warnings and skip only the affected rewrite; all
// remaining passes still run. This keeps the tool re-runnable against
// generator output that has partially drifted.
package oasfix
