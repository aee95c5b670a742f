// Package fixer repairs swag-generated OpenAPI 3.1 documents.
//
// The fixer applies a fixed sequence of structural rewrites to a parsed
// document:
//
//  1. Nullable wrapping: configured pointer-typed fields become
//     anyOf unions with a {type: "null"} variant.
//  2. Files-API fixes: the multipart upload body is rewritten and a
//     redundant top-level type marker is removed.
//  3. Request-body de-wrap: two-element placeholder oneOf wrappers
//     collapse to their $ref.
//  4. Chunking-strategy unions: the response-side schema and the
//     request-side chunking_strategy properties become discriminated
//     oneOf unions over named variant schemas.
//  5. Search-request fixes: the query and filters fields become unions
//     (filters recursively so) and two fields gain default values.
//  6. Null-type quoting: every {type: "null"} marker in the tree is
//     restyled so the writer emits a quoted string instead of the YAML
//     null token. This pass always runs last because earlier passes
//     construct null markers at arbitrary nesting depths.
//
// Passes never abort the run: a schema suffix or field name that cannot be
// found is logged as a warning and the affected rewrite is skipped.
package fixer
