// Package document provides an order-preserving model for OpenAPI documents.
//
// Documents are held as yaml.Node trees rather than Go maps so that mapping
// key order, literal non-ASCII text, and block formatting survive a
// load-transform-write round trip. The package offers:
//
//   - loading and saving in YAML or JSON (format detected from the file
//     extension, then from content)
//   - node constructors and mapping accessors for building and mutating
//     schema fragments in place
//   - an Index that resolves a stable schema-name suffix against the
//     document's long, environment-dependent fully-qualified keys
//
// All lookups fail softly: a miss is reported through a boolean return, and
// callers decide whether to warn and skip. Nothing in this package aborts on
// a missing key.
package document
