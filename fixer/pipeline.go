package fixer

import "github.com/leseb/oasfix/document"

// applyPasses runs the fix pipeline over the document in its fixed order.
//
// Passes are functionally independent except that null-type quoting must run
// last: every earlier pass constructs literal {type: "null"} markers at
// unpredictable nesting depths, and the quoting pass catches them all.
func (f *Fixer) applyPasses(doc *document.Document, result *FixResult) {
	ix := document.NewIndex(doc)

	// 1. Nullable field wrapping
	if f.isFixEnabled(FixTypeNullableField) {
		f.fixNullableFields(ix, result)
	}

	// 2. Files-API structural fixes
	if f.isFixEnabled(FixTypeMultipartUploadBody) {
		f.fixMultipartUploadBody(ix, result)
	}
	if f.isFixEnabled(FixTypeRedundantTypeMarker) {
		f.fixRedundantTypeMarker(ix, result)
	}

	// 3. Request-body placeholder de-wrap
	if f.isFixEnabled(FixTypeRequestBodyUnwrap) {
		f.unwrapRequestBodies(ix, result)
	}

	// 4. Chunking-strategy unions, response side then request side
	if f.isFixEnabled(FixTypeChunkingStrategyResponse) {
		f.fixResponseChunkingStrategy(ix, result)
	}
	if f.isFixEnabled(FixTypeChunkingStrategyRequest) {
		f.fixRequestChunkingStrategy(ix, result)
	}

	// 5. Search-request shape fixes
	if f.isFixEnabled(FixTypeSearchQueryUnion) ||
		f.isFixEnabled(FixTypeSearchFiltersUnion) ||
		f.isFixEnabled(FixTypeSearchDefault) {
		f.fixSearchRequest(ix, result)
	}

	// 6. Null-type quoting, always last and never gated
	f.quoteNullTypes(doc, result)
}
