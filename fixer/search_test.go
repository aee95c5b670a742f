package fixer

import (
	"testing"

	"github.com/leseb/oasfix/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchYAML = `openapi: 3.1.0
components:
  schemas:
    gw_schema.SearchVectorStoreRequest:
      type: object
      properties:
        query:
          type: string
          description: The search query.
        filters:
          type: object
          description: Filter based on file attributes.
        max_num_results:
          type: integer
        rewrite_query:
          type: boolean
`

// searchFixer returns a fixer limited to the given search fix types.
func searchFixer(types ...FixType) *Fixer {
	f := New()
	f.EnabledFixes = types
	return f
}

// TestSearchQueryUnion tests the string-or-array rewrite of the query field
func TestSearchQueryUnion(t *testing.T) {
	doc := loadDoc(t, searchYAML)
	result := fixDoc(t, searchFixer(FixTypeSearchQueryUnion), doc)
	assert.Equal(t, 1, countFixes(result, FixTypeSearchQueryUnion))

	query := mustGet(t, doc.Root(), "components", "schemas",
		"gw_schema.SearchVectorStoreRequest", "properties", "query")
	assert.Equal(t, []string{"description", "oneOf"}, document.MapKeys(query))
	assert.Equal(t, "The search query.", mustGet(t, query, "description").Value)

	oneOf := mustGet(t, query, "oneOf")
	require.Len(t, oneOf.Content, 2)
	assert.Equal(t, "string", mustGet(t, oneOf.Content[0], "type").Value)

	arr := oneOf.Content[1]
	assert.Equal(t, "array", mustGet(t, arr, "type").Value)
	assert.Equal(t, "string", mustGet(t, arr, "items", "type").Value)
	assert.Equal(t, "1", mustGet(t, arr, "minItems").Value)
}

// TestSearchFiltersUnion tests the recursive comparison/compound rewrite
func TestSearchFiltersUnion(t *testing.T) {
	doc := loadDoc(t, searchYAML)
	result := fixDoc(t, searchFixer(FixTypeSearchFiltersUnion), doc)
	assert.Equal(t, 1, countFixes(result, FixTypeSearchFiltersUnion))

	schemas := mustGet(t, doc.Root(), "components", "schemas")

	filters := mustGet(t, schemas, "gw_schema.SearchVectorStoreRequest", "properties", "filters")
	oneOf := mustGet(t, filters, "oneOf")
	require.Len(t, oneOf.Content, 2)
	assert.Equal(t, "#/components/schemas/ComparisonFilter", refValue(t, oneOf.Content[0]))
	assert.Equal(t, "#/components/schemas/CompoundFilter", refValue(t, oneOf.Content[1]))

	// ComparisonFilter: six-way operator enum, three required fields,
	// value itself a string/number/boolean union
	comparison := mustGet(t, schemas, "ComparisonFilter")
	assert.Equal(t, []string{"eq", "ne", "gt", "gte", "lt", "lte"},
		seqStrings(t, mustGet(t, comparison, "properties", "type", "enum")))
	assert.Equal(t, []string{"type", "key", "value"},
		seqStrings(t, mustGet(t, comparison, "required")))
	valueAnyOf := mustGet(t, comparison, "properties", "value", "anyOf")
	require.Len(t, valueAnyOf.Content, 3)

	// CompoundFilter refers back to both filter schemas, itself included
	compound := mustGet(t, schemas, "CompoundFilter")
	assert.Equal(t, []string{"and", "or"},
		seqStrings(t, mustGet(t, compound, "properties", "type", "enum")))
	itemsOneOf := mustGet(t, compound, "properties", "filters", "items", "oneOf")
	require.Len(t, itemsOneOf.Content, 2)
	assert.Equal(t, "#/components/schemas/ComparisonFilter", refValue(t, itemsOneOf.Content[0]))
	assert.Equal(t, "#/components/schemas/CompoundFilter", refValue(t, itemsOneOf.Content[1]),
		"the compound filter must reference itself for arbitrarily deep trees")
}

// TestSearchDefaults tests injected defaults with types left unchanged
func TestSearchDefaults(t *testing.T) {
	doc := loadDoc(t, searchYAML)
	result := fixDoc(t, searchFixer(FixTypeSearchDefault), doc)
	assert.Equal(t, 2, countFixes(result, FixTypeSearchDefault))

	props := mustGet(t, doc.Root(), "components", "schemas",
		"gw_schema.SearchVectorStoreRequest", "properties")

	maxResults := mustGet(t, props, "max_num_results")
	assert.Equal(t, "10", mustGet(t, maxResults, "default").Value)
	assert.Equal(t, "integer", mustGet(t, maxResults, "type").Value, "type is unchanged")

	rewrite := mustGet(t, props, "rewrite_query")
	assert.Equal(t, "false", mustGet(t, rewrite, "default").Value)
	assert.Equal(t, "boolean", mustGet(t, rewrite, "type").Value)
}

// TestSearchDefaultsAbsentFields tests that defaults only apply to fields
// that exist
func TestSearchDefaultsAbsentFields(t *testing.T) {
	doc := loadDoc(t, `openapi: 3.1.0
components:
  schemas:
    gw_schema.SearchVectorStoreRequest:
      type: object
      properties:
        query:
          type: string
`)
	result := fixDoc(t, searchFixer(FixTypeSearchDefault), doc)
	assert.Zero(t, countFixes(result, FixTypeSearchDefault))
}

// TestSearchRequestMiss tests the soft miss when no schema matches the
// search-request suffix
func TestSearchRequestMiss(t *testing.T) {
	doc := loadDoc(t, `openapi: 3.1.0
components:
  schemas:
    gw_schema.Other:
      type: object
`)
	result := fixDoc(t, searchFixer(FixTypeSearchQueryUnion, FixTypeSearchFiltersUnion, FixTypeSearchDefault), doc)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "schema.SearchVectorStoreRequest")
	assert.Empty(t, result.Fixes)
}
