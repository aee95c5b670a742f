package fixer

import (
	"testing"

	"github.com/leseb/oasfix/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pipelineYAML is a miniature generated document that exercises every pass:
// nullable response fields, the upload form, the redundant file type marker,
// a placeholder request-body union, both chunking rewrites, and the search
// request shape.
const pipelineYAML = `openapi: 3.1.0
info:
  title: Gateway API
  version: "1.0"
paths:
  /files:
    post:
      requestBody:
        content:
          multipart/form-data:
            schema:
              type: object
          application/x-www-form-urlencoded:
            schema:
              type: object
  /vector_stores:
    post:
      requestBody:
        content:
          application/json:
            schema:
              oneOf:
                - $ref: '#/components/schemas/gw_schema.CreateVectorStoreRequest'
                - type: object
components:
  schemas:
    gw_schema.Response:
      type: object
      properties:
        completed_at:
          type: integer
        error:
          $ref: '#/components/schemas/gw_schema.ResponseError'
        incomplete_details:
          $ref: '#/components/schemas/gw_schema.IncompleteDetails'
        usage:
          $ref: '#/components/schemas/gw_schema.Usage'
        previous_response_id:
          type: string
        conversation:
          $ref: '#/components/schemas/gw_schema.Conversation'
        instructions:
          type: string
        reasoning:
          $ref: '#/components/schemas/gw_schema.Reasoning'
        max_output_tokens:
          type: integer
        max_tool_calls:
          type: integer
    gw_schema.File:
      type: object
      properties:
        id:
          type: string
    gw_schema.ChunkingStrategy:
      type: object
      properties:
        static:
          type: object
    gw_schema.CreateVectorStoreRequest:
      type: object
      properties:
        name:
          type: string
        chunking_strategy:
          type: object
    gw_schema.SearchVectorStoreRequest:
      type: object
      properties:
        query:
          type: string
          description: A query string for the search.
        filters:
          type: object
          description: A filter to apply.
        max_num_results:
          type: integer
        rewrite_query:
          type: boolean
`

func TestPipelineAppliesAllPasses(t *testing.T) {
	doc := loadDoc(t, pipelineYAML)
	result := fixDoc(t, New(), doc)

	assert.Empty(t, result.Warnings)
	assert.Equal(t, 10, countFixes(result, FixTypeNullableField))
	assert.Equal(t, 2, countFixes(result, FixTypeMultipartUploadBody))
	assert.Equal(t, 1, countFixes(result, FixTypeRedundantTypeMarker))
	assert.Equal(t, 1, countFixes(result, FixTypeRequestBodyUnwrap))
	assert.Equal(t, 1, countFixes(result, FixTypeChunkingStrategyResponse))
	assert.Equal(t, 1, countFixes(result, FixTypeChunkingStrategyRequest))
	assert.Equal(t, 1, countFixes(result, FixTypeSearchQueryUnion))
	assert.Equal(t, 1, countFixes(result, FixTypeSearchFiltersUnion))
	assert.Equal(t, 2, countFixes(result, FixTypeSearchDefault))
	assert.Equal(t, 1, countFixes(result, FixTypeNullTypeQuoting))
	assert.Equal(t, 21, result.FixCount)

	// Quoting runs last, nullable wrapping first.
	require.NotEmpty(t, result.Fixes)
	assert.Equal(t, FixTypeNullableField, result.Fixes[0].Type)
	assert.Equal(t, FixTypeNullTypeQuoting, result.Fixes[len(result.Fixes)-1].Type)
}

func TestPipelineInsertsVariantSchemas(t *testing.T) {
	doc := loadDoc(t, pipelineYAML)
	fixDoc(t, New(), doc)

	ix := document.NewIndex(doc)
	for _, name := range []string{
		"StaticChunkingStrategyResponseParam",
		"OtherChunkingStrategyResponseParam",
		"AutoChunkingStrategyRequestParam",
		"StaticChunkingStrategyRequestParam",
		"ComparisonFilter",
		"CompoundFilter",
	} {
		_, ok := ix.Schema(name)
		assert.True(t, ok, "schema %s not inserted", name)
	}
}

// TestPipelinePreservesKeyOrder tests that existing schema keys keep their
// declaration order and inserted variants only ever append.
func TestPipelinePreservesKeyOrder(t *testing.T) {
	doc := loadDoc(t, pipelineYAML)
	before := document.NewIndex(doc).SchemaKeys()

	fixDoc(t, New(), doc)

	after := document.NewIndex(doc).SchemaKeys()
	require.GreaterOrEqual(t, len(after), len(before))
	assert.Equal(t, before, after[:len(before)])
}

func TestPipelineOutputQuotesNullMarkers(t *testing.T) {
	doc := loadDoc(t, pipelineYAML)
	fixDoc(t, New(), doc)

	out, err := doc.MarshalYAML()
	require.NoError(t, err)
	assert.Contains(t, string(out), `type: "null"`)
}

// TestPipelineIdempotent tests that running the pipeline over its own output
// yields the same document again.
func TestPipelineIdempotent(t *testing.T) {
	doc := loadDoc(t, pipelineYAML)
	fixDoc(t, New(), doc)
	first, err := doc.MarshalYAML()
	require.NoError(t, err)

	redoc, err := document.LoadBytes(first)
	require.NoError(t, err)
	rerun := fixDoc(t, New(), redoc)
	assert.Empty(t, rerun.Warnings)
	assert.Zero(t, countFixes(rerun, FixTypeNullableField), "nullable wrapping must not reapply")

	second, err := redoc.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}
