package fixer

import (
	"strings"

	"github.com/leseb/oasfix/document"
	"go.yaml.in/yaml/v4"
)

// Suffixes of the generated schemas the chunking-strategy rewrites target.
const responseChunkingSuffix = "schema.ChunkingStrategy"

var requestChunkingSuffixes = []string{
	"schema.CreateVectorStoreRequest",
	"schema.AddVectorStoreFileRequest",
	"schema.CreateVectorStoreFileBatchRequest",
}

// Names of the variant schemas the rewrites insert. The variants are always
// identical by construction, so re-inserting them on a repeated run is safe.
const (
	staticResponseParam = "StaticChunkingStrategyResponseParam"
	otherResponseParam  = "OtherChunkingStrategyResponseParam"
	autoRequestParam    = "AutoChunkingStrategyRequestParam"
	staticRequestParam  = "StaticChunkingStrategyRequestParam"
)

// fixResponseChunkingStrategy replaces the generated flat chunking-strategy
// schema with a discriminated union over the static and other response
// variants, in that order.
func (f *Fixer) fixResponseChunkingStrategy(ix *document.Index, result *FixResult) {
	if ix.Schemas() == nil {
		f.warn(result, "document has no components.schemas section")
		return
	}

	ix.SetSchema(staticResponseParam, staticChunkingSchema())
	ix.SetSchema(otherResponseParam, otherChunkingSchema())

	target, key, ok := ix.SchemaBySuffix(responseChunkingSuffix)
	if !ok {
		f.warn(result, "schema suffix not found", "suffix", responseChunkingSuffix)
		return
	}

	document.Replace(target, document.Map(
		"type", "object",
		"description", "The strategy used to chunk the file.",
		"oneOf", document.Seq(
			document.Ref(staticResponseParam),
			document.Ref(otherResponseParam),
		),
	))
	result.record(FixTypeChunkingStrategyResponse,
		"components.schemas."+key,
		"replaced flat chunking strategy with a static/other discriminated union")
}

// fixRequestChunkingStrategy rewrites the chunking_strategy property of
// every request schema whose key ends with one of the known suffixes into a
// oneOf over the auto and static request variants. Unlike the response-side
// rewrite this is a multi-target pass.
func (f *Fixer) fixRequestChunkingStrategy(ix *document.Index, result *FixResult) {
	if ix.Schemas() == nil {
		f.warn(result, "document has no components.schemas section")
		return
	}

	ix.SetSchema(autoRequestParam, autoChunkingSchema())
	ix.SetSchema(staticRequestParam, staticChunkingSchema())

	for _, key := range ix.SchemaKeys() {
		if !hasAnySuffix(key, requestChunkingSuffixes) {
			continue
		}
		schema, ok := ix.Schema(key)
		if !ok {
			continue
		}
		prop, ok := ix.Property(schema, "chunking_strategy")
		if !ok {
			f.warn(result, "field not found", "field", "chunking_strategy", "schema", key)
			continue
		}

		document.Replace(prop, document.Map(
			"description", "The chunking strategy used to chunk the file(s). If not set, will use the `auto` strategy.",
			"oneOf", document.Seq(
				document.Ref(autoRequestParam),
				document.Ref(staticRequestParam),
			),
		))
		result.record(FixTypeChunkingStrategyRequest,
			"components.schemas."+key+".properties.chunking_strategy",
			"replaced chunking_strategy with an auto/static discriminated union")
	}
}

// unwrapRequestBodies collapses every request-body content schema that is a
// two-element placeholder oneOf into its direct $ref. The placeholder
// sibling carries no real schema information and is discarded along with
// all of its keys.
func (f *Fixer) unwrapRequestBodies(ix *document.Index, result *FixResult) {
	paths := ix.Paths()
	if paths == nil {
		f.warn(result, "document has no paths section")
		return
	}

	for i := 0; i+1 < len(paths.Content); i += 2 {
		pathKey, pathItem := paths.Content[i].Value, paths.Content[i+1]
		if !document.IsMapping(pathItem) {
			continue
		}
		for j := 0; j+1 < len(pathItem.Content); j += 2 {
			method, op := pathItem.Content[j].Value, pathItem.Content[j+1]
			content, ok := requestBodyContent(op)
			if !ok {
				continue
			}
			for k := 0; k+1 < len(content.Content); k += 2 {
				ctype, media := content.Content[k].Value, content.Content[k+1]
				schema, ok := document.MapGet(media, "schema")
				if !ok {
					continue
				}
				ref, ok := placeholderUnionRef(schema)
				if !ok {
					continue
				}
				document.Replace(schema, document.Map("$ref", ref))
				result.record(FixTypeRequestBodyUnwrap,
					"paths."+pathKey+"."+method+".requestBody.content."+ctype+".schema",
					"collapsed placeholder oneOf to "+ref)
			}
		}
	}
}

// requestBodyContent returns the content mapping of an operation's request
// body, if present.
func requestBodyContent(op *yaml.Node) (*yaml.Node, bool) {
	body, ok := document.MapGet(op, "requestBody")
	if !ok {
		return nil, false
	}
	content, ok := document.MapGet(body, "content")
	if !ok || !document.IsMapping(content) {
		return nil, false
	}
	return content, true
}

// placeholderUnionRef reports whether schema is exactly a two-element oneOf
// with one $ref-bearing variant, returning that reference.
func placeholderUnionRef(schema *yaml.Node) (string, bool) {
	oneOf, ok := document.MapGet(schema, "oneOf")
	if !ok || !document.IsSequence(oneOf) || len(oneOf.Content) != 2 {
		return "", false
	}
	for _, variant := range oneOf.Content {
		if ref, ok := document.MapGet(variant, "$ref"); ok {
			return ref.Value, true
		}
	}
	return "", false
}

// staticChunkingSchema builds the static chunking-strategy variant. The same
// shape serves both the response-side and request-side unions.
func staticChunkingSchema() *yaml.Node {
	return document.Map(
		"type", "object",
		"description", "Customize your own chunking strategy by setting chunk size and chunk overlap.",
		"properties", document.Map(
			"type", document.Map(
				"type", "string",
				"description", "Always `static`.",
				"enum", document.Seq("static"),
			),
			"static", document.Map(
				"type", "object",
				"properties", document.Map(
					"max_chunk_size_tokens", document.Map(
						"type", "integer",
						"minimum", 100,
						"maximum", 4096,
						"description", "The maximum number of tokens in each chunk.",
					),
					"chunk_overlap_tokens", document.Map(
						"type", "integer",
						"description", "The number of tokens that overlap between chunks.",
					),
				),
				"required", document.Seq("max_chunk_size_tokens", "chunk_overlap_tokens"),
			),
		),
		"required", document.Seq("type", "static"),
	)
}

// otherChunkingSchema builds the response-side fallback variant, carrying
// nothing beyond its discriminator.
func otherChunkingSchema() *yaml.Node {
	return document.Map(
		"type", "object",
		"description", "This is returned when the chunking strategy is unknown.",
		"properties", document.Map(
			"type", document.Map(
				"type", "string",
				"description", "Always `other`.",
				"enum", document.Seq("other"),
			),
		),
		"required", document.Seq("type"),
	)
}

// autoChunkingSchema builds the request-side default variant.
func autoChunkingSchema() *yaml.Node {
	return document.Map(
		"type", "object",
		"description", "The default strategy. This strategy currently uses a `max_chunk_size_tokens` of `800` and `chunk_overlap_tokens` of `400`.",
		"properties", document.Map(
			"type", document.Map(
				"type", "string",
				"description", "Always `auto`.",
				"enum", document.Seq("auto"),
			),
		),
		"required", document.Seq("type"),
	)
}

// hasAnySuffix reports whether s ends with any of the suffixes.
func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
