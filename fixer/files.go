package fixer

import (
	"github.com/leseb/oasfix/document"
	"go.yaml.in/yaml/v4"
)

const (
	uploadPath       = "/files"
	fileSchemaSuffix = "schema.File"
)

// fixMultipartUploadBody rewrites the file upload operation's
// multipart/form-data schema into the fixed two-property form the reference
// specification requires, and removes the sibling
// application/x-www-form-urlencoded entry — an artifact of the generator
// misrouting form fields.
func (f *Fixer) fixMultipartUploadBody(ix *document.Index, result *FixResult) {
	paths := ix.Paths()
	if paths == nil {
		f.warn(result, "document has no paths section")
		return
	}

	pathItem, ok := document.MapGet(paths, uploadPath)
	if !ok {
		f.warn(result, "path not found", "path", uploadPath)
		return
	}
	op, ok := document.MapGet(pathItem, "post")
	if !ok {
		f.warn(result, "operation not found", "path", uploadPath, "method", "post")
		return
	}
	content, ok := requestBodyContent(op)
	if !ok {
		f.warn(result, "request body content not found", "path", uploadPath, "method", "post")
		return
	}

	multipart, ok := document.MapGet(content, "multipart/form-data")
	if !ok {
		f.warn(result, "multipart/form-data not found", "path", uploadPath, "method", "post")
		return
	}

	document.MapSet(multipart, "schema", uploadFormSchema())
	result.record(FixTypeMultipartUploadBody,
		"paths."+uploadPath+".post.requestBody.content.multipart/form-data.schema",
		"replaced multipart upload body with the fixed file/purpose form")

	if document.MapDelete(content, "application/x-www-form-urlencoded") {
		result.record(FixTypeMultipartUploadBody,
			"paths."+uploadPath+".post.requestBody.content",
			"removed misrouted application/x-www-form-urlencoded entry")
	}
}

// fixRedundantTypeMarker deletes the top-level type key from the file
// schema. Declaring both properties and type: object is redundant under the
// reference specification's conventions and flagged by downstream
// conformance checking.
func (f *Fixer) fixRedundantTypeMarker(ix *document.Index, result *FixResult) {
	schema, key, ok := ix.SchemaBySuffix(fileSchemaSuffix)
	if !ok {
		f.warn(result, "schema suffix not found", "suffix", fileSchemaSuffix)
		return
	}
	if document.MapDelete(schema, "type") {
		result.record(FixTypeRedundantTypeMarker,
			"components.schemas."+key,
			"removed redundant top-level type marker")
	}
}

// uploadFormSchema builds the fixed multipart upload body: a binary file
// part and an enumerated purpose literal.
func uploadFormSchema() *yaml.Node {
	return document.Map(
		"type", "object",
		"properties", document.Map(
			"file", document.Map(
				"type", "string",
				"format", "binary",
				"description", "The File object (not file name) to be uploaded.",
			),
			"purpose", document.Map(
				"type", "string",
				"description", "The intended purpose of the uploaded file.",
				"enum", document.Seq(
					"assistants",
					"assistants_output",
					"batch",
					"batch_output",
					"fine-tune",
					"fine-tune-results",
					"vision",
				),
			),
		),
		"required", document.Seq("file", "purpose"),
	)
}
