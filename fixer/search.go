package fixer

import (
	"github.com/leseb/oasfix/document"
	"go.yaml.in/yaml/v4"
)

const searchRequestSuffix = "schema.SearchVectorStoreRequest"

// Names of the filter schemas the search rewrite inserts.
const (
	comparisonFilterSchema = "ComparisonFilter"
	compoundFilterSchema   = "CompoundFilter"
)

// Injected defaults for the search request.
const defaultMaxNumResults = 10

// fixSearchRequest applies three independent, conditional rewrites to the
// first schema whose key ends with the search-request suffix: the query
// field becomes a string-or-array union, the filters field becomes a
// recursive comparison/compound filter union, and two fields gain injected
// default values. Subsequent suffix matches are ignored.
func (f *Fixer) fixSearchRequest(ix *document.Index, result *FixResult) {
	schema, key, ok := ix.SchemaBySuffix(searchRequestSuffix)
	if !ok {
		f.warn(result, "schema suffix not found", "suffix", searchRequestSuffix)
		return
	}

	if f.isFixEnabled(FixTypeSearchQueryUnion) {
		if query, ok := ix.Property(schema, "query"); ok {
			document.Replace(query, queryUnion(query))
			result.record(FixTypeSearchQueryUnion,
				"components.schemas."+key+".properties.query",
				"replaced query with a string-or-array union")
		} else {
			f.warn(result, "field not found", "field", "query", "schema", key)
		}
	}

	if f.isFixEnabled(FixTypeSearchFiltersUnion) {
		if filters, ok := ix.Property(schema, "filters"); ok {
			ix.SetSchema(comparisonFilterSchema, comparisonFilter())
			ix.SetSchema(compoundFilterSchema, compoundFilter())
			document.Replace(filters, filtersUnion(filters))
			result.record(FixTypeSearchFiltersUnion,
				"components.schemas."+key+".properties.filters",
				"replaced filters with a comparison/compound filter union")
		} else {
			f.warn(result, "field not found", "field", "filters", "schema", key)
		}
	}

	if f.isFixEnabled(FixTypeSearchDefault) {
		if prop, ok := ix.Property(schema, "max_num_results"); ok {
			document.MapSet(prop, "default", document.Int(defaultMaxNumResults))
			result.record(FixTypeSearchDefault,
				"components.schemas."+key+".properties.max_num_results",
				"injected default 10")
		}
		if prop, ok := ix.Property(schema, "rewrite_query"); ok {
			document.MapSet(prop, "default", document.Bool(false))
			result.record(FixTypeSearchDefault,
				"components.schemas."+key+".properties.rewrite_query",
				"injected default false")
		}
	}
}

// queryUnion builds the string-or-array union for the query field,
// preserving the field's existing description. The array variant requires
// at least one item.
func queryUnion(query *yaml.Node) *yaml.Node {
	union := document.Map(
		"oneOf", document.Seq(
			document.Map("type", "string"),
			document.Map(
				"type", "array",
				"items", document.Map("type", "string"),
				"minItems", 1,
			),
		),
	)
	return withDescription(union, query)
}

// filtersUnion builds the comparison/compound reference union for the
// filters field, preserving the field's existing description.
func filtersUnion(filters *yaml.Node) *yaml.Node {
	union := document.Map(
		"oneOf", document.Seq(
			document.Ref(comparisonFilterSchema),
			document.Ref(compoundFilterSchema),
		),
	)
	return withDescription(union, filters)
}

// withDescription copies src's description onto the front of node, if src
// has one.
func withDescription(node, src *yaml.Node) *yaml.Node {
	desc, ok := document.MapGet(src, "description")
	if !ok {
		return node
	}
	node.Content = append([]*yaml.Node{document.Str("description"), document.Str(desc.Value)}, node.Content...)
	return node
}

// comparisonFilter builds the leaf filter schema: one attribute compared to
// one value with one of six operators.
func comparisonFilter() *yaml.Node {
	return document.Map(
		"type", "object",
		"description", "A filter used to compare a specified attribute key to a given value using a defined comparison operation.",
		"properties", document.Map(
			"type", document.Map(
				"type", "string",
				"enum", document.Seq("eq", "ne", "gt", "gte", "lt", "lte"),
				"description", "Specifies the comparison operator: `eq`, `ne`, `gt`, `gte`, `lt`, `lte`.",
			),
			"key", document.Map(
				"type", "string",
				"description", "The key to compare against the value.",
			),
			"value", document.Map(
				"description", "The value to compare against the attribute key; supports string, number, or boolean types.",
				"anyOf", document.Seq(
					document.Map("type", "string"),
					document.Map("type", "number"),
					document.Map("type", "boolean"),
				),
			),
		),
		"required", document.Seq("type", "key", "value"),
	)
}

// compoundFilter builds the branch filter schema. Its filters array refers
// back to both filter schemas, itself included, supporting arbitrarily deep
// boolean filter trees.
func compoundFilter() *yaml.Node {
	return document.Map(
		"type", "object",
		"description", "Combine multiple filters using `and` or `or`.",
		"properties", document.Map(
			"type", document.Map(
				"type", "string",
				"enum", document.Seq("and", "or"),
				"description", "Type of operation: `and` or `or`.",
			),
			"filters", document.Map(
				"type", "array",
				"description", "Array of filters to combine. Items can be `ComparisonFilter` or `CompoundFilter`.",
				"items", document.Map(
					"oneOf", document.Seq(
						document.Ref(comparisonFilterSchema),
						document.Ref(compoundFilterSchema),
					),
				),
			),
		),
		"required", document.Seq("type", "filters"),
	)
}
