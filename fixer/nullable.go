package fixer

import (
	"github.com/leseb/oasfix/document"
	"go.yaml.in/yaml/v4"
)

// fixNullableFields wraps every configured field in an anyOf union with a
// {type: "null"} variant. A rule whose schema suffix or field name cannot
// be found is skipped with a warning; remaining rules still apply.
func (f *Fixer) fixNullableFields(ix *document.Index, result *FixResult) {
	for _, rule := range f.NullableRules {
		schema, key, ok := ix.SchemaBySuffix(rule.SchemaSuffix)
		if !ok {
			f.warn(result, "schema suffix not found", "suffix", rule.SchemaSuffix)
			continue
		}

		field, ok := ix.Property(schema, rule.Field)
		if !ok {
			f.warn(result, "field not found", "field", rule.Field, "schema", key)
			continue
		}

		// Check before the description override, or a repeated run would
		// graft the description onto the union instead of the variant.
		if isNullableUnion(field) {
			continue
		}

		if rule.Description != "" {
			document.MapSet(field, "description", document.Str(rule.Description))
		}

		if makeNullable(field) {
			result.record(FixTypeNullableField,
				"components.schemas."+key+".properties."+rule.Field,
				"wrapped "+rule.Field+" in a nullable anyOf union")
		}
	}
}

// makeNullable rewrites a field schema in place into
// {"anyOf": [<non-null variant>, {"type": "null"}]}.
//
// It reports whether the field changed: a field that already carries an
// anyOf with a null variant is left untouched, which makes the operation
// idempotent.
//
// For a $ref field the non-null variant is the bare reference; if the field
// carried a description, the reference and a sibling description object are
// wrapped in an allOf, since a schema reference forbids adjacent sibling
// keys. For any other field the non-null variant is the field's full
// original content, every key except anyOf.
func makeNullable(field *yaml.Node) bool {
	if isNullableUnion(field) {
		return false
	}

	var nonNull *yaml.Node
	if ref, ok := document.MapGet(field, "$ref"); ok {
		nonNull = document.Map("$ref", ref.Value)
		if desc, ok := document.MapGet(field, "description"); ok {
			nonNull = document.Map("allOf", document.Seq(nonNull, document.Map("description", desc.Value)))
		}
	} else {
		nonNull = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for i := 0; i+1 < len(field.Content); i += 2 {
			if field.Content[i].Value == "anyOf" {
				continue
			}
			nonNull.Content = append(nonNull.Content, field.Content[i], field.Content[i+1])
		}
	}

	document.Replace(field, document.Map("anyOf", document.Seq(nonNull, nullMarker())))
	return true
}

// isNullableUnion reports whether field already carries an anyOf containing
// a {type: "null"} variant.
func isNullableUnion(field *yaml.Node) bool {
	anyOf, ok := document.MapGet(field, "anyOf")
	if !ok || !document.IsSequence(anyOf) {
		return false
	}
	for _, variant := range anyOf.Content {
		if t, ok := document.MapGet(variant, "type"); ok && t.Value == "null" {
			return true
		}
	}
	return false
}

// nullMarker builds the literal null variant {"type": "null"}.
func nullMarker() *yaml.Node {
	return document.Map("type", "null")
}
