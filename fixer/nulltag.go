package fixer

import (
	"fmt"

	"github.com/leseb/oasfix/document"
	"go.yaml.in/yaml/v4"
)

// quoteNullTypes walks the whole document depth-first and restyles every
// {type: "null"} marker so the writer emits a double-quoted string instead
// of the YAML null token. It must run after every structural pass, because
// earlier passes construct null markers at unpredictable nesting depths.
//
// The restyle is a serialization concern only: passes compare node values,
// never styles, so a marker styled here still reads as the string "null".
// A type key with any other value is never altered.
func (f *Fixer) quoteNullTypes(doc *document.Document, result *FixResult) {
	count := quoteNullTypeNodes(doc.Root())
	if count > 0 {
		result.record(FixTypeNullTypeQuoting, "$",
			fmt.Sprintf("restyled %d null type marker(s) for quoted output", count))
	}
}

// quoteNullTypeNodes recurses through mappings and sequences uniformly,
// returning the number of markers restyled.
func quoteNullTypeNodes(n *yaml.Node) int {
	count := 0
	switch n.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, child := range n.Content {
			count += quoteNullTypeNodes(child)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, value := n.Content[i], n.Content[i+1]
			if key.Kind == yaml.ScalarNode && key.Value == "type" && isNullString(value) {
				value.Tag = "!!str"
				value.Style = yaml.DoubleQuotedStyle
				count++
				continue
			}
			count += quoteNullTypeNodes(value)
		}
	}
	return count
}

// isNullString reports whether value is the string scalar "null". An
// unquoted YAML null token resolves to the null type, not the string, and
// is deliberately not matched: the generator never emits one, and every
// marker this pipeline constructs or has previously written back is a
// string.
func isNullString(value *yaml.Node) bool {
	return value.Kind == yaml.ScalarNode && value.Tag == "!!str" && value.Value == "null"
}
