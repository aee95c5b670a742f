package fixer

import (
	"testing"

	"github.com/leseb/oasfix/document"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

// loadDoc parses inline YAML into a document, failing the test on error.
func loadDoc(t *testing.T, src string) *document.Document {
	t.Helper()
	doc, err := document.LoadBytes([]byte(src))
	require.NoError(t, err)
	return doc
}

// mustGet walks a chain of mapping keys, failing the test on any miss.
func mustGet(t *testing.T, n *yaml.Node, path ...string) *yaml.Node {
	t.Helper()
	for _, key := range path {
		child, ok := document.MapGet(n, key)
		require.True(t, ok, "key %q not found", key)
		n = child
	}
	return n
}

// refValue returns the $ref string of a node, failing the test if absent.
func refValue(t *testing.T, n *yaml.Node) string {
	t.Helper()
	ref, ok := document.MapGet(n, "$ref")
	require.True(t, ok, "node has no $ref")
	return ref.Value
}

// seqStrings returns the scalar values of a sequence node.
func seqStrings(t *testing.T, n *yaml.Node) []string {
	t.Helper()
	require.True(t, document.IsSequence(n), "node is not a sequence")
	values := make([]string, 0, len(n.Content))
	for _, item := range n.Content {
		values = append(values, item.Value)
	}
	return values
}

// fixDoc runs a fixer limited to the given fix types over the document.
func fixDoc(t *testing.T, f *Fixer, doc *document.Document) *FixResult {
	t.Helper()
	result, err := f.FixDocument(doc)
	require.NoError(t, err)
	return result
}

// countFixes returns how many applied fixes carry the given type.
func countFixes(result *FixResult, fixType FixType) int {
	n := 0
	for _, f := range result.Fixes {
		if f.Type == fixType {
			n++
		}
	}
	return n
}
