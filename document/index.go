package document

import (
	"strings"

	"go.yaml.in/yaml/v4"
)

// Index addresses the two zones of an OpenAPI document that transformation
// passes care about: components.schemas and paths.
//
// Generated schema keys carry a long, environment-dependent fully-qualified
// prefix (the Go module path of the machine that ran the generator), so
// schemas are resolved by a stable trailing suffix instead of the full key.
// The index captures declaration order once at construction; on a suffix
// collision the earliest-declared key wins, deterministically. Collisions
// are a configuration defect in the suffix table, not something the lookup
// resolves intelligently.
type Index struct {
	schemas    *yaml.Node
	paths      *yaml.Node
	schemaKeys []string
	bySuffix   map[string]string
}

// NewIndex builds an index over doc. Missing components.schemas or paths
// sections leave the corresponding lookups returning misses; they do not
// fail construction.
func NewIndex(doc *Document) *Index {
	ix := &Index{bySuffix: make(map[string]string)}

	root := doc.Root()
	if components, ok := MapGet(root, "components"); ok {
		if schemas, ok := MapGet(components, "schemas"); ok && IsMapping(schemas) {
			ix.schemas = schemas
			ix.schemaKeys = MapKeys(schemas)
		}
	}
	if paths, ok := MapGet(root, "paths"); ok && IsMapping(paths) {
		ix.paths = paths
	}
	return ix
}

// Schemas returns the components.schemas mapping node, or nil if absent.
func (ix *Index) Schemas() *yaml.Node {
	return ix.schemas
}

// Paths returns the paths mapping node, or nil if absent.
func (ix *Index) Paths() *yaml.Node {
	return ix.paths
}

// SchemaKeys returns the schema keys in declaration order.
func (ix *Index) SchemaKeys() []string {
	return ix.schemaKeys
}

// Schema returns the schema node stored under the exact key.
func (ix *Index) Schema(key string) (*yaml.Node, bool) {
	return MapGet(ix.schemas, key)
}

// SchemaBySuffix returns the first schema (in declaration order) whose key
// ends with suffix, along with the canonical full key. Results are memoized
// so repeated lookups for the same suffix stay deterministic and cheap.
func (ix *Index) SchemaBySuffix(suffix string) (*yaml.Node, string, bool) {
	if key, ok := ix.bySuffix[suffix]; ok {
		node, found := MapGet(ix.schemas, key)
		return node, key, found
	}
	for _, key := range ix.schemaKeys {
		if strings.HasSuffix(key, suffix) {
			ix.bySuffix[suffix] = key
			node, found := MapGet(ix.schemas, key)
			return node, key, found
		}
	}
	return nil, "", false
}

// Property returns the named field schema from a schema object's property
// map.
func (ix *Index) Property(schema *yaml.Node, name string) (*yaml.Node, bool) {
	props, ok := MapGet(schema, "properties")
	if !ok {
		return nil, false
	}
	return MapGet(props, name)
}

// SetSchema inserts or replaces a schema under the exact key, keeping the
// declaration-order list current. Newly inserted variant schemas use their
// bare name as the key; they carry no generator prefix.
func (ix *Index) SetSchema(key string, schema *yaml.Node) {
	if ix.schemas == nil {
		return
	}
	if _, exists := MapGet(ix.schemas, key); !exists {
		ix.schemaKeys = append(ix.schemaKeys, key)
	}
	MapSet(ix.schemas, key, schema)
}
