package document

import (
	"fmt"
	"strconv"

	"go.yaml.in/yaml/v4"
)

// IsMapping reports whether n is a mapping node.
func IsMapping(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.MappingNode
}

// IsSequence reports whether n is a sequence node.
func IsSequence(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.SequenceNode
}

// MapGet returns the value node for key in a mapping node.
func MapGet(m *yaml.Node, key string) (*yaml.Node, bool) {
	if !IsMapping(m) {
		return nil, false
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Kind == yaml.ScalarNode && m.Content[i].Value == key {
			return m.Content[i+1], true
		}
	}
	return nil, false
}

// MapSet sets key to value in a mapping node, replacing the existing value
// in place or appending a new pair after the last key.
func MapSet(m *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Kind == yaml.ScalarNode && m.Content[i].Value == key {
			m.Content[i+1] = value
			return
		}
	}
	m.Content = append(m.Content, Str(key), value)
}

// MapDelete removes key from a mapping node. It reports whether the key
// was present.
func MapDelete(m *yaml.Node, key string) bool {
	if !IsMapping(m) {
		return false
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Kind == yaml.ScalarNode && m.Content[i].Value == key {
			m.Content = append(m.Content[:i], m.Content[i+2:]...)
			return true
		}
	}
	return false
}

// MapKeys returns the keys of a mapping node in declaration order.
func MapKeys(m *yaml.Node) []string {
	if !IsMapping(m) {
		return nil
	}
	keys := make([]string, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Kind == yaml.ScalarNode {
			keys = append(keys, m.Content[i].Value)
		}
	}
	return keys
}

// Replace overwrites dst in place with the kind, tag, value, and children of
// src. The dst pointer stays valid, so every reference into the tree sees
// the new content.
func Replace(dst, src *yaml.Node) {
	dst.Kind = src.Kind
	dst.Tag = src.Tag
	dst.Value = src.Value
	dst.Style = src.Style
	dst.Content = src.Content
	dst.Anchor = ""
	dst.Alias = nil
}

// Str creates a string scalar node.
func Str(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// Int creates an integer scalar node.
func Int(value int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(value)}
}

// Bool creates a boolean scalar node.
func Bool(value bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(value)}
}

// Map builds a mapping node from alternating key/value arguments. Keys must
// be strings; values may be *yaml.Node, string, int, or bool. Pairs appear
// in argument order.
//
// Map panics on malformed arguments: it exists to express compiled-in schema
// literals, where a bad call is a programming error.
func Map(pairs ...any) *yaml.Node {
	if len(pairs)%2 != 0 {
		panic("document.Map: odd number of arguments")
	}
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("document.Map: key %d is %T, want string", i/2, pairs[i]))
		}
		n.Content = append(n.Content, Str(key), toNode(pairs[i+1]))
	}
	return n
}

// Seq builds a sequence node. Items may be *yaml.Node, string, int, or bool.
func Seq(items ...any) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, item := range items {
		n.Content = append(n.Content, toNode(item))
	}
	return n
}

// Ref builds a component schema reference: {"$ref": "#/components/schemas/<name>"}.
func Ref(name string) *yaml.Node {
	return Map("$ref", "#/components/schemas/"+name)
}

// toNode converts a builder argument to a yaml.Node.
func toNode(v any) *yaml.Node {
	switch val := v.(type) {
	case *yaml.Node:
		return val
	case string:
		return Str(val)
	case int:
		return Int(val)
	case bool:
		return Bool(val)
	default:
		panic(fmt.Sprintf("document: cannot convert %T to a node", v))
	}
}
