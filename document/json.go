package document

import (
	"bytes"
	"fmt"
	"strconv"

	gojson "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// MarshalJSON serializes the document as compact JSON, preserving the key
// order held in the node tree. Scalar leaves are encoded with goccy/go-json
// so string escaping matches encoding/json semantics.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := marshalNodeJSON(&buf, d.Root()); err != nil {
		return nil, fmt.Errorf("document: failed to marshal JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// MarshalJSONIndent serializes the document as indented JSON with key order
// preserved.
func (d *Document) MarshalJSONIndent(prefix, indent string) ([]byte, error) {
	data, err := d.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := gojson.Indent(&buf, data, prefix, indent); err != nil {
		return nil, fmt.Errorf("document: failed to indent JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// marshalNodeJSON writes a yaml.Node to a buffer as JSON in node order.
func marshalNodeJSON(buf *bytes.Buffer, node *yaml.Node) error {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) > 0 {
			return marshalNodeJSON(buf, node.Content[0])
		}
		buf.WriteString("null")
		return nil

	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(node.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := gojson.Marshal(node.Content[i].Value)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := marshalNodeJSON(buf, node.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range node.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := marshalNodeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case yaml.AliasNode:
		return marshalNodeJSON(buf, node.Alias)

	case yaml.ScalarNode:
		return marshalScalarJSON(buf, node)

	default:
		return fmt.Errorf("unsupported node kind %d", node.Kind)
	}
}

// marshalScalarJSON writes a scalar node as a JSON value based on its
// resolved tag. Quoted scalars are always strings, whatever their value
// would otherwise resolve to.
func marshalScalarJSON(buf *bytes.Buffer, node *yaml.Node) error {
	quoted := node.Style&(yaml.SingleQuotedStyle|yaml.DoubleQuotedStyle|yaml.LiteralStyle|yaml.FoldedStyle) != 0

	if !quoted {
		switch node.Tag {
		case "!!null":
			buf.WriteString("null")
			return nil
		case "!!bool":
			b, err := strconv.ParseBool(node.Value)
			if err == nil {
				buf.WriteString(strconv.FormatBool(b))
				return nil
			}
		case "!!int":
			if _, err := strconv.ParseInt(node.Value, 10, 64); err == nil {
				buf.WriteString(node.Value)
				return nil
			}
		case "!!float":
			if f, err := strconv.ParseFloat(node.Value, 64); err == nil {
				buf.WriteString(strconv.FormatFloat(f, 'f', -1, 64))
				return nil
			}
		}
	}

	data, err := gojson.Marshal(node.Value)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}
