package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v4"
)

// SourceFormat identifies the serialization format of a document.
type SourceFormat string

const (
	// SourceFormatYAML indicates a YAML document.
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates a JSON document.
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the format could not be determined.
	SourceFormatUnknown SourceFormat = "unknown"
)

// ErrEmptyDocument indicates the parsed input contained no document content.
var ErrEmptyDocument = errors.New("document: empty document")

// Document wraps a parsed OpenAPI document as a yaml.Node tree.
//
// The tree is mutated in place by transformation passes and serialized once
// at the end of a run; there is no retained state between runs.
type Document struct {
	// SourcePath is the path the document was loaded from, if any.
	SourcePath string
	// SourceFormat is the detected serialization format.
	SourceFormat SourceFormat

	root *yaml.Node
}

// Load reads and parses the document at path.
//
// The format is detected from the file extension first, then from the
// content. Returns the underlying I/O error if the path does not exist.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("document: failed to read %s: %w", path, err)
	}

	doc, err := LoadBytes(data)
	if err != nil {
		return nil, err
	}

	doc.SourcePath = path
	if f := detectFormatFromPath(path); f != SourceFormatUnknown {
		doc.SourceFormat = f
	}
	return doc, nil
}

// LoadBytes parses a document from raw bytes.
//
// YAML is a superset of JSON, so both formats parse through the YAML
// decoder; the node tree records key order either way.
func LoadBytes(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("document: failed to parse: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, ErrEmptyDocument
	}

	return &Document{
		SourceFormat: detectFormatFromContent(data),
		root:         &root,
	}, nil
}

// Root returns the top-level mapping node of the document.
func (d *Document) Root() *yaml.Node {
	return d.root.Content[0]
}

// Marshal serializes the document in its source format.
func (d *Document) Marshal() ([]byte, error) {
	if d.SourceFormat == SourceFormatJSON {
		return d.MarshalJSONIndent("", "  ")
	}
	return d.MarshalYAML()
}

// MarshalYAML serializes the document as YAML with two-space indentation,
// block style, and key order exactly as held in the node tree. Non-ASCII
// characters are emitted literally.
func (d *Document) MarshalYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d.Root()); err != nil {
		_ = enc.Close()
		return nil, fmt.Errorf("document: failed to marshal YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("document: failed to marshal YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// Write serializes the document in its source format and writes it to path.
func (d *Document) Write(path string) error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("document: failed to write %s: %w", path, err)
	}
	return nil
}

// Save writes the document back to the path it was loaded from.
func (d *Document) Save() error {
	if d.SourcePath == "" {
		return fmt.Errorf("document: no source path to save to")
	}
	return d.Write(d.SourcePath)
}

// detectFormatFromPath detects the source format from a file path
func detectFormatFromPath(path string) SourceFormat {
	switch filepath.Ext(path) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent attempts to detect the format from the content bytes
// JSON documents start with '{' or '[', while YAML documents do not
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}
