package fixer

import (
	"fmt"

	"github.com/leseb/oasfix/document"
)

// FixType identifies the type of fix applied
type FixType string

const (
	// FixTypeNullableField indicates a pointer-typed field was wrapped in a
	// nullable anyOf union.
	FixTypeNullableField FixType = "nullable-field"
	// FixTypeMultipartUploadBody indicates the file upload multipart body was
	// rewritten.
	FixTypeMultipartUploadBody FixType = "multipart-upload-body"
	// FixTypeRedundantTypeMarker indicates a redundant top-level type marker
	// was removed from a schema that already declares properties.
	FixTypeRedundantTypeMarker FixType = "redundant-type-marker"
	// FixTypeRequestBodyUnwrap indicates a placeholder oneOf request body was
	// collapsed to its direct reference.
	FixTypeRequestBodyUnwrap FixType = "request-body-unwrap"
	// FixTypeChunkingStrategyResponse indicates the response-side chunking
	// strategy schema was replaced with a discriminated union.
	FixTypeChunkingStrategyResponse FixType = "chunking-strategy-response"
	// FixTypeChunkingStrategyRequest indicates a request-side chunking_strategy
	// property was replaced with a discriminated union.
	FixTypeChunkingStrategyRequest FixType = "chunking-strategy-request"
	// FixTypeSearchQueryUnion indicates the search query field was rewritten
	// into a string-or-array union.
	FixTypeSearchQueryUnion FixType = "search-query-union"
	// FixTypeSearchFiltersUnion indicates the search filters field was
	// rewritten into a recursive comparison/compound filter union.
	FixTypeSearchFiltersUnion FixType = "search-filters-union"
	// FixTypeSearchDefault indicates a search request field gained an injected
	// default value.
	FixTypeSearchDefault FixType = "search-default"
	// FixTypeNullTypeQuoting indicates null type markers were restyled for
	// quoted output. This fix always runs last.
	FixTypeNullTypeQuoting FixType = "null-type-quoting"
)

// Fix represents a single fix applied to the document
type Fix struct {
	// Type identifies the category of fix
	Type FixType
	// Path is the JSON path to the fixed location (e.g.,
	// "components.schemas.schema.Response.properties.usage")
	Path string
	// Description is a human-readable description of the fix
	Description string
}

// FixResult contains the results of a fix operation
type FixResult struct {
	// Document contains the fixed document
	Document *document.Document
	// SourcePath is the path to the source file
	SourcePath string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat document.SourceFormat
	// Fixes contains all fixes applied
	Fixes []Fix
	// FixCount is the total number of fixes applied
	FixCount int
	// Warnings contains lookup misses and other non-fatal diagnostics.
	// Warnings never change the outcome of a run.
	Warnings []string
	// Success is true if fixing completed without errors
	Success bool
}

// HasFixes returns true if any fixes were applied
func (r *FixResult) HasFixes() bool {
	return r.FixCount > 0
}

// record appends a fix to the result.
func (r *FixResult) record(fixType FixType, path, description string) {
	r.Fixes = append(r.Fixes, Fix{Type: fixType, Path: path, Description: description})
}

// Fixer applies the post-processing fix pipeline to a generated document.
type Fixer struct {
	// NullableRules is the table of fields to wrap in nullable unions.
	// Defaults to DefaultNullableRules.
	NullableRules []NullableRule
	// EnabledFixes specifies which fix types to apply.
	// If nil or empty, all fix types are enabled. The null-type quoting
	// pass is not gated; it always runs.
	EnabledFixes []FixType
	// Logger receives warnings for lookup misses. Defaults to NopLogger.
	Logger Logger
}

// New creates a new Fixer instance with default settings
func New() *Fixer {
	return &Fixer{
		NullableRules: DefaultNullableRules,
		EnabledFixes:  nil, // all fixes enabled
		Logger:        NopLogger{},
	}
}

// Option is a function that configures a fix operation
type Option func(*fixConfig) error

// fixConfig holds configuration for a fix operation
type fixConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	doc      *document.Document

	// Configuration options
	nullableRules []NullableRule
	enabledFixes  []FixType
	logger        Logger
}

// FixWithOptions fixes a generated OpenAPI document using functional options.
//
// Example:
//
//	result, err := fixer.FixWithOptions(
//	    fixer.WithFilePath("docs/openapi.yaml"),
//	)
func FixWithOptions(opts ...Option) (*FixResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("fixer: invalid options: %w", err)
	}

	f := &Fixer{
		NullableRules: cfg.nullableRules,
		EnabledFixes:  cfg.enabledFixes,
		Logger:        cfg.logger,
	}

	if cfg.filePath != nil {
		return f.Fix(*cfg.filePath)
	}
	if cfg.doc != nil {
		return f.FixDocument(cfg.doc)
	}

	// Should never reach here due to validation in applyOptions
	return nil, fmt.Errorf("fixer: no input source specified")
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*fixConfig, error) {
	cfg := &fixConfig{
		nullableRules: DefaultNullableRules,
		enabledFixes:  nil,
		logger:        NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate that exactly one input source is specified
	sources := 0
	if cfg.filePath != nil {
		sources++
	}
	if cfg.doc != nil {
		sources++
	}

	if sources == 0 {
		return nil, fmt.Errorf("no input source specified: use WithFilePath or WithDocument")
	}
	if sources > 1 {
		return nil, fmt.Errorf("multiple input sources specified: use only one of WithFilePath or WithDocument")
	}

	return cfg, nil
}

// WithFilePath specifies the document file path to fix
func WithFilePath(path string) Option {
	return func(cfg *fixConfig) error {
		if path == "" {
			return fmt.Errorf("file path cannot be empty")
		}
		cfg.filePath = &path
		return nil
	}
}

// WithDocument specifies an already-loaded document to fix.
// The document is mutated in place.
func WithDocument(doc *document.Document) Option {
	return func(cfg *fixConfig) error {
		if doc == nil {
			return fmt.Errorf("document cannot be nil")
		}
		cfg.doc = doc
		return nil
	}
}

// WithNullableRules substitutes the nullable-field rule table.
// Passing an empty slice disables the nullable pass entirely.
func WithNullableRules(rules []NullableRule) Option {
	return func(cfg *fixConfig) error {
		cfg.nullableRules = rules
		return nil
	}
}

// WithEnabledFixes specifies which fix types to apply
func WithEnabledFixes(fixes ...FixType) Option {
	return func(cfg *fixConfig) error {
		cfg.enabledFixes = fixes
		return nil
	}
}

// WithLogger sets the logger used for warnings
func WithLogger(logger Logger) Option {
	return func(cfg *fixConfig) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// Fix loads the document at specPath, applies the pipeline, and returns the
// result. The document is not written back; callers decide where the output
// goes.
func (f *Fixer) Fix(specPath string) (*FixResult, error) {
	doc, err := document.Load(specPath)
	if err != nil {
		return nil, fmt.Errorf("fixer: failed to load document: %w", err)
	}
	return f.FixDocument(doc)
}

// FixDocument applies the pipeline to an already-loaded document, mutating
// it in place.
func (f *Fixer) FixDocument(doc *document.Document) (*FixResult, error) {
	if doc == nil {
		return nil, fmt.Errorf("fixer: nil document")
	}
	if !document.IsMapping(doc.Root()) {
		return nil, fmt.Errorf("fixer: document root is not a mapping")
	}

	result := &FixResult{
		Document:     doc,
		SourcePath:   doc.SourcePath,
		SourceFormat: doc.SourceFormat,
		Fixes:        make([]Fix, 0),
		Success:      true,
	}

	f.applyPasses(doc, result)
	result.FixCount = len(result.Fixes)
	return result, nil
}

// isFixEnabled checks if a fix type is enabled.
func (f *Fixer) isFixEnabled(fixType FixType) bool {
	if len(f.EnabledFixes) == 0 {
		return true // all fixes enabled by default
	}
	for _, ft := range f.EnabledFixes {
		if ft == fixType {
			return true
		}
	}
	return false
}

// logger returns the configured logger, falling back to a no-op.
func (f *Fixer) logger() Logger {
	if f.Logger == nil {
		return NopLogger{}
	}
	return f.Logger
}

// warn logs a lookup miss and records it on the result. The dependent
// rewrite step is skipped; the run continues.
func (f *Fixer) warn(result *FixResult, msg string, attrs ...any) {
	f.logger().Warn(msg, attrs...)
	s := msg
	for i := 0; i+1 < len(attrs); i += 2 {
		s += fmt.Sprintf(" %v=%v", attrs[i], attrs[i+1])
	}
	result.Warnings = append(result.Warnings, s)
}
