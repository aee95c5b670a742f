package fixer

// NullableRule names one pointer-typed field to wrap in a nullable union.
//
// SchemaSuffix is matched against the end of the full schema key so the
// table does not repeat the long Go module path prefix the generator bakes
// into every key. When Description is empty the field's existing description
// is preserved.
type NullableRule struct {
	SchemaSuffix string
	Field        string
	Description  string
}

// DefaultNullableRules is the compiled-in rule table, derived from the Go
// source structs where pointer types (*int64, *string, *SomeStruct) indicate
// nullable fields per JSON semantics. Description overrides match the
// reference specification's wording.
var DefaultNullableRules = []NullableRule{
	{SchemaSuffix: "schema.Response", Field: "completed_at"},
	{SchemaSuffix: "schema.Response", Field: "error", Description: "The error that occurred, if the response failed."},
	{SchemaSuffix: "schema.Response", Field: "incomplete_details", Description: "Details about why the response was incomplete, if applicable."},
	{SchemaSuffix: "schema.Response", Field: "usage"},
	{SchemaSuffix: "schema.Response", Field: "previous_response_id"},
	{SchemaSuffix: "schema.Response", Field: "conversation"},
	{SchemaSuffix: "schema.Response", Field: "instructions"},
	{SchemaSuffix: "schema.Response", Field: "reasoning"},
	{SchemaSuffix: "schema.Response", Field: "max_output_tokens"},
	{SchemaSuffix: "schema.Response", Field: "max_tool_calls"},
}
