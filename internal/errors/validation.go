package errors

import (
	"fmt"
	"slices"
	"strings"
)

// MetaValidationErrors is the metadata key holding per-field messages
// (map[string][]string) on errors returned by ValidationBuilder.Build.
const MetaValidationErrors = "validation_errors"

// ValidationBuilder collects per-field problems and turns them into a single
// InvalidArgument error. Fields are reported in the order first seen.
type ValidationBuilder struct {
	fields map[string][]string
	order  []string
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	if _, seen := vb.fields[field]; !seen {
		vb.order = append(vb.order, field)
	}
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// Fieldf adds a formatted validation error for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// InvalidField adds an invalid field error
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Fieldf(field, "is invalid: %s", reason)
}

// HasErrors reports whether any field problem was recorded
func (vb *ValidationBuilder) HasErrors() bool {
	return len(vb.order) > 0
}

// Build returns nil when nothing was recorded, otherwise an InvalidArgument
// error listing every field.
func (vb *ValidationBuilder) Build() error {
	if !vb.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(vb.order))
	for _, field := range vb.order {
		parts = append(parts, field+": "+strings.Join(vb.fields[field], ", "))
	}

	fields := make(map[string][]string, len(vb.fields))
	for k, v := range vb.fields {
		fields[k] = slices.Clone(v)
	}
	return InvalidArgument("validation failed: "+strings.Join(parts, "; ")).
		WithMeta(MetaValidationErrors, fields)
}

// ValidateRequired records field as required when value is blank
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateEnum checks if a value is in a list of allowed values
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	if !slices.Contains(allowed, value) {
		vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
	}
}
