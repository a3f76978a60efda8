// Package pdfform reads the fillable form fields of a PDF
package pdfform

//go:generate mockgen -destination=mock/mock_provider.go -package=pdfformmock github.com/Treylong00/DND-Companion/internal/clients/pdfform Provider

import "context"

// Provider returns the form fields of a PDF as a name to value map.
// Implementations return a NoFormFields error when the document has no
// fillable fields, and surface any other failure unchanged.
type Provider interface {
	FormFields(ctx context.Context, path string) (map[string]string, error)
}
