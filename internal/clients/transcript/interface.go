// Package transcript produces a single text transcript of every page of a
// PDF, either from its embedded text layer or from an external OCR engine.
package transcript

//go:generate mockgen -destination=mock/mock_provider.go -package=transcriptmock github.com/Treylong00/DND-Companion/internal/clients/transcript Provider

import "context"

// Provider returns the concatenated text of a document. Image preprocessing
// and page iteration are the provider's concern.
type Provider interface {
	Transcript(ctx context.Context, path string) (string, error)
}
