// Package importer turns a character sheet PDF into a normalized record,
// trying embedded form fields first and OCR text second.
package importer

//go:generate mockgen -destination=mock/mock_importer.go -package=importermock github.com/Treylong00/DND-Companion/internal/orchestrators/importer Importer

import (
	"context"

	"github.com/Treylong00/DND-Companion/internal/entities"
)

// Importer extracts a record from one document. It does not persist.
type Importer interface {
	Import(ctx context.Context, input *ImportInput) (*ImportOutput, error)
}

// Source names the modality that produced a record
type Source string

const (
	// SourceFormFields means the record came from the PDF's fillable fields
	SourceFormFields Source = "form_fields"
	// SourceOCR means the record came from a text transcript
	SourceOCR Source = "ocr"
)

// Notices are machine-readable; rendering them is the caller's concern.
const (
	NoticeNoFormFieldsFallback = "no_form_fields_fallback_to_ocr"
	NoticePlaceholderName      = "name_not_found_placeholder_used"
)

// Metadata keys on the combined EXTRACTION_FAILED error
const (
	MetaFormReason = "form_reason"
	MetaOCRReason  = "ocr_reason"
	MetaPath       = "path"
)

// ImportInput names the document to read
type ImportInput struct {
	Path string
}

// ImportOutput carries the record and how it was obtained
type ImportOutput struct {
	Character *entities.Character
	Source    Source
	FellBack  bool
	Notices   []string
}

// state is the import flow position; it only feeds logging
type state string

const (
	stateTryFormFields state = "try_form_fields"
	stateTryOCR        state = "try_ocr"
	stateDone          state = "done"
)
