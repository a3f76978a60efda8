// Package errors provides the coded error type shared by the character import
// pipeline, its storage backends and the command line.
//
// Every failure that crosses a package boundary is an *Error carrying a
// machine-readable Code, a short message and optional metadata. Callers
// branch on the code, never on message text.
//
// # Basic Usage
//
//	err := errors.NotFoundf("character %s not found", id)
//	err := errors.NoFormFields("document has no AcroForm").
//	    WithMeta("path", path)
//
// Wrapping keeps the original code:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save imported character")
//	}
//
// # Import Codes
//
// Two codes are specific to extraction:
//   - NoFormFields: the PDF has no fillable fields; the importer falls back to OCR
//   - ExtractionFailed: both form and OCR paths failed; Meta holds each reason
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateEnum("store", cfg.Store, []string{"file", "redis", "sqlite"}, vb)
//	errors.ValidateRequired("path", input.Path, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
