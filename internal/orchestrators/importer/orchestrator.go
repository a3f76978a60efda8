package importer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Treylong00/DND-Companion/internal/clients/pdfform"
	"github.com/Treylong00/DND-Companion/internal/clients/transcript"
	"github.com/Treylong00/DND-Companion/internal/entities"
	"github.com/Treylong00/DND-Companion/internal/errors"
	"github.com/Treylong00/DND-Companion/internal/pkg/idgen"
	"github.com/Treylong00/DND-Companion/internal/sources/formfield"
	"github.com/Treylong00/DND-Companion/internal/sources/ocrtext"
)

// Config holds the dependencies for the import orchestrator
type Config struct {
	FormFields  pdfform.Provider
	Transcripts transcript.Provider
	FormAdapter *formfield.Adapter
	OCRAdapter  *ocrtext.Adapter
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.FormFields == nil {
		vb.RequiredField("FormFields")
	}
	if c.Transcripts == nil {
		vb.RequiredField("Transcripts")
	}
	if c.FormAdapter == nil {
		vb.RequiredField("FormAdapter")
	}
	if c.OCRAdapter == nil {
		vb.RequiredField("OCRAdapter")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

// Orchestrator implements Importer
type Orchestrator struct {
	formFields  pdfform.Provider
	transcripts transcript.Provider
	formAdapter *formfield.Adapter
	ocrAdapter  *ocrtext.Adapter
	idGenerator idgen.Generator
}

var _ Importer = (*Orchestrator)(nil)

// New creates a new import orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		formFields:  cfg.FormFields,
		transcripts: cfg.Transcripts,
		formAdapter: cfg.FormAdapter,
		ocrAdapter:  cfg.OCRAdapter,
		idGenerator: cfg.IDGenerator,
	}, nil
}

// Import runs TryFormFields then, only on NO_FORM_FIELDS, TryOCR. Each
// provider is called at most once.
func (o *Orchestrator) Import(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("path", strings.TrimSpace(input.Path), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "import attempting form fields",
		"path", input.Path,
		"state", stateTryFormFields)

	c, formErr := o.tryFormFields(ctx, input.Path)
	if formErr == nil {
		return o.finish(ctx, input.Path, c, SourceFormFields, nil), nil
	}
	if !errors.IsNoFormFields(formErr) {
		slog.WarnContext(ctx, "form field import failed",
			"path", input.Path,
			"code", errors.GetCode(formErr),
			"error", formErr.Error())
		return nil, formErr
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.FromContext(err, "import aborted before ocr")
	}

	slog.InfoContext(ctx, "falling back to ocr",
		"path", input.Path,
		"state", stateTryOCR,
		"reason", errors.Reason(formErr))

	c, ocrErr := o.tryOCR(ctx, input.Path)
	if ocrErr != nil {
		if errors.IsContextDone(ocrErr) {
			return nil, ocrErr
		}
		slog.ErrorContext(ctx, "ocr import failed after fallback",
			"path", input.Path,
			"error", ocrErr.Error())
		return nil, errors.WrapWithCode(ocrErr, errors.CodeExtractionFailed, "no source produced a character").
			WithMeta(MetaFormReason, errors.Reason(formErr)).
			WithMeta(MetaOCRReason, errors.Reason(ocrErr)).
			WithMeta(MetaPath, input.Path)
	}

	return o.finish(ctx, input.Path, c, SourceOCR, []string{NoticeNoFormFieldsFallback}), nil
}

func (o *Orchestrator) tryFormFields(ctx context.Context, path string) (*entities.Character, error) {
	fields, err := o.formFields.FormFields(ctx, path)
	if err != nil {
		return nil, err
	}
	return o.formAdapter.Extract(fields)
}

func (o *Orchestrator) tryOCR(ctx context.Context, path string) (*entities.Character, error) {
	text, err := o.transcripts.Transcript(ctx, path)
	if err != nil {
		return nil, err
	}
	return o.ocrAdapter.Extract(text)
}

func (o *Orchestrator) finish(ctx context.Context, path string, c *entities.Character, source Source, notices []string) *ImportOutput {
	c.ID = o.idGenerator.Generate()
	if strings.TrimSpace(c.Name) == "" {
		c.Name = entities.PlaceholderName
		notices = append(notices, NoticePlaceholderName)
	}

	slog.InfoContext(ctx, "import complete",
		"path", path,
		"state", stateDone,
		"source", source,
		"character_id", c.ID)

	return &ImportOutput{
		Character: c,
		Source:    source,
		FellBack:  source == SourceOCR,
		Notices:   notices,
	}
}
