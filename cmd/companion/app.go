package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/afero"

	"github.com/Treylong00/DND-Companion/internal/clients/pdfform"
	"github.com/Treylong00/DND-Companion/internal/clients/transcript"
	"github.com/Treylong00/DND-Companion/internal/config"
	"github.com/Treylong00/DND-Companion/internal/engine"
	"github.com/Treylong00/DND-Companion/internal/errors"
	"github.com/Treylong00/DND-Companion/internal/orchestrators/character"
	"github.com/Treylong00/DND-Companion/internal/orchestrators/importer"
	"github.com/Treylong00/DND-Companion/internal/pkg/clock"
	"github.com/Treylong00/DND-Companion/internal/pkg/idgen"
	"github.com/Treylong00/DND-Companion/internal/redis"
	characterrepo "github.com/Treylong00/DND-Companion/internal/repositories/character"
	charactersvc "github.com/Treylong00/DND-Companion/internal/services/character"
	"github.com/Treylong00/DND-Companion/internal/sources/formfield"
	"github.com/Treylong00/DND-Companion/internal/sources/ocrtext"
)

const idPrefix = "char"

// sourceOverrides replaces the PDF readers with pre-extracted input
type sourceOverrides struct {
	FieldsFile     string
	TranscriptFile string
}

// app is the wired character service plus whatever needs closing
type app struct {
	service charactersvc.Service
	closers []func() error
}

func (a *app) Close() {
	for _, closeFn := range a.closers {
		_ = closeFn()
	}
}

func newApp(ctx context.Context, cfg *config.Config, overrides sourceOverrides) (*app, error) {
	fs := afero.NewOsFs()
	a := &app{}

	repo, err := newRepository(ctx, cfg, fs, a)
	if err != nil {
		a.Close()
		return nil, err
	}

	formFields, err := newFormFieldProvider(fs, overrides.FieldsFile)
	if err != nil {
		a.Close()
		return nil, err
	}
	transcripts, err := newTranscriptProvider(cfg, fs, overrides.TranscriptFile)
	if err != nil {
		a.Close()
		return nil, err
	}

	rulesEngine, err := engine.New(&engine.Config{})
	if err != nil {
		a.Close()
		return nil, err
	}
	formAdapter, err := formfield.New(&formfield.Config{Engine: rulesEngine})
	if err != nil {
		a.Close()
		return nil, err
	}
	ocrAdapter, err := ocrtext.New(&ocrtext.Config{Engine: rulesEngine})
	if err != nil {
		a.Close()
		return nil, err
	}

	ids := idgen.NewUUID(idPrefix)
	imp, err := importer.New(&importer.Config{
		FormFields:  formFields,
		Transcripts: transcripts,
		FormAdapter: formAdapter,
		OCRAdapter:  ocrAdapter,
		IDGenerator: ids,
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	a.service, err = character.New(&character.Config{
		CharacterRepo: repo,
		Importer:      imp,
		Engine:        rulesEngine,
		IDGenerator:   ids,
	})
	if err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func newRepository(ctx context.Context, cfg *config.Config, fs afero.Fs, a *app) (characterrepo.Repository, error) {
	switch cfg.Store {
	case config.StoreRedis:
		client, err := redis.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		if err := redis.Ping(ctx, client); err != nil {
			return nil, err
		}
		return characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client, Clock: clock.New()})
	case config.StoreSQLite:
		repo, err := characterrepo.NewSQLite(&characterrepo.SQLiteConfig{Path: cfg.SQLitePath, Clock: clock.New()})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, repo.Close)
		return repo, nil
	default:
		return characterrepo.NewFile(&characterrepo.FileConfig{Fs: fs, Dir: cfg.DataDir})
	}
}

func newFormFieldProvider(fs afero.Fs, fieldsFile string) (pdfform.Provider, error) {
	if fieldsFile == "" {
		return pdfform.NewPDFCPU(&pdfform.Config{Fs: fs}), nil
	}

	data, err := afero.ReadFile(fs, fieldsFile)
	if err != nil {
		return nil, errors.InvalidArgumentf("cannot read fields file %s: %v", fieldsFile, err)
	}
	var fields map[string]string
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.InvalidArgumentf("fields file %s must be a JSON object of strings: %v", fieldsFile, err)
	}
	return pdfform.Static(fields), nil
}

// newTranscriptProvider reads the PDF text layer and, when an OCR command
// is configured, runs it for pages without usable text
func newTranscriptProvider(cfg *config.Config, fs afero.Fs, transcriptFile string) (transcript.Provider, error) {
	if transcriptFile != "" {
		data, err := afero.ReadFile(fs, transcriptFile)
		if err != nil {
			return nil, errors.InvalidArgumentf("cannot read transcript file %s: %v", transcriptFile, err)
		}
		return transcript.Static(data), nil
	}

	textLayer := transcript.NewTextLayer(&transcript.TextLayerConfig{Fs: fs})
	if len(cfg.OCRCommand) == 0 {
		return textLayer, nil
	}

	ocr, err := transcript.NewCommand(&transcript.CommandConfig{Argv: cfg.OCRCommand, Timeout: cfg.OCRTimeout})
	if err != nil {
		return nil, err
	}
	return transcript.NewFallback(&transcript.FallbackConfig{
		Primary:   textLayer,
		Secondary: ocr,
		MinChars:  cfg.OCRMinChars,
	})
}
