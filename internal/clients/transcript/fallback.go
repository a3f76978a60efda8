package transcript

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/Treylong00/DND-Companion/internal/errors"
)

// DefaultMinChars is the shortest text layer accepted without running OCR
const DefaultMinChars = 50

// FallbackConfig pairs a cheap provider with an expensive one
type FallbackConfig struct {
	Primary   Provider
	Secondary Provider
	MinChars  int
}

// Validate validates the config
func (c *FallbackConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Primary == nil {
		vb.RequiredField("Primary")
	}
	if c.Secondary == nil {
		vb.RequiredField("Secondary")
	}
	if c.MinChars < 0 {
		vb.InvalidField("MinChars", "must not be negative")
	}
	return vb.Build()
}

type fallback struct {
	primary   Provider
	secondary Provider
	minChars  int
}

// NewFallback creates a provider that keeps the primary transcript unless it
// looks too short or garbled, in which case the secondary runs.
func NewFallback(cfg *FallbackConfig) (Provider, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	minChars := cfg.MinChars
	if minChars == 0 {
		minChars = DefaultMinChars
	}
	return &fallback{primary: cfg.Primary, secondary: cfg.Secondary, minChars: minChars}, nil
}

func (f *fallback) Transcript(ctx context.Context, path string) (string, error) {
	text, err := f.primary.Transcript(ctx, path)
	switch {
	case err == nil && !NeedsOCR(text, f.minChars):
		return text, nil
	case errors.IsNotFound(err), errors.IsInvalidArgument(err), errors.IsContextDone(err):
		return "", err
	case err != nil:
		slog.WarnContext(ctx, "text layer unreadable, running ocr", "path", path, "error", err)
	default:
		slog.InfoContext(ctx, "text layer too thin, running ocr", "path", path, "chars", len(strings.TrimSpace(text)))
	}
	return f.secondary.Transcript(ctx, path)
}

// NeedsOCR reports whether extracted text is too short or garbled to use:
// fewer than minChars characters, mostly single-character words, or more
// than 5% replacement characters.
func NeedsOCR(text string, minChars int) bool {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < minChars {
		return true
	}
	return garbled(text) || replacementRatio(text) > 0.05
}

// garbled detects text where many of the first 50 words are a single
// character, which is what broken font encodings produce.
func garbled(text string) bool {
	words := strings.Fields(text)
	if len(words) < 20 {
		return false
	}
	sample := words[:min(50, len(words))]
	single := 0
	for _, w := range sample {
		if utf8.RuneCountInString(w) != 1 {
			continue
		}
		// checkbox marks and separators are expected on a sheet
		if strings.ContainsAny(w, ".-:xXoO+*") {
			continue
		}
		single++
	}
	return float64(single)/float64(len(sample)) > 0.4
}

func replacementRatio(text string) float64 {
	total, bad := 0, 0
	for _, r := range text {
		total++
		if r == utf8.RuneError {
			bad++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(bad) / float64(total)
}
