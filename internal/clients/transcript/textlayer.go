package transcript

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/spf13/afero"

	"github.com/Treylong00/DND-Companion/internal/errors"
)

// TextLayerConfig configures the embedded text reader
type TextLayerConfig struct {
	// Fs is where PDFs are read from. Defaults to the OS filesystem.
	Fs afero.Fs
}

type textLayer struct {
	fs afero.Fs
}

// NewTextLayer creates a provider that reads the text a PDF already carries.
// Scans usually have none, which is what Fallback checks for.
func NewTextLayer(cfg *TextLayerConfig) Provider {
	fsys := afero.Fs(afero.NewOsFs())
	if cfg != nil && cfg.Fs != nil {
		fsys = cfg.Fs
	}
	return &textLayer{fs: fsys}
}

func (t *textLayer) Transcript(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", errors.InvalidArgument("path is required")
	}

	f, err := t.fs.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errors.NotFoundf("pdf %s not found", path)
		}
		return "", errors.Wrapf(err, "failed to open %s", path)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return "", errors.Wrapf(err, "failed to stat %s", path)
	}

	return readText(ctx, path, f, info.Size())
}

// readText collects the plain text of every page. The pdf package panics on
// some malformed inputs; that is reported as a malformed PDF.
func readText(ctx context.Context, path string, f io.ReaderAt, size int64) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = ""
			err = errors.WrapWithCode(fmt.Errorf("pdf reader panic: %v", r), errors.CodeExtractionFailed,
				"failed to read pdf").WithReason("malformed_pdf")
		}
	}()

	r, err := pdf.NewReader(f, size)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeExtractionFailed, "failed to read pdf").
			WithReason("malformed_pdf")
	}

	var text strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", errors.FromContext(err, "text layer read aborted")
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			slog.DebugContext(ctx, "skipping unreadable page", "path", path, "page", i, "error", err)
			continue
		}
		if pageText = strings.TrimSpace(pageText); pageText == "" {
			continue
		}
		if text.Len() > 0 {
			text.WriteString("\n\n")
		}
		text.WriteString(pageText)
	}
	return text.String(), nil
}
