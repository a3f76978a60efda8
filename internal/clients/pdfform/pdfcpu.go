package pdfform

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/spf13/afero"

	"github.com/Treylong00/DND-Companion/internal/errors"
)

// maxFieldDepth bounds the Kids walk on malformed field trees
const maxFieldDepth = 32

// Config configures the pdfcpu-backed provider
type Config struct {
	// Fs is where PDFs are read from. Defaults to the OS filesystem.
	Fs afero.Fs
}

type pdfcpuProvider struct {
	fs afero.Fs
}

// NewPDFCPU creates a provider that walks the AcroForm field tree
func NewPDFCPU(cfg *Config) Provider {
	fsys := afero.Fs(afero.NewOsFs())
	if cfg != nil && cfg.Fs != nil {
		fsys = cfg.Fs
	}
	return &pdfcpuProvider{fs: fsys}
}

func (p *pdfcpuProvider) FormFields(ctx context.Context, path string) (map[string]string, error) {
	if path == "" {
		return nil, errors.InvalidArgument("path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.FromContext(err, "form field read aborted")
	}

	f, err := p.fs.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFoundf("pdf %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer func() { _ = f.Close() }()

	fields, err := readFields(f)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errors.NoFormFields("no fillable form fields found").WithMeta("path", path)
	}

	slog.DebugContext(ctx, "read form fields", "path", path, "count", len(fields))
	return fields, nil
}

// readFields parses the document and collects its form fields. pdfcpu can
// panic on hostile input; that is reported as a malformed PDF.
func readFields(f io.ReadSeeker) (fields map[string]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			fields = nil
			err = errors.WrapWithCode(fmt.Errorf("pdf parser panic: %v", r), errors.CodeExtractionFailed,
				"failed to read pdf").WithReason("malformed_pdf")
		}
	}()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	pdfCtx, err := api.ReadContext(f, conf)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeExtractionFailed, "failed to read pdf").
			WithReason("malformed_pdf")
	}
	if err := pdfCtx.EnsurePageCount(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeExtractionFailed, "failed to read page tree").
			WithReason("malformed_pdf")
	}
	return readAcroForm(pdfCtx)
}

func readAcroForm(pdfCtx *model.Context) (map[string]string, error) {
	fields := make(map[string]string)

	root, err := pdfCtx.Catalog()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeExtractionFailed, "failed to read catalog")
	}
	acroFormObj, found := root.Find("AcroForm")
	if !found {
		return fields, nil
	}
	acroForm, err := pdfCtx.DereferenceDict(acroFormObj)
	if err != nil || acroForm == nil {
		return fields, nil
	}
	fieldsObj, found := acroForm.Find("Fields")
	if !found {
		return fields, nil
	}
	roots, err := pdfCtx.DereferenceArray(fieldsObj)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeExtractionFailed, "failed to read form fields")
	}

	for _, obj := range roots {
		walkField(pdfCtx, obj, "", 0, fields)
	}
	return fields, nil
}

// walkField records terminal fields under their fully qualified name. Kids
// without a T entry are widget annotations of the field itself.
func walkField(pdfCtx *model.Context, obj types.Object, parent string, depth int, out map[string]string) {
	if depth > maxFieldDepth {
		return
	}
	dict, err := pdfCtx.DereferenceDict(obj)
	if err != nil || dict == nil {
		return
	}

	name := parent
	if tObj, found := dict.Find("T"); found {
		if partial, err := pdfCtx.DereferenceStringOrHexLiteral(tObj, model.V10, nil); err == nil && partial != "" {
			if name != "" {
				name += "."
			}
			name += partial
		}
	}

	var namedKids []types.Object
	if kidsObj, found := dict.Find("Kids"); found {
		if kids, err := pdfCtx.DereferenceArray(kidsObj); err == nil {
			for _, kid := range kids {
				kidDict, err := pdfCtx.DereferenceDict(kid)
				if err != nil || kidDict == nil {
					continue
				}
				if _, named := kidDict.Find("T"); named {
					namedKids = append(namedKids, kid)
				}
			}
		}
	}
	if len(namedKids) > 0 {
		for _, kid := range namedKids {
			walkField(pdfCtx, kid, name, depth+1, out)
		}
		return
	}

	if name == "" {
		return
	}
	out[name] = fieldValue(pdfCtx, dict)
}

// fieldValue renders V as text. Checkbox and radio values are names such as
// Yes or Off.
func fieldValue(pdfCtx *model.Context, dict types.Dict) string {
	v, found := dict.Find("V")
	if !found {
		return ""
	}
	if s, err := pdfCtx.DereferenceStringOrHexLiteral(v, model.V10, nil); err == nil {
		return strings.TrimSpace(s)
	}
	if n, err := pdfCtx.DereferenceName(v, model.V10, nil); err == nil {
		return string(n)
	}
	return ""
}
