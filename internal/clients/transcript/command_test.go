package transcript_test

import (
	"context"
	"os/exec"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Treylong00/DND-Companion/internal/clients/transcript"
	"github.com/Treylong00/DND-Companion/internal/errors"
)

func TestCommandSubstitutesPath(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}
	p, err := transcript.NewCommand(&transcript.CommandConfig{Argv: []string{"echo", "read {path}"}})
	require.NoError(t, err)

	text, err := p.Transcript(context.Background(), "/tmp/sheet.pdf")
	require.NoError(t, err)
	assert.Equal(t, "read /tmp/sheet.pdf\n", text)
}

func TestCommandFailure(t *testing.T) {
	p, err := transcript.NewCommand(&transcript.CommandConfig{Argv: []string{"dnd-companion-no-such-ocr-engine"}})
	require.NoError(t, err)

	_, err = p.Transcript(context.Background(), "/tmp/sheet.pdf")
	assert.True(t, errors.IsExtractionFailed(err))
	assert.Equal(t, "ocr_command_failed", errors.GetMeta(err)[errors.MetaReason])
}

func TestCommandConfigValidation(t *testing.T) {
	_, err := transcript.NewCommand(&transcript.CommandConfig{})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = transcript.NewCommand(nil)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestStatic(t *testing.T) {
	text, err := transcript.Static("SKILLS").Transcript(context.Background(), "ignored")
	require.NoError(t, err)
	assert.Equal(t, "SKILLS", text)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = transcript.Static("SKILLS").Transcript(ctx, "ignored")
	assert.Equal(t, errors.CodeCanceled, errors.GetCode(err))
}

func TestTextLayerErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := transcript.NewTextLayer(&transcript.TextLayerConfig{Fs: fs})

	_, err := p.Transcript(context.Background(), "/missing.pdf")
	assert.True(t, errors.IsNotFound(err))

	require.NoError(t, afero.WriteFile(fs, "/broken.pdf", []byte("not a pdf"), 0o644))
	_, err = p.Transcript(context.Background(), "/broken.pdf")
	assert.True(t, errors.IsExtractionFailed(err))
}

type explodingFile struct {
	afero.File
}

func (explodingFile) Read([]byte) (int, error)          { panic("index out of range") }
func (explodingFile) ReadAt([]byte, int64) (int, error) { panic("index out of range") }

type explodingFs struct {
	afero.Fs
}

func (e explodingFs) Open(name string) (afero.File, error) {
	f, err := e.Fs.Open(name)
	if err != nil {
		return nil, err
	}
	return explodingFile{File: f}, nil
}

func TestTextLayerReaderPanicIsMalformedPDF(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/scan.pdf", []byte("%PDF-1.4\n%%EOF\n"), 0o644))
	p := transcript.NewTextLayer(&transcript.TextLayerConfig{Fs: explodingFs{Fs: fs}})

	var err error
	require.NotPanics(t, func() {
		_, err = p.Transcript(context.Background(), "/scan.pdf")
	})
	assert.True(t, errors.IsExtractionFailed(err))
	assert.Equal(t, "malformed_pdf", errors.Reason(err))
}
