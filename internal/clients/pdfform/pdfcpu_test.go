package pdfform_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Treylong00/DND-Companion/internal/clients/pdfform"
	"github.com/Treylong00/DND-Companion/internal/errors"
)

// buildPDF lays out numbered objects and a matching xref table
func buildPDF(objects []string) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.7\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

var formObjects = []string{
	"<< /Type /Catalog /Pages 2 0 R /AcroForm << /Fields [4 0 R 5 0 R 6 0 R] >> >>",
	"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
	"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>",
	"<< /FT /Tx /T (CharacterName) /V (Elara) >>",
	"<< /FT /Btn /T (Check Box 25) /V /Yes >>",
	"<< /T (Spells) /Kids [7 0 R] >>",
	"<< /FT /Tx /T (Level1) /V (Magic Missile) /Parent 6 0 R >>",
}

var plainObjects = []string{
	"<< /Type /Catalog /Pages 2 0 R >>",
	"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
	"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>",
}

type PDFCPUTestSuite struct {
	suite.Suite
	fs       afero.Fs
	provider pdfform.Provider
	ctx      context.Context
}

func TestPDFCPUSuite(t *testing.T) {
	suite.Run(t, new(PDFCPUTestSuite))
}

func (s *PDFCPUTestSuite) SetupTest() {
	s.fs = afero.NewMemMapFs()
	s.provider = pdfform.NewPDFCPU(&pdfform.Config{Fs: s.fs})
	s.ctx = context.Background()
}

func (s *PDFCPUTestSuite) write(path string, data []byte) {
	s.Require().NoError(afero.WriteFile(s.fs, path, data, 0o644))
}

func (s *PDFCPUTestSuite) TestReadsQualifiedFieldNames() {
	s.write("/sheets/form.pdf", buildPDF(formObjects))

	fields, err := s.provider.FormFields(s.ctx, "/sheets/form.pdf")
	s.Require().NoError(err)
	s.Assert().Equal(map[string]string{
		"CharacterName": "Elara",
		"Check Box 25":  "Yes",
		"Spells.Level1": "Magic Missile",
	}, fields)
}

func (s *PDFCPUTestSuite) TestNoAcroFormIsNoFormFields() {
	s.write("/sheets/scan.pdf", buildPDF(plainObjects))

	_, err := s.provider.FormFields(s.ctx, "/sheets/scan.pdf")
	s.Assert().True(errors.IsNoFormFields(err))
}

func (s *PDFCPUTestSuite) TestMissingFile() {
	_, err := s.provider.FormFields(s.ctx, "/sheets/missing.pdf")
	s.Assert().True(errors.IsNotFound(err))
}

func (s *PDFCPUTestSuite) TestMalformedPDF() {
	s.write("/sheets/broken.pdf", []byte("this is not a pdf"))

	_, err := s.provider.FormFields(s.ctx, "/sheets/broken.pdf")
	s.Require().Error(err)
	s.Assert().True(errors.IsExtractionFailed(err))
	s.Assert().Equal("malformed_pdf", errors.Reason(err))
}

// explodingFile panics on every read, standing in for a parser that trips
// over hostile input
type explodingFile struct {
	afero.File
}

func (explodingFile) Read([]byte) (int, error)          { panic("slice bounds out of range") }
func (explodingFile) ReadAt([]byte, int64) (int, error) { panic("slice bounds out of range") }
func (explodingFile) Seek(int64, int) (int64, error)    { panic("slice bounds out of range") }

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

func (s *PDFCPUTestSuite) TestParserPanicIsMalformedPDF() {
	s.write("/sheets/form.pdf", buildPDF(formObjects))
	provider := pdfform.NewPDFCPU(&pdfform.Config{Fs: explodingFs{Fs: s.fs}})

	var err error
	s.Require().NotPanics(func() {
		_, err = provider.FormFields(s.ctx, "/sheets/form.pdf")
	})
	s.Assert().True(errors.IsExtractionFailed(err))
	s.Assert().Equal("malformed_pdf", errors.Reason(err))
}

func (s *PDFCPUTestSuite) TestEmptyPath() {
	_, err := s.provider.FormFields(s.ctx, "")
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *PDFCPUTestSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.provider.FormFields(ctx, "/sheets/form.pdf")
	s.Assert().Equal(errors.CodeCanceled, errors.GetCode(err))
}

func TestStatic(t *testing.T) {
	fields, err := pdfform.Static{"STR": "14"}.FormFields(context.Background(), "ignored.pdf")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"STR": "14"}, fields)

	_, err = pdfform.Static{}.FormFields(context.Background(), "ignored.pdf")
	assert.True(t, errors.IsNoFormFields(err))
}
