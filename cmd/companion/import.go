package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Treylong00/DND-Companion/internal/errors"
	"github.com/Treylong00/DND-Companion/internal/orchestrators/importer"
	charactersvc "github.com/Treylong00/DND-Companion/internal/services/character"
)

var (
	importFieldsFile     string
	importTranscriptFile string
)

var importCmd = &cobra.Command{
	Use:   "import [pdf]",
	Short: "Import a character sheet",
	Long: `Import a character sheet PDF. Fillable form fields are read first; a sheet
without them falls back to its text layer and then the configured OCR command.

--fields and --transcript supply pre-extracted input instead of reading the PDF.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importFieldsFile, "fields", "", "JSON object of form field names to values")
	importCmd.Flags().StringVar(&importTranscriptFile, "transcript", "", "Text file holding an OCR transcript")
}

func runImport(cmd *cobra.Command, args []string) error {
	path := importPath(args)
	if path == "" {
		return errors.InvalidArgument("a PDF path, --fields or --transcript is required")
	}

	a, err := newApp(cmd.Context(), cfg, sourceOverrides{
		FieldsFile:     importFieldsFile,
		TranscriptFile: importTranscriptFile,
	})
	if err != nil {
		return err
	}
	defer a.Close()

	out, err := a.service.ImportCharacter(cmd.Context(), &charactersvc.ImportCharacterInput{Path: path})
	if err != nil {
		if errors.IsExtractionFailed(err) {
			if why := sourceFailures(err); why != "" {
				cmd.PrintErrf("Sources tried: %s\n", why)
			}
		}
		return err
	}

	cmd.PrintErrf("Imported %s (%s) from %s\n", out.Character.Name, out.Character.ID, out.Source)
	if len(out.Notices) > 0 {
		cmd.PrintErrf("Notices: %s\n", strings.Join(out.Notices, ", "))
	}
	return printJSON(cmd, out.Character)
}

// importPath labels the import; with overrides only, the override file
// stands in for the PDF
func importPath(args []string) string {
	switch {
	case len(args) > 0:
		return args[0]
	case importFieldsFile != "":
		return importFieldsFile
	default:
		return importTranscriptFile
	}
}

// sourceFailures names the reason each source gave up, or "" when the
// error carries none
func sourceFailures(err error) string {
	meta := errors.GetMeta(err)
	form, _ := meta[importer.MetaFormReason].(string)
	ocr, _ := meta[importer.MetaOCRReason].(string)
	if form == "" && ocr == "" {
		return ""
	}
	return fmt.Sprintf("form fields: %s, ocr: %s", reasonOrUnknown(form), reasonOrUnknown(ocr))
}

func reasonOrUnknown(reason string) string {
	if reason == "" {
		return "unknown"
	}
	return reason
}
