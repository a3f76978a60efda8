package pdfform

import (
	"context"

	"github.com/Treylong00/DND-Companion/internal/errors"
)

// Static serves a fixed field map regardless of path. The CLI uses it when
// fields are supplied as JSON instead of read from a PDF.
type Static map[string]string

// FormFields returns a copy of the map, or NoFormFields when it is empty
func (s Static) FormFields(ctx context.Context, _ string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.FromContext(err, "form field read aborted")
	}
	if len(s) == 0 {
		return nil, errors.NoFormFields("no form fields supplied")
	}
	out := make(map[string]string, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out, nil
}
