package transcript

import (
	"context"

	"github.com/Treylong00/DND-Companion/internal/errors"
)

// Static serves a fixed transcript regardless of path. The CLI uses it for
// transcripts produced ahead of time.
type Static string

// Transcript returns the fixed text
func (s Static) Transcript(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.FromContext(err, "transcript read aborted")
	}
	return string(s), nil
}
