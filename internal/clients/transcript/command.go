package transcript

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/Treylong00/DND-Companion/internal/errors"
)

// PathPlaceholder is replaced by the document path in command arguments
const PathPlaceholder = "{path}"

// CommandConfig describes an external OCR engine invocation
type CommandConfig struct {
	// Argv is the program and its arguments, e.g.
	// ["ocrmypdf", "--sidecar", "-", "{path}", "/dev/null"]. The engine must
	// write the transcript to stdout.
	Argv []string

	// Timeout bounds one invocation. Zero means no limit beyond ctx.
	Timeout time.Duration
}

// Validate validates the config
func (c *CommandConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if len(c.Argv) == 0 || strings.TrimSpace(c.Argv[0]) == "" {
		vb.RequiredField("Argv")
	}
	if c.Timeout < 0 {
		vb.InvalidField("Timeout", "must not be negative")
	}
	return vb.Build()
}

type command struct {
	argv    []string
	timeout time.Duration
}

// NewCommand creates a provider that runs an OCR engine per document
func NewCommand(cfg *CommandConfig) (Provider, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &command{
		argv:    append([]string(nil), cfg.Argv...),
		timeout: cfg.Timeout,
	}, nil
}

func (c *command) Transcript(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", errors.InvalidArgument("path is required")
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	args := make([]string, len(c.argv)-1)
	for i, arg := range c.argv[1:] {
		args[i] = strings.ReplaceAll(arg, PathPlaceholder, path)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.argv[0], args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", errors.FromContext(ctxErr, "ocr command aborted")
		}
		return "", errors.WrapWithCode(err, errors.CodeExtractionFailed, "ocr command failed").
			WithReason("ocr_command_failed").
			WithMeta("command", c.argv[0]).
			WithMeta("stderr", strings.TrimSpace(stderr.String()))
	}

	slog.DebugContext(ctx, "ocr command finished",
		"command", c.argv[0],
		"path", path,
		"duration", time.Since(start),
		"bytes", stdout.Len())
	return stdout.String(), nil
}
