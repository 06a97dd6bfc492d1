package figlet

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/opmodel/crust/internal/output"
)

// Runner invokes figlet. ok is false when the process could not be started
// or exited nonzero.
type Runner interface {
	Run(ctx context.Context, args []string) (out string, ok bool)
}

// ExecRunner runs the figlet binary as a subprocess.
type ExecRunner struct {
	// Path is the figlet binary. If empty, "figlet" is used from PATH.
	Path string
}

// Run executes figlet with args and captures stdout.
func (r ExecRunner) Run(ctx context.Context, args []string) (string, bool) {
	cmd := exec.CommandContext(ctx, r.path(), args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.Debug("figlet failed",
				"args", strings.Join(args, " "),
				"exit", exitErr.ExitCode(),
				"stderr", strings.TrimSpace(stderr.String()))
		} else {
			output.Debug("figlet unavailable", "path", r.path(), "error", err)
		}
		return "", false
	}

	return stdout.String(), true
}

func (r ExecRunner) path() string {
	if r.Path != "" {
		return r.Path
	}
	return "figlet"
}
