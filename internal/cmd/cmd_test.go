package cmd

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/crust/internal/errors"
	"github.com/opmodel/crust/internal/testutil"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// code returns the exit code main would use for the result.
func (r result) code() int {
	return oerrors.ExitCodeFromError(r.err)
}

// execute runs the root command with an isolated home directory and a
// figlet path that never resolves.
func execute(t *testing.T, stdin io.Reader, args ...string) result {
	t.Helper()

	if stdin == nil {
		stdin = strings.NewReader("")
	}

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// isolate gives the test its own HOME and working directory.
func isolate(t *testing.T) string {
	t.Helper()
	testutil.IsolateConfig(t)
	t.Setenv("CRUST_FIGLET_PATH", "crust-test-no-such-figlet")
	dir := t.TempDir()
	testutil.Chdir(t, dir)
	return dir
}

func requireExitCode(t *testing.T, want int, r result) {
	t.Helper()
	require.Error(t, r.err)
	var exitErr *oerrors.ExitError
	require.True(t, errors.As(r.err, &exitErr), "expected ExitError, got %T", r.err)
	require.True(t, exitErr.Printed)
	require.Equal(t, want, exitErr.Code, r.stderr)
}
