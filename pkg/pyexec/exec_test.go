package pyexec_test

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgtm-ci/python-setup/pkg/pyexec"
)

func requireUnix(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestRunCommand(t *testing.T) {
	t.Parallel()
	requireUnix(t)

	out, err := pyexec.RunCommand("sh", "-c", `printf 'hello\n'`)
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestRunCommandTrimsOnlyTrailingNewline(t *testing.T) {
	t.Parallel()
	requireUnix(t)

	out, err := pyexec.RunCommand("sh", "-c", `printf 'a\nb\n'`)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", out)
}

func TestRunCommandFailure(t *testing.T) {
	t.Parallel()
	requireUnix(t)

	out, err := pyexec.RunCommand("sh", "-c", `echo boom >&2; exit 3`)
	require.Error(t, err)
	assert.Empty(t, out)

	cmdErr := &pyexec.CmdError{}
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "boom", cmdErr.Stderr)
	assert.Contains(t, cmdErr.Error(), "exit status 3")
	assert.Contains(t, cmdErr.Error(), "boom")
}

func TestRunCommandNotFound(t *testing.T) {
	t.Parallel()

	_, err := pyexec.RunCommand("/nonexistent/interpreter", "-c", "pass")
	require.Error(t, err)

	cmdErr := &pyexec.CmdError{}
	require.ErrorAs(t, err, &cmdErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunCommandStdinDiscarded(t *testing.T) {
	t.Parallel()
	requireUnix(t)

	// cat with no arguments reads stdin; with stdin on the null device it
	// must exit immediately with no output instead of hanging.
	out, err := pyexec.RunCommand("cat")
	require.NoError(t, err)
	assert.Empty(t, out)
}
