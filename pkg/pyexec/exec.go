package pyexec

import (
	"bytes"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// CmdError reports a failed command invocation, carrying the argv it was
// started with and whatever the command wrote to stderr.
type CmdError struct {
	Args   string
	Stderr string
	Cause  error
}

func (ce *CmdError) Error() string {
	res := fmt.Sprintf("`%v` failed: %v", ce.Args, ce.Cause)
	if ce.Stderr != "" {
		res = fmt.Sprintf("%s: %s", res, ce.Stderr)
	}

	return res
}

func (ce *CmdError) String() string {
	return ce.Error()
}

func (ce *CmdError) Unwrap() error {
	return ce.Cause
}

func newCmdError(args string, cause error, stderr string) *CmdError {
	return &CmdError{Args: args, Stderr: stderr, Cause: cause}
}

// RunCommand runs name with the given arguments and returns its stdout with
// the trailing newline trimmed. Stdin is the null device, so the command
// cannot block waiting for input.
func RunCommand(name string, arg ...string) (string, error) {
	return RunCommandExt(exec.Command(name, arg...))
}

// RunCommandExt runs a prepared [exec.Cmd], capturing stdout and stderr, and
// waits for it to exit. A non-zero exit or a failure to start is returned as
// a [*CmdError].
func RunCommandExt(cmd *exec.Cmd) (string, error) {
	// log in a way we can copy-and-paste into a terminal
	args := strings.Join(cmd.Args, " ")
	slog.Info(args, "dir", cmd.Dir)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdin = nil // null device
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		cmdErr := newCmdError(args, err, strings.TrimSpace(stderr.String()))
		slog.Error(cmdErr.Error())

		return "", cmdErr
	}

	output := stdout.String()
	slog.Debug(output)

	return strings.TrimSuffix(output, "\n"), nil
}
