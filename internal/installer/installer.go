package installer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Installer installs the dependencies of the project in dir.
type Installer interface {
	Install(ctx context.Context, dir string) (*Output, error)
}

// Output captures the result of an install run.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Error reports an install command that could not be started or exited
// non-zero. ExitCode is -1 when the process never ran to completion.
type Error struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("command failed: %s: %v", e.Command, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += "\n" + s
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Command runs a package manager command line such as "npm install".
type Command struct {
	Args []string
}

// NewCommand splits cmdline using shell quoting rules.
func NewCommand(cmdline string) (*Command, error) {
	args, err := shellquote.Split(cmdline)
	if err != nil {
		return nil, fmt.Errorf("parsing install command %q: %w", cmdline, err)
	}
	if len(args) == 0 {
		return nil, errors.New("install command is empty")
	}
	return &Command{Args: args}, nil
}

// String returns the command line, quoted where needed.
func (c *Command) String() string {
	return shellquote.Join(c.Args...)
}

// Install runs the command with dir as its working directory and waits for
// it to finish. Cancelling ctx kills the process.
func (c *Command) Install(ctx context.Context, dir string) (*Output, error) {
	if len(c.Args) == 0 {
		return nil, errors.New("install command is empty")
	}

	bin, err := exec.LookPath(c.Args[0])
	if err != nil {
		return nil, &Error{Command: c.String(), ExitCode: -1, Err: err}
	}

	cmd := exec.CommandContext(ctx, bin, c.Args[1:]...)
	cmd.Dir = dir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		output.ExitCode = -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
		}
		return output, &Error{
			Command:  c.String(),
			ExitCode: output.ExitCode,
			Stderr:   output.Stderr,
			Err:      err,
		}
	}

	return output, nil
}
