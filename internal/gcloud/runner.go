package gcloud

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"

	kerrors "github.com/PolarWolf314/gkms/internal/errors"
)

var notFoundPattern = regexp.MustCompile(`NOT_FOUND`)

// Runner executes gcloud commands.
type Runner interface {
	// Run executes cmd with its output attached to the user's terminal.
	Run(ctx context.Context, cmd Command) error
	// Output executes cmd and returns its stdout. Stderr is captured into
	// the returned *ExitError on failure.
	Output(ctx context.Context, cmd Command) (string, error)
}

// ExitError reports a gcloud process that exited non-zero.
type ExitError struct {
	Args   []string
	Code   int
	Stderr string
	Err    error
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", Command{Args: e.Args}, e.Code)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NotFound reports whether gcloud said the resource does not exist.
func (e *ExitError) NotFound() bool {
	return notFoundPattern.MatchString(e.Stderr)
}

// ExitCode returns the exit status carried by err, or 1 when err does not
// come from a gcloud process.
func ExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}
	return 1
}

// Exec runs gcloud through os/exec.
type Exec struct {
	Binary string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExec returns an Exec wired to the process's standard streams.
func NewExec(binary string) *Exec {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Exec{
		Binary: binary,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// LookPath checks that binary can be found on PATH.
func LookPath(binary string) (string, error) {
	if binary == "" {
		binary = DefaultBinary
	}
	path, err := exec.LookPath(binary)
	if err != nil {
		return "", fmt.Errorf("%w: %v", kerrors.ErrGcloudNotFound, err)
	}
	return path, nil
}

func (e *Exec) Run(ctx context.Context, cmd Command) error {
	var stderr bytes.Buffer
	c := exec.CommandContext(ctx, e.Binary, cmd.Args...)
	c.Stdin = e.Stdin
	c.Stdout = e.Stdout
	if e.Stderr != nil {
		c.Stderr = io.MultiWriter(e.Stderr, &stderr)
	} else {
		c.Stderr = &stderr
	}
	return wrapExitError(cmd, c.Run(), stderr.String())
}

func (e *Exec) Output(ctx context.Context, cmd Command) (string, error) {
	var stdout, stderr bytes.Buffer
	c := exec.CommandContext(ctx, e.Binary, cmd.Args...)
	c.Stdout = &stdout
	c.Stderr = &stderr
	if err := wrapExitError(cmd, c.Run(), stderr.String()); err != nil {
		return "", err
	}
	return stdout.String(), nil
}

func wrapExitError(cmd Command, err error, stderr string) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{
			Args:   cmd.Args,
			Code:   exitErr.ExitCode(),
			Stderr: stderr,
			Err:    err,
		}
	}
	return fmt.Errorf("running %s: %w", cmd, err)
}
