package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrCommandFailed is matched by every error Exec returns.
var ErrCommandFailed = errors.New("ollama command failed")

// CommandError reports a child process that exited unsuccessfully.
type CommandError struct {
	Args     []string
	ExitCode int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("ollama command failed with exit code %d", e.ExitCode)
}

// Is lets errors.Is(err, ErrCommandFailed) match a CommandError.
func (e *CommandError) Is(target error) bool { return target == ErrCommandFailed }

const waitDelay = time.Second

// Engine runs the ollama binary for model lifecycle operations.
type Engine struct {
	bin    string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    logrus.FieldLogger
}

// New creates an Engine for the given binary name or path. By default the
// child inherits the current process's stdio.
func New(bin string, opts ...Option) *Engine {
	e := &Engine{
		bin:    bin,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		log:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Bin returns the binary the engine invokes.
func (e *Engine) Bin() string { return e.bin }

// Exec runs the binary with args and waits for it to exit.
func (e *Engine) Exec(ctx context.Context, args ...string) error {
	path, err := exec.LookPath(e.bin)
	if err != nil {
		return fmt.Errorf("%w: %s not found: %w", ErrCommandFailed, e.bin, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr
	// Bound the wait for pipe copies after cancellation; a grandchild can
	// hold stdout open long after the child is killed.
	cmd.WaitDelay = waitDelay

	log := e.log.WithField("cmd", path+" "+strings.Join(args, " "))
	log.Debug("starting ollama")
	start := time.Now()

	err = cmd.Run()
	if err == nil {
		log.WithField("elapsed", time.Since(start)).Debug("ollama finished")
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// ExitCode is -1 when the process was terminated by a signal.
		code := exitErr.ExitCode()
		log.WithField("exit_code", code).Debug("ollama exited with error")
		return &CommandError{Args: args, ExitCode: code}
	}
	return fmt.Errorf("%w: start %s: %w", ErrCommandFailed, e.bin, err)
}

// List prints the models installed locally.
func (e *Engine) List(ctx context.Context) error {
	return e.Exec(ctx, "list")
}

// Pull downloads a model from the registry.
func (e *Engine) Pull(ctx context.Context, model string) error {
	return e.Exec(ctx, "pull", model)
}

// Run starts an interactive session with model.
func (e *Engine) Run(ctx context.Context, model string) error {
	return e.Exec(ctx, "run", model)
}

// Remove deletes a locally installed model.
func (e *Engine) Remove(ctx context.Context, model string) error {
	return e.Exec(ctx, "rm", model)
}
