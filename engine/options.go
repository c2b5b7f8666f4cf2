package engine

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures an Engine.
type Option func(*Engine)

// WithStdio replaces the streams handed to the child process. Nil values
// leave the corresponding default in place.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(e *Engine) {
		if stdin != nil {
			e.stdin = stdin
		}
		if stdout != nil {
			e.stdout = stdout
		}
		if stderr != nil {
			e.stderr = stderr
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}
