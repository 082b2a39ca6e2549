// Package shell provides the external command executor adapter.
package shell

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"go.trai.ch/rebind/internal/core/ports"
	"go.trai.ch/zerr"
)

// stderrTailSize bounds how much stderr is attached to a failure.
const stderrTailSize = 4096

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// LookPath resolves name using the PATH of the current process.
func (e *Executor) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes the command. Output is copied to stdout and stderr and
// mirrored line by line to the debug log.
func (e *Executor) Run(ctx context.Context, cmd ports.Command, stdout, stderr io.Writer) error {
	if len(cmd.Args) == 0 {
		return nil
	}

	c := exec.CommandContext(ctx, cmd.Args[0], cmd.Args[1:]...) //nolint:gosec // configured command
	c.Dir = cmd.Dir
	if len(cmd.Env) > 0 {
		c.Env = resolveEnvironment(os.Environ(), cmd.Env)
	}

	outLog := &logWriter{logger: e.logger}
	errLog := &logWriter{logger: e.logger}
	tail := &tailBuffer{limit: stderrTailSize}

	c.Stdout = io.MultiWriter(orDiscard(stdout), outLog)
	c.Stderr = io.MultiWriter(orDiscard(stderr), errLog, tail)

	err := c.Run()
	outLog.Flush()
	errLog.Flush()

	if err != nil {
		exitCode := -1 // Unknown or signal
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}

		wrapped := zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
		wrapped = zerr.With(wrapped, "command", strings.Join(cmd.Args, " "))
		if s := strings.TrimSpace(tail.String()); s != "" {
			wrapped = zerr.With(wrapped, "stderr", s)
		}
		return wrapped
	}

	return nil
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

// logWriter buffers partial writes and logs complete lines at debug level.
type logWriter struct {
	logger ports.Logger
	mu     sync.Mutex
	buf    bytes.Buffer
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Incomplete line, keep it for the next write.
			w.buf.Reset()
			w.buf.WriteString(line)
			break
		}
		w.emit(strings.TrimRight(line, "\r\n"))
	}
	return len(p), nil
}

// Flush logs any buffered partial line.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() > 0 {
		w.emit(strings.TrimRight(w.buf.String(), "\r\n"))
		w.buf.Reset()
	}
}

func (w *logWriter) emit(line string) {
	if line == "" {
		return
	}
	w.logger.Debug(line)
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	limit int
	mu    sync.Mutex
	buf   []byte
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.limit; over > 0 {
		t.buf = t.buf[over:]
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return string(t.buf)
}

// resolveEnvironment applies overrides on top of the system environment.
func resolveEnvironment(sysEnv, overrides []string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	order := make([]string, 0, len(sysEnv)+len(overrides))

	set := func(entry string) {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			return
		}
		if _, exists := envMap[k]; !exists {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for _, entry := range sysEnv {
		set(entry)
	}
	for _, entry := range overrides {
		set(entry)
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}
