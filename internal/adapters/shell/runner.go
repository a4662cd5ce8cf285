// Package shell runs processes and captures their output.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"go.trai.ch/ecfg/internal/core/domain"
	"go.trai.ch/ecfg/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

var _ ports.CommandRunner = (*Runner)(nil)

// NewRunner creates a Runner that mirrors process output to logger at debug level.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run spawns the command, waits for it and returns both streams separately.
// A process that ran and exited non-zero is not an error; its status is
// reported in ExitCode. Errors are returned for spawn and I/O failures only.
func (r *Runner) Run(ctx context.Context, command domain.Command) (domain.CommandResult, error) {
	cmd := exec.CommandContext(ctx, command.Name, command.Args...) //nolint:gosec // commands come from the task file
	cmd.Dir = command.Dir
	if len(command.Stdin) > 0 {
		cmd.Stdin = bytes.NewReader(command.Stdin)
	}

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return domain.CommandResult{}, zerr.Wrap(err, "failed to open stdout pipe")
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return domain.CommandResult{}, zerr.Wrap(err, "failed to open stderr pipe")
	}

	r.logger.Debug("spawn " + strings.Join(cmd.Args, " ") + " in " + command.Dir)

	if err := cmd.Start(); err != nil {
		return domain.CommandResult{}, zerr.With(zerr.Wrap(err, "failed to start command"), "command", command.Name)
	}

	var stdout, stderr bytes.Buffer
	stdoutLog := &logWriter{logger: r.logger}
	stderrLog := &logWriter{logger: r.logger}

	// Both pipes are drained before Wait, otherwise a chatty process blocks.
	var g errgroup.Group
	g.Go(func() error {
		defer func() { _ = stdoutLog.Close() }()
		_, err := io.Copy(io.MultiWriter(&stdout, stdoutLog), stdoutPipe)
		return err
	})
	g.Go(func() error {
		defer func() { _ = stderrLog.Close() }()
		_, err := io.Copy(io.MultiWriter(&stderr, stderrLog), stderrPipe)
		return err
	})
	copyErr := g.Wait()
	waitErr := cmd.Wait()

	result := domain.CommandResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if waitErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, zerr.Wrap(ctxErr, "command interrupted")
		}
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return result, zerr.Wrap(waitErr, "failed to wait for command")
		}
		result.ExitCode = exitErr.ExitCode()
	}
	if copyErr != nil {
		return result, zerr.Wrap(copyErr, "failed to read command output")
	}

	return result, nil
}

// logWriter forwards complete lines to the logger.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Close flushes a trailing line without newline.
func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	w.logger.Debug(strings.TrimSuffix(string(line), "\r"))
}
