// Package executor applies a task to the host: symlinks, then commands, then packages.
package executor

import (
	"context"
	"errors"
	iofs "io/fs"
	"path/filepath"
	"strconv"

	"go.trai.ch/ecfg/internal/core/domain"
	"go.trai.ch/ecfg/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultMaxSymlinkAttempts bounds the symlink self-heal loop.
const DefaultMaxSymlinkAttempts = 8

// Config holds the per-process settings of an Executor.
type Config struct {
	// Distro is the detected host distribution. Package entries for other
	// distributions are skipped.
	Distro domain.Distro
	// Root is the absolute provisioning directory.
	Root string
	// MaxSymlinkAttempts defaults to DefaultMaxSymlinkAttempts when zero.
	MaxSymlinkAttempts int
	// StrictExit fails a command step that exits non-zero.
	StrictExit bool
}

// Executor implements ports.TaskExecutor.
type Executor struct {
	cfg      Config
	fs       ports.FileSystem
	runner   ports.CommandRunner
	packages ports.PackageManager
	tracer   ports.Tracer
	logger   ports.Logger
}

var _ ports.TaskExecutor = (*Executor)(nil)

// New creates an Executor.
func New(
	cfg Config,
	fs ports.FileSystem,
	runner ports.CommandRunner,
	packages ports.PackageManager,
	tracer ports.Tracer,
	logger ports.Logger,
) *Executor {
	if cfg.MaxSymlinkAttempts <= 0 {
		cfg.MaxSymlinkAttempts = DefaultMaxSymlinkAttempts
	}
	return &Executor{
		cfg:      cfg,
		fs:       fs,
		runner:   runner,
		packages: packages,
		tracer:   tracer,
		logger:   logger,
	}
}

// Execute runs every step of task in phase order. The first failing step
// aborts the task; the entries gathered so far are returned with a
// *domain.StepError. Nothing is rolled back.
func (e *Executor) Execute(ctx context.Context, task *domain.Task) (domain.Log, error) {
	ctx, span := e.tracer.Start(ctx, "task/"+task.Name)
	defer span.End()

	run := &taskRun{e: e, task: task}

	err := run.symlinks(ctx)
	if err == nil {
		err = run.commands(ctx)
	}
	if err == nil {
		err = run.packages(ctx)
	}

	span.SetAttribute("ecfg.steps", len(run.log))
	if err != nil {
		span.RecordError(err)
		return run.log, err
	}

	e.logger.Debug("task " + task.Name + ": applied " + strconv.Itoa(run.applied) + " step(s)")
	return run.log, nil
}

// taskRun accumulates the log of one task invocation.
type taskRun struct {
	e       *Executor
	task    *domain.Task
	log     domain.Log
	applied int
}

func (r *taskRun) succeed(entry domain.LogEntry) {
	entry.Success = true
	r.log = append(r.log, entry)
	r.applied++
}

func (r *taskRun) fail(entry domain.LogEntry, kind, cause error) error {
	entry.Success = false
	r.log = append(r.log, entry)
	return &domain.StepError{
		Task:    r.task.Name,
		Step:    entry.Label,
		Applied: r.applied,
		Kind:    kind,
		Err:     cause,
	}
}

func (r *taskRun) step(ctx context.Context, name, label string) (context.Context, ports.Span) {
	ctx, span := r.e.tracer.Start(ctx, name)
	span.SetAttribute("ecfg.step", label)
	return ctx, span
}

func (r *taskRun) symlinks(ctx context.Context) error {
	for _, link := range r.task.Symlinks {
		label := domain.LabelSymlink + " " + link.Source + " -> " + link.Destination
		_, span := r.step(ctx, "symlink", label)

		if err := r.e.placeSymlink(link.Source, link.Destination); err != nil {
			span.RecordError(err)
			span.End()
			return r.fail(domain.LogEntry{
				Label:  label,
				Stderr: []byte(label + ": " + err.Error() + "\n"),
			}, domain.ErrIOFailure, err)
		}

		span.End()
		r.succeed(domain.LogEntry{Label: label, Stdout: []byte(label + "\n")})
	}
	return nil
}

// placeSymlink makes dst a link to src. An existing link to src is left
// alone. Otherwise an existing dst is removed and a missing parent created,
// retrying until the link is placed or the attempts run out.
func (e *Executor) placeSymlink(src, dst string) error {
	if target, err := e.fs.Readlink(dst); err == nil && target == src {
		return nil
	}

	for range e.cfg.MaxSymlinkAttempts {
		err := e.fs.Symlink(src, dst)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, iofs.ErrExist):
			if err := e.clear(dst); err != nil {
				return err
			}
		case errors.Is(err, iofs.ErrNotExist):
			if err := e.fs.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
				return err
			}
		default:
			return err
		}
	}

	return zerr.With(
		zerr.Wrap(domain.ErrSymlinkRetriesExhausted, "could not place symlink"),
		"attempts", e.cfg.MaxSymlinkAttempts,
	)
}

func (e *Executor) clear(path string) error {
	info, err := e.fs.Lstat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil
		}
		return err
	}

	e.logger.Debug("replacing " + path)
	if info.IsDir() {
		return e.fs.RemoveAll(path)
	}
	return e.fs.Remove(path)
}

func (r *taskRun) workDir() string {
	dir := r.task.Dir()
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(r.e.cfg.Root, dir)
}

func (r *taskRun) commands(ctx context.Context) error {
	dir := r.workDir()
	for _, line := range r.task.Commands {
		if err := r.command(ctx, line, dir); err != nil {
			return err
		}
	}
	return nil
}

func (r *taskRun) command(ctx context.Context, line, dir string) error {
	label := domain.LabelExec + " " + line
	ctx, span := r.step(ctx, "exec", label)
	defer span.End()

	res, err := r.e.runner.Run(ctx, domain.ShellCommand(line, dir))
	if err != nil {
		span.RecordError(err)
		return r.fail(domain.LogEntry{
			Label:  label,
			Stdout: domain.Marked(label, nil),
			Stderr: domain.Marked(label, []byte(err.Error()+"\n")),
		}, domain.ErrIOFailure, err)
	}

	entry := domain.LogEntry{
		Label:    label,
		Stdout:   domain.Marked(label, res.Stdout),
		ExitCode: res.ExitCode,
	}
	if len(res.Stderr) > 0 {
		entry.Stderr = domain.Marked(label, res.Stderr)
	}
	span.SetAttribute("ecfg.exit_code", res.ExitCode)

	if res.ExitCode != 0 {
		if r.e.cfg.StrictExit {
			err := zerr.With(zerr.Wrap(domain.ErrNonZeroExit, "command failed"), "exit_code", res.ExitCode)
			span.RecordError(err)
			return r.fail(entry, domain.ErrCommandFailed, err)
		}
		r.e.logger.Debug(label + " exited with status " + strconv.Itoa(res.ExitCode))
	}

	r.succeed(entry)
	return nil
}

func (r *taskRun) packages(ctx context.Context) error {
	var install, remove []string
	for _, pkg := range r.task.PackagesFor(r.e.cfg.Distro) {
		install = append(install, pkg.Install...)
		remove = append(remove, pkg.Remove...)
	}

	if err := r.packageBatch(ctx, install, r.e.packages.Install); err != nil {
		return err
	}
	return r.packageBatch(ctx, remove, r.e.packages.Remove)
}

func (r *taskRun) packageBatch(
	ctx context.Context,
	names []string,
	apply func(context.Context, []string) (domain.LogEntry, error),
) error {
	if len(names) == 0 {
		return nil
	}

	ctx, span := r.step(ctx, "pkg", domain.LabelPackage)
	defer span.End()

	entry, err := apply(ctx, names)
	if err != nil {
		span.RecordError(err)
		return r.fail(entry, domain.ErrPackageFailure, err)
	}

	r.succeed(entry)
	return nil
}
