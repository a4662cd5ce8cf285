// Package app implements the application layer for ecfg.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/ecfg/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ecfg/internal/adapters/detector"  //nolint:depguard // Wired in app layer
	"go.trai.ch/ecfg/internal/adapters/linear"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ecfg/internal/adapters/pkgmgr"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ecfg/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/ecfg/internal/adapters/tui"       //nolint:depguard // Wired in app layer
	"go.trai.ch/ecfg/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/ecfg/internal/core/domain"
	"go.trai.ch/ecfg/internal/core/ports"
	"go.trai.ch/ecfg/internal/engine/executor"
	"go.trai.ch/ecfg/internal/engine/session"
	"go.trai.ch/zerr"
)

// PasswordPromptText is shown when the root password is needed.
const PasswordPromptText = "Enter root password: "

// App represents the main application logic.
type App struct {
	loader   ports.ConfigLoader
	detector ports.DistroDetector
	fs       ports.FileSystem
	runner   ports.CommandRunner
	prompt   ports.PasswordPrompt
	tracer   ports.Tracer
	logger   ports.Logger

	stdout     io.Writer
	stderr     io.Writer
	geteuid    func() int
	teaOptions []tea.ProgramOption
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	detector ports.DistroDetector,
	fs ports.FileSystem,
	runner ports.CommandRunner,
	prompt ports.PasswordPrompt,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		loader:   loader,
		detector: detector,
		fs:       fs,
		runner:   runner,
		prompt:   prompt,
		tracer:   tracer,
		logger:   log,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		geteuid:  os.Geteuid,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithOutput redirects the task output streams of linear runs.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithGeteuid replaces the effective user id lookup used to decide on sudo.
func (a *App) WithGeteuid(fn func() int) *App {
	a.geteuid = fn
	return a
}

// Options are the settings shared by every command.
type Options struct {
	// Dir is the provisioning directory holding the task file.
	Dir string
	// Packages enables package application.
	Packages bool
	// Strict fails a command that exits non-zero.
	Strict  bool
	Verbose bool
	JSON    bool
	// Output is "auto", "tui" or "linear".
	Output string
	// Distro overrides os-release detection when set.
	Distro string
}

// RunOptions selects the tasks of a non-interactive run. Names win over
// Index, which wins over All. Nothing selected means all tasks.
type RunOptions struct {
	Names []string
	// Index is the position of a single task to run when set.
	Index *int
	All   bool
}

// configurable is implemented by the logger adapter.
type configurable interface {
	SetOutput(w io.Writer)
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// environment is what one invocation builds from the task file.
type environment struct {
	cfg        *domain.Config
	dispatcher *session.Dispatcher
}

// Interactive opens the dashboard, or runs every task linearly when the
// terminal cannot host it.
func (a *App) Interactive(ctx context.Context, opts Options) error {
	requested, err := detector.ParseMode(opts.Output)
	if err != nil {
		return err
	}

	if detector.ResolveMode(detector.DetectEnvironment(), requested) != detector.ModeTUI {
		return a.Run(ctx, opts, RunOptions{All: true})
	}

	return a.dashboard(ctx, opts)
}

// Run executes the selected tasks without the dashboard, printing each
// log entry as it is produced.
func (a *App) Run(ctx context.Context, opts Options, run RunOptions) error {
	if _, err := detector.ParseMode(opts.Output); err != nil {
		return err
	}

	a.configureLogger(opts)

	shutdown := a.setupTelemetry()
	defer shutdown(ctx)

	env, err := a.prepare(opts)
	if err != nil {
		return err
	}

	printer := linear.NewPrinter(a.stdout, a.stderr)
	env.dispatcher.Observe(printer.Visit)

	switch {
	case len(run.Names) > 0:
		_, err = env.dispatcher.ExecuteNames(ctx, run.Names)
	case run.Index != nil && !run.All:
		_, err = env.dispatcher.ExecuteByIndex(ctx, *run.Index)
	default:
		_, err = env.dispatcher.ExecuteAll(ctx)
	}

	var stepErr *domain.StepError
	switch {
	case err == nil:
		printer.Summary()
		return nil
	case errors.As(err, &stepErr):
		printer.Summary()
		return errors.Join(domain.ErrTaskExecutionFailed, err)
	default:
		return err
	}
}

// List prints the tasks of the task file with their index.
func (a *App) List(_ context.Context, opts Options, w io.Writer) error {
	a.configureLogger(opts)

	cfg, err := a.loader.Load(dirOrDefault(opts.Dir))
	if err != nil {
		return err
	}

	for i, name := range cfg.TaskNames() {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", i, name); err != nil {
			return zerr.Wrap(err, "failed to write task list")
		}
	}
	return nil
}

// Distro prints the host distribution ecfg applies packages for.
func (a *App) Distro(_ context.Context, opts Options, w io.Writer) error {
	a.configureLogger(opts)

	d, err := a.resolveDistro(opts)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, d.String()); err != nil {
		return zerr.Wrap(err, "failed to write distro")
	}
	return nil
}

func (a *App) dashboard(ctx context.Context, opts Options) error {
	a.configureLogger(opts)

	closeLog, err := a.redirectLogs()
	if err != nil {
		return err
	}
	defer closeLog()

	shutdown := a.setupTelemetry()
	defer shutdown(ctx)

	env, err := a.prepare(opts)
	if err != nil {
		return err
	}

	s := session.New(env.dispatcher, session.DefaultScrollback)
	model := tui.NewModel(ctx, s, a.stderr)
	teaOpts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, a.teaOptions...)
	renderer := tui.NewRenderer(model, teaOpts...)

	if err := renderer.Start(ctx); err != nil {
		return err
	}

	stop := a.watch(ctx, opts, env.cfg, renderer)
	defer stop()

	return renderer.Wait()
}

// watch reloads the task list into the dashboard whenever the task file
// content changes. A watcher that cannot start only disables hot reload.
func (a *App) watch(ctx context.Context, opts Options, cfg *domain.Config, renderer *tui.Renderer) func() {
	var digest atomic.Uint64
	digest.Store(cfg.Digest)

	w, err := watcher.New(a.logger, watcher.DefaultDebounceWindow, config.FileNames, func([]string) {
		reloaded, err := a.loader.Load(dirOrDefault(opts.Dir))
		if err != nil {
			renderer.Send(tui.MsgReloadFailed{Err: err})
			return
		}
		if digest.Swap(reloaded.Digest) == reloaded.Digest {
			return
		}
		a.logger.Info(fmt.Sprintf("reloaded %d task(s) from %s", len(reloaded.Tasks), reloaded.Source))
		renderer.Send(tui.MsgTasksReloaded{Tasks: reloaded.Tasks})
	})
	if err != nil {
		a.logger.Warn("hot reload disabled: " + err.Error())
		return func() {}
	}

	if err := w.Start(ctx, filepath.Dir(cfg.Source)); err != nil {
		_ = w.Stop()
		a.logger.Warn("hot reload disabled: " + err.Error())
		return func() {}
	}

	return func() { _ = w.Stop() }
}

// prepare loads the task file and builds the executor and dispatcher for
// one invocation.
func (a *App) prepare(opts Options) (*environment, error) {
	cfg, err := a.loader.Load(dirOrDefault(opts.Dir))
	if err != nil {
		return nil, err
	}
	a.logger.Debug(fmt.Sprintf("loaded %d task(s) from %s", len(cfg.Tasks), cfg.Source))

	d, err := a.resolveDistro(opts)
	if err != nil {
		return nil, err
	}

	manager, err := a.packageManager(cfg, d, opts)
	if err != nil {
		return nil, err
	}

	exec := executor.New(
		executor.Config{Distro: d, Root: cfg.Root, StrictExit: opts.Strict},
		a.fs,
		a.runner,
		manager,
		a.tracer,
		a.logger,
	)

	return &environment{
		cfg:        cfg,
		dispatcher: session.NewDispatcher(cfg.Tasks, exec),
	}, nil
}

// packageManager asks for the root password only when a package entry
// will actually run and the process is not root.
func (a *App) packageManager(cfg *domain.Config, d domain.Distro, opts Options) (*pkgmgr.Manager, error) {
	driver := pkgmgr.Lookup(d)
	pkgOpts := pkgmgr.Options{Enabled: opts.Packages}

	if opts.Packages && !driver.Inert() && cfg.NeedsPackages(d) && a.geteuid() != 0 {
		password, err := a.prompt.ReadPassword(PasswordPromptText)
		if err != nil {
			return nil, err
		}
		pkgOpts.Sudo = true
		pkgOpts.Password = password
	}

	return pkgmgr.NewManager(driver, a.runner, a.logger, pkgOpts), nil
}

func (a *App) resolveDistro(opts Options) (domain.Distro, error) {
	if opts.Distro != "" {
		return domain.ParseDistro(opts.Distro)
	}
	return a.detector.Detect(), nil
}

func (a *App) configureLogger(opts Options) {
	if l, ok := a.logger.(configurable); ok {
		l.SetJSON(opts.JSON)
		l.SetVerbose(opts.Verbose)
	}
}

// redirectLogs points the logger at the XDG state log file while the
// dashboard owns the terminal.
func (a *App) redirectLogs() (func(), error) {
	l, ok := a.logger.(configurable)
	if !ok {
		return func() {}, nil
	}

	path, err := xdg.StateFile(filepath.Join("ecfg", "ecfg.log"))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve log file")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open log file"), "path", path)
	}

	l.SetOutput(f)
	return func() {
		l.SetOutput(nil)
		_ = f.Close()
	}, nil
}

func (a *App) setupTelemetry() func(context.Context) {
	tp := telemetry.Setup(telemetry.NewBridge(a.logger))
	return func(ctx context.Context) {
		_ = tp.Shutdown(ctx)
	}
}

func dirOrDefault(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}
