package pkgmgr

import (
	"context"
	"strings"

	"go.trai.ch/ecfg/internal/core/domain"
	"go.trai.ch/ecfg/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options controls whether and how a Manager invokes its driver.
type Options struct {
	// Enabled allows the package manager to run. A disabled manager reports
	// every batch as a failure.
	Enabled bool
	// Sudo wraps the invocation in "sudo -S" and feeds Password on stdin.
	Sudo     bool
	Password string
}

// Manager implements ports.PackageManager for a single driver.
type Manager struct {
	driver Driver
	runner ports.CommandRunner
	logger ports.Logger
	opts   Options
}

var _ ports.PackageManager = (*Manager)(nil)

// NewManager creates a Manager running driver through runner.
func NewManager(driver Driver, runner ports.CommandRunner, logger ports.Logger, opts Options) *Manager {
	return &Manager{
		driver: driver,
		runner: runner,
		logger: logger,
		opts:   opts,
	}
}

// Install installs names in one invocation.
func (m *Manager) Install(ctx context.Context, names []string) (domain.LogEntry, error) {
	return m.apply(ctx, m.driver.InstallArgs, names)
}

// Remove removes names in one invocation.
func (m *Manager) Remove(ctx context.Context, names []string) (domain.LogEntry, error) {
	return m.apply(ctx, m.driver.RemoveArgs, names)
}

func (m *Manager) apply(ctx context.Context, args, names []string) (domain.LogEntry, error) {
	if len(names) == 0 {
		return domain.LogEntry{Success: true}, nil
	}

	if m.driver.Inert() {
		label := domain.LabelPackage + " no package manager for distro " + m.driver.Distro.String()
		return domain.LogEntry{Label: label, Stderr: []byte(label + "\n")},
			zerr.With(zerr.Wrap(domain.ErrNoPackageDriver, "cannot apply packages"), "distro", m.driver.Distro.String())
	}

	argv := make([]string, 0, len(args)+len(names))
	argv = append(argv, args...)
	argv = append(argv, names...)
	label := domain.LabelPackage + " " + m.driver.Executable + " " + strings.Join(argv, " ")

	if !m.opts.Enabled {
		m.logger.Warn("package application is disabled, skipping " + m.driver.Executable)
		return domain.LogEntry{
				Label:  label,
				Stderr: []byte(label + ": skipped, package application is disabled\n"),
			},
			zerr.With(zerr.Wrap(domain.ErrPackagesDisabled, "refusing to run package manager"), "executable", m.driver.Executable)
	}

	cmd := m.command(argv)
	m.logger.Debug("running " + label)

	res, err := m.runner.Run(ctx, cmd)
	if err != nil {
		return domain.LogEntry{
				Label:  label,
				Stdout: domain.Marked(label, res.Stdout),
				Stderr: []byte(label + ": " + err.Error() + "\n"),
			},
			zerr.With(zerr.Wrap(err, "failed to run package manager"), "executable", m.driver.Executable)
	}

	entry := domain.LogEntry{
		Label:    label,
		Success:  res.ExitCode == 0,
		Stdout:   domain.Marked(label, res.Stdout),
		ExitCode: res.ExitCode,
	}
	if len(res.Stderr) > 0 {
		entry.Stderr = domain.Marked(label, res.Stderr)
	}

	if res.ExitCode != 0 {
		return entry, zerr.With(
			zerr.With(zerr.Wrap(domain.ErrPackageCommandFailed, "package manager exited with non-zero status"),
				"executable", m.driver.Executable),
			"exit_code", res.ExitCode,
		)
	}
	return entry, nil
}

func (m *Manager) command(argv []string) domain.Command {
	if !m.opts.Sudo {
		return domain.Command{
			Name:  m.driver.Executable,
			Args:  argv,
			Stdin: m.driver.ConfirmInput,
		}
	}

	stdin := make([]byte, 0, len(m.opts.Password)+1+len(m.driver.ConfirmInput))
	stdin = append(stdin, m.opts.Password...)
	stdin = append(stdin, '\n')
	stdin = append(stdin, m.driver.ConfirmInput...)

	return domain.Command{
		Name:  "sudo",
		Args:  append([]string{"-S", "-p", "", m.driver.Executable}, argv...),
		Stdin: stdin,
	}
}
