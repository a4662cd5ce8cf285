package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ecfg/internal/adapters/telemetry"
	"go.trai.ch/ecfg/internal/app"
	"go.trai.ch/ecfg/internal/core/domain"
	"go.trai.ch/ecfg/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app      *app.App
	loader   *mocks.MockConfigLoader
	detector *mocks.MockDistroDetector
	fs       *mocks.MockFileSystem
	runner   *mocks.MockCommandRunner
	prompt   *mocks.MockPasswordPrompt
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
}

func newFixture(t *testing.T, euid int) *fixture {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	f := &fixture{
		loader:   mocks.NewMockConfigLoader(ctrl),
		detector: mocks.NewMockDistroDetector(ctrl),
		fs:       mocks.NewMockFileSystem(ctrl),
		runner:   mocks.NewMockCommandRunner(ctrl),
		prompt:   mocks.NewMockPasswordPrompt(ctrl),
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
	}

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	f.app = app.New(f.loader, f.detector, f.fs, f.runner, f.prompt, telemetry.NewNoOpTracer(), log).
		WithOutput(f.stdout, f.stderr).
		WithGeteuid(func() int { return euid })
	return f
}

func shellTasks() *domain.Config {
	return &domain.Config{
		Root:   "/cfg",
		Source: "/cfg/tasks.toml",
		Tasks: []domain.Task{
			{Name: "a", Commands: []string{"echo a"}},
			{Name: "b", Commands: []string{"echo b"}},
		},
	}
}

func packageTasks() *domain.Config {
	return &domain.Config{
		Root:   "/cfg",
		Source: "/cfg/tasks.toml",
		Tasks: []domain.Task{
			{Name: "tools", Packages: []domain.Package{{Distro: domain.DistroArch, Install: []string{"vim"}}}},
		},
	}
}

func ok(out string) domain.CommandResult {
	return domain.CommandResult{Stdout: []byte(out)}
}

func TestApp_RunAll(t *testing.T) {
	f := newFixture(t, 1000)
	f.loader.EXPECT().Load(".").Return(shellTasks(), nil)
	f.detector.EXPECT().Detect().Return(domain.DistroArch)
	f.runner.EXPECT().Run(gomock.Any(), domain.ShellCommand("echo a", "/cfg/a")).Return(ok("a\n"), nil)
	f.runner.EXPECT().Run(gomock.Any(), domain.ShellCommand("echo b", "/cfg/b")).Return(ok("b\n"), nil)

	err := f.app.Run(context.Background(), app.Options{}, app.RunOptions{})

	require.NoError(t, err)
	assert.Equal(t, "[exec] echo a\na\n[exec] echo b\nb\n", f.stdout.String())
	assert.Equal(t, "✓ 2 task(s) completed\n", f.stderr.String())
}

func TestApp_RunByName(t *testing.T) {
	f := newFixture(t, 1000)
	f.loader.EXPECT().Load("/work").Return(shellTasks(), nil)
	f.detector.EXPECT().Detect().Return(domain.DistroArch)
	f.runner.EXPECT().Run(gomock.Any(), domain.ShellCommand("echo b", "/cfg/b")).Return(ok("b\n"), nil)

	err := f.app.Run(context.Background(), app.Options{Dir: "/work"}, app.RunOptions{Names: []string{"b"}})

	require.NoError(t, err)
	assert.Equal(t, "[exec] echo b\nb\n", f.stdout.String())
}

func TestApp_RunByIndex(t *testing.T) {
	f := newFixture(t, 1000)
	f.loader.EXPECT().Load(".").Return(shellTasks(), nil)
	f.detector.EXPECT().Detect().Return(domain.DistroArch)
	f.runner.EXPECT().Run(gomock.Any(), domain.ShellCommand("echo b", "/cfg/b")).Return(ok("b\n"), nil)

	index := 1
	err := f.app.Run(context.Background(), app.Options{}, app.RunOptions{Index: &index})

	require.NoError(t, err)
	assert.Equal(t, "✓ 1 task(s) completed\n", f.stderr.String())
}

func TestApp_RunUnknownTask(t *testing.T) {
	f := newFixture(t, 1000)
	f.loader.EXPECT().Load(".").Return(shellTasks(), nil)
	f.detector.EXPECT().Detect().Return(domain.DistroArch)

	err := f.app.Run(context.Background(), app.Options{}, app.RunOptions{Names: []string{"a", "missing"}})

	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.NotErrorIs(t, err, domain.ErrTaskExecutionFailed)
	assert.Empty(t, f.stdout.String(), "nothing runs when a name does not resolve")
}

func TestApp_RunStrictStopsAtFailure(t *testing.T) {
	f := newFixture(t, 1000)
	f.loader.EXPECT().Load(".").Return(shellTasks(), nil)
	f.detector.EXPECT().Detect().Return(domain.DistroArch)
	f.runner.EXPECT().Run(gomock.Any(), domain.ShellCommand("echo a", "/cfg/a")).
		Return(domain.CommandResult{ExitCode: 3, Stderr: []byte("nope\n")}, nil)

	err := f.app.Run(context.Background(), app.Options{Strict: true}, app.RunOptions{All: true})

	require.ErrorIs(t, err, domain.ErrTaskExecutionFailed)
	require.ErrorIs(t, err, domain.ErrNonZeroExit)
	assert.Contains(t, f.stderr.String(), "nope\n")
	assert.Contains(t, f.stderr.String(), "✗ a failed\n")
}

func TestApp_RunLoaderError(t *testing.T) {
	f := newFixture(t, 1000)
	f.loader.EXPECT().Load(".").Return(nil, domain.ErrConfigNotFound)

	err := f.app.Run(context.Background(), app.Options{}, app.RunOptions{})

	require.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestApp_RunInvalidOutputMode(t *testing.T) {
	f := newFixture(t, 1000)

	err := f.app.Run(context.Background(), app.Options{Output: "fancy"}, app.RunOptions{})

	require.ErrorIs(t, err, domain.ErrInvalidOutputMode)
}

func TestApp_PackagesDisabledFailClosed(t *testing.T) {
	f := newFixture(t, 1000)
	f.loader.EXPECT().Load(".").Return(packageTasks(), nil)
	f.detector.EXPECT().Detect().Return(domain.DistroArch)

	err := f.app.Run(context.Background(), app.Options{}, app.RunOptions{})

	require.ErrorIs(t, err, domain.ErrTaskExecutionFailed)
	require.ErrorIs(t, err, domain.ErrPackagesDisabled)
	assert.Contains(t, f.stderr.String(), "skipped, package application is disabled")
}

func TestApp_PackagesUseSudoWhenNotRoot(t *testing.T) {
	f := newFixture(t, 1000)
	f.loader.EXPECT().Load(".").Return(packageTasks(), nil)
	f.detector.EXPECT().Detect().Return(domain.DistroArch)
	f.prompt.EXPECT().ReadPassword(app.PasswordPromptText).Return("secret", nil)
	f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd domain.Command) (domain.CommandResult, error) {
			assert.Equal(t, "sudo", cmd.Name)
			assert.Equal(t, []string{"-S", "-p", "", "pacman", "-S", "--needed", "vim"}, cmd.Args)
			assert.Equal(t, "secret\n\n", string(cmd.Stdin))
			return ok("installed\n"), nil
		})

	err := f.app.Run(context.Background(), app.Options{Packages: true}, app.RunOptions{})

	require.NoError(t, err)
	assert.Contains(t, f.stdout.String(), "installed\n")
}

func TestApp_PackagesAsRootSkipPrompt(t *testing.T) {
	f := newFixture(t, 0)
	f.loader.EXPECT().Load(".").Return(packageTasks(), nil)
	f.detector.EXPECT().Detect().Return(domain.DistroArch)
	f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd domain.Command) (domain.CommandResult, error) {
			assert.Equal(t, "pacman", cmd.Name)
			return ok(""), nil
		})

	err := f.app.Run(context.Background(), app.Options{Packages: true}, app.RunOptions{})

	require.NoError(t, err)
}

func TestApp_PackagesForOtherDistroSkipPrompt(t *testing.T) {
	f := newFixture(t, 1000)
	f.loader.EXPECT().Load(".").Return(packageTasks(), nil)

	err := f.app.Run(context.Background(), app.Options{Packages: true, Distro: "fedora"}, app.RunOptions{})

	require.NoError(t, err)
	assert.Equal(t, "✓ 1 task(s) completed\n", f.stderr.String())
}

func TestApp_PromptFailure(t *testing.T) {
	f := newFixture(t, 1000)
	f.loader.EXPECT().Load(".").Return(packageTasks(), nil)
	f.detector.EXPECT().Detect().Return(domain.DistroArch)
	f.prompt.EXPECT().ReadPassword(gomock.Any()).Return("", domain.ErrPromptFailed)

	err := f.app.Run(context.Background(), app.Options{Packages: true}, app.RunOptions{})

	require.ErrorIs(t, err, domain.ErrPromptFailed)
}

func TestApp_List(t *testing.T) {
	f := newFixture(t, 1000)
	f.loader.EXPECT().Load(".").Return(shellTasks(), nil)

	var out bytes.Buffer
	require.NoError(t, f.app.List(context.Background(), app.Options{}, &out))

	assert.Equal(t, "0\ta\n1\tb\n", out.String())
}

func TestApp_Distro(t *testing.T) {
	t.Run("detected", func(t *testing.T) {
		f := newFixture(t, 1000)
		f.detector.EXPECT().Detect().Return(domain.DistroOpenSUSE)

		var out bytes.Buffer
		require.NoError(t, f.app.Distro(context.Background(), app.Options{}, &out))
		assert.Equal(t, "OpenSUSE\n", out.String())
	})

	t.Run("override", func(t *testing.T) {
		f := newFixture(t, 1000)

		var out bytes.Buffer
		require.NoError(t, f.app.Distro(context.Background(), app.Options{Distro: "debian"}, &out))
		assert.Equal(t, "Debian\n", out.String())
	})

	t.Run("invalid override", func(t *testing.T) {
		f := newFixture(t, 1000)

		err := f.app.Distro(context.Background(), app.Options{Distro: "gentoo"}, io.Discard)
		require.ErrorIs(t, err, domain.ErrUnknownDistro)
	})
}

func TestApp_InteractiveLinearFallback(t *testing.T) {
	f := newFixture(t, 1000)
	f.loader.EXPECT().Load(".").Return(shellTasks(), nil)
	f.detector.EXPECT().Detect().Return(domain.DistroArch)
	f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(ok(""), nil).Times(2)

	err := f.app.Interactive(context.Background(), app.Options{Output: "linear"})

	require.NoError(t, err)
	assert.Equal(t, "✓ 2 task(s) completed\n", f.stderr.String())
}

func TestApp_InteractiveDashboard(t *testing.T) {
	f := newFixture(t, 1000)
	dir := t.TempDir()
	cfg := shellTasks()
	cfg.Root = dir
	cfg.Source = dir + "/tasks.toml"

	f.loader.EXPECT().Load(".").Return(cfg, nil).MinTimes(1)
	f.detector.EXPECT().Detect().Return(domain.DistroArch)
	f.app.WithTeaOptions(
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)

	err := f.app.Interactive(t.Context(), app.Options{Output: "tui"})

	require.NoError(t, err)
}

func TestApp_InteractiveInvalidOutput(t *testing.T) {
	f := newFixture(t, 1000)

	err := f.app.Interactive(context.Background(), app.Options{Output: "nope"})

	require.True(t, errors.Is(err, domain.ErrInvalidOutputMode))
}
