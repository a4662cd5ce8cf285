package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ecfg/internal/adapters/config"
	"go.trai.ch/ecfg/internal/core/domain"
	"go.trai.ch/ecfg/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const home = "/home/tester"

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	l := config.NewLoader(log)
	l.HomeDir = func() (string, error) { return home, nil }
	return l
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const tomlTasks = `
[linux]
[[linux.tasks]]
name = "vim"
path = "editors/vim"
commands = ["echo hello", "make install"]
slink = [["vimrc", "~/.vimrc"], ["/abs/colors", ".local/colors"]]

[[linux.tasks.pkg]]
distri = "Arch"
install = ["vim"]
remove = ["nano"]

[[linux.tasks.pkg]]
distri = "opensuse"
install = ["vim-data"]

[[linux.tasks]]
name = "zsh"
slink = [["zshrc", "~/.zshrc"]]
`

func TestLoader_LoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tasks.toml", tomlTasks)

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Root)
	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, xxhash.Sum64String(tomlTasks), cfg.Digest)
	require.Equal(t, []string{"vim", "zsh"}, cfg.TaskNames())

	vim := cfg.Tasks[0]
	assert.Equal(t, "editors/vim", vim.Path)
	assert.Equal(t, []string{"echo hello", "make install"}, vim.Commands)
	assert.Equal(t, []domain.Symlink{
		{Source: filepath.Join(dir, "editors/vim/vimrc"), Destination: filepath.Join(home, ".vimrc")},
		{Source: "/abs/colors", Destination: filepath.Join(dir, ".local/colors")},
	}, vim.Symlinks)
	assert.Equal(t, []domain.Package{
		{Distro: domain.DistroArch, Install: []string{"vim"}, Remove: []string{"nano"}},
		{Distro: domain.DistroOpenSUSE, Install: []string{"vim-data"}},
	}, vim.Packages)

	zsh := cfg.Tasks[1]
	assert.Empty(t, zsh.Path)
	assert.Equal(t, filepath.Join(dir, "zshrc"), zsh.Symlinks[0].Source)
}

func TestLoader_LoadYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tasks.yml", `
linux:
  tasks:
    - name: git
      commands: ["git --version"]
      slink:
        - [gitconfig, ~/.gitconfig]
      pkg:
        - distri: Debian
          install: [git]
`)

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)
	require.Len(t, cfg.Tasks, 1)

	git := cfg.Tasks[0]
	assert.Equal(t, filepath.Join(home, ".gitconfig"), git.Symlinks[0].Destination)
	assert.Equal(t, domain.DistroDebian, git.Packages[0].Distro)
}

func TestLoader_PrefersTOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tasks.yaml", "linux:\n  tasks:\n    - name: from-yaml\n")
	writeFile(t, dir, "tasks.toml", "[[linux.tasks]]\nname = \"from-toml\"\n")

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"from-toml"}, cfg.TaskNames())
}

func TestLoader_ExpandsHomeInDirectory(t *testing.T) {
	homeDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(homeDir, "cfg"), 0o755))
	writeFile(t, filepath.Join(homeDir, "cfg"), "tasks.toml", "[[linux.tasks]]\nname = \"a\"\n")

	l := newLoader(t)
	l.HomeDir = func() (string, error) { return homeDir, nil }

	cfg, err := l.Load("~/cfg")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, "cfg"), cfg.Root)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{"empty name", "tasks.toml", "[[linux.tasks]]\nname = \" \"\n", domain.ErrInvalidTaskName},
		{"duplicate name", "tasks.toml", "[[linux.tasks]]\nname = \"a\"\n[[linux.tasks]]\nname = \"a\"\n", domain.ErrDuplicateTaskName},
		{"slink with one element", "tasks.toml", "[[linux.tasks]]\nname = \"a\"\nslink = [[\"only\"]]\n", domain.ErrInvalidSymlink},
		{"slink with empty source", "tasks.toml", "[[linux.tasks]]\nname = \"a\"\nslink = [[\"\", \"b\"]]\n", domain.ErrInvalidSymlink},
		{"unknown distro", "tasks.toml", "[[linux.tasks]]\nname = \"a\"\n[[linux.tasks.pkg]]\ndistri = \"Gentoo\"\n", domain.ErrUnknownDistro},
		{"unknown as package target", "tasks.toml", "[[linux.tasks]]\nname = \"a\"\n[[linux.tasks.pkg]]\ndistri = \"Unknown\"\ninstall = [\"vim\"]\n", domain.ErrUnknownDistro},
		{"invalid toml", "tasks.toml", "[[linux.tasks]\nname =", domain.ErrConfigParseFailed},
		{"invalid yaml", "tasks.yaml", "linux: [unclosed", domain.ErrConfigParseFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, tt.file, tt.content)

			_, err := newLoader(t).Load(dir)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoader_NotFound(t *testing.T) {
	_, err := newLoader(t).Load(t.TempDir())
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestLoader_HomeNotFound(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tasks.toml", "[[linux.tasks]]\nname = \"a\"\nslink = [[\"a\", \"~/a\"]]\n")

	l := newLoader(t)
	l.HomeDir = func() (string, error) { return "", errors.New("$HOME is not defined") }

	_, err := l.Load(dir)
	require.ErrorIs(t, err, domain.ErrHomeNotFound)
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "tasks.toml"), 0o755))
	path := writeFile(t, dir, "tasks.yaml", "")

	found, err := config.Find(dir)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}
