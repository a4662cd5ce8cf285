// Package config loads the task file of a provisioning directory.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/ecfg/internal/core/domain"
	"go.trai.ch/ecfg/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileNames are the task file names looked up in a provisioning directory, in order.
var FileNames = []string{"tasks.toml", "tasks.yaml", "tasks.yml"}

// Loader implements ports.ConfigLoader.
type Loader struct {
	Logger ports.Logger
	// HomeDir resolves "~/". It defaults to os.UserHomeDir.
	HomeDir func() (string, error)
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, HomeDir: os.UserHomeDir}
}

// Load reads the task file in dir. dir may start with "~/".
func (l *Loader) Load(dir string) (*domain.Config, error) {
	root, err := l.resolveRoot(dir)
	if err != nil {
		return nil, err
	}

	path, err := Find(root)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is the operator's task file
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigReadFailed, err), "cannot load tasks"), "path", path)
	}

	var file File
	if err := unmarshal(path, data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigParseFailed, err), "cannot load tasks"), "path", path)
	}

	tasks, err := l.buildTasks(root, file.Linux.Tasks)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.Logger.Debug("loaded " + strconv.Itoa(len(tasks)) + " task(s) from " + path)

	return &domain.Config{
		Root:   root,
		Source: path,
		Digest: xxhash.Sum64(data),
		Tasks:  tasks,
	}, nil
}

// Find returns the path of the task file in dir.
func Find(dir string) (string, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "no task file"), "dir", dir)
}

func unmarshal(path string, data []byte, file *File) error {
	if filepath.Ext(path) == ".toml" {
		return toml.Unmarshal(data, file)
	}
	return yaml.Unmarshal(data, file)
}

func (l *Loader) resolveRoot(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	dir, err := l.expandHome(dir)
	if err != nil {
		return "", err
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "cannot resolve directory"), "dir", dir)
	}
	return root, nil
}

func (l *Loader) expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := l.HomeDir()
	if err != nil || home == "" {
		return "", zerr.Wrap(errors.Join(domain.ErrHomeNotFound, err), "cannot expand "+path)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func (l *Loader) buildTasks(root string, dtos []TaskDTO) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0, len(dtos))
	seen := make(map[string]bool, len(dtos))

	for i := range dtos {
		dto := &dtos[i]
		name := strings.TrimSpace(dto.Name)
		if name == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidTaskName, "task name is empty"), "index", i)
		}
		if seen[name] {
			return nil, zerr.With(zerr.Wrap(domain.ErrDuplicateTaskName, "task names must be unique"), "task", name)
		}
		seen[name] = true

		task, err := l.buildTask(root, name, dto)
		if err != nil {
			return nil, zerr.With(err, "task", name)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (l *Loader) buildTask(root, name string, dto *TaskDTO) (domain.Task, error) {
	task := domain.Task{
		Name:     name,
		Path:     dto.Path,
		Commands: dto.Commands,
	}

	sourceDir := root
	if dto.Path != "" {
		sourceDir = filepath.Join(root, dto.Path)
	}

	for _, pair := range dto.Slink {
		if len(pair) != 2 || strings.TrimSpace(pair[0]) == "" || strings.TrimSpace(pair[1]) == "" {
			return domain.Task{}, zerr.With(zerr.Wrap(domain.ErrInvalidSymlink, "malformed slink entry"),
				"entry", "["+strings.Join(pair, ", ")+"]")
		}

		src, err := l.resolve(sourceDir, pair[0])
		if err != nil {
			return domain.Task{}, err
		}
		dst, err := l.resolve(root, pair[1])
		if err != nil {
			return domain.Task{}, err
		}
		task.Symlinks = append(task.Symlinks, domain.Symlink{Source: src, Destination: dst})
	}

	for _, p := range dto.Pkg {
		distro, err := domain.ParseDistro(p.Distri)
		if err != nil {
			return domain.Task{}, err
		}
		if distro == domain.DistroUnknown {
			return domain.Task{}, zerr.With(zerr.Wrap(domain.ErrUnknownDistro, "Unknown is not a package target"), "distro", p.Distri)
		}
		task.Packages = append(task.Packages, domain.Package{
			Distro:  distro,
			Install: p.Install,
			Remove:  p.Remove,
		})
	}

	return task, nil
}

// resolve expands "~/" and makes path absolute against base.
func (l *Loader) resolve(base, path string) (string, error) {
	path, err := l.expandHome(path)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	return filepath.Join(base, path), nil
}
