package config

// File is the layout of tasks.toml and tasks.yaml.
type File struct {
	Linux Section `toml:"linux" yaml:"linux"`
}

// Section groups the tasks for one operating system.
type Section struct {
	Tasks []TaskDTO `toml:"tasks" yaml:"tasks"`
}

// TaskDTO is a task as written in the task file.
type TaskDTO struct {
	Name     string       `toml:"name" yaml:"name"`
	Path     string       `toml:"path" yaml:"path"`
	Pkg      []PackageDTO `toml:"pkg" yaml:"pkg"`
	Commands []string     `toml:"commands" yaml:"commands"`
	// Slink holds [source, destination] pairs.
	Slink [][]string `toml:"slink" yaml:"slink"`
}

// PackageDTO is a package entry as written in the task file.
type PackageDTO struct {
	Distri  string   `toml:"distri" yaml:"distri"`
	Install []string `toml:"install" yaml:"install"`
	Remove  []string `toml:"remove" yaml:"remove"`
}
