package domain

// Symlink is a link to place at Destination pointing at Source.
// Both paths are absolute by the time a task reaches the executor.
type Symlink struct {
	Source      string
	Destination string
}

// Package lists packages to install or remove on one distribution.
type Package struct {
	Distro  Distro
	Install []string
	Remove  []string
}

// Task is a named unit of provisioning work.
type Task struct {
	Name string
	// Path is the task directory relative to the provisioning root.
	// When empty the task name is used.
	Path     string
	Symlinks []Symlink
	Commands []string
	Packages []Package
}

// Dir returns the task directory relative to the provisioning root.
func (t *Task) Dir() string {
	if t.Path != "" {
		return t.Path
	}
	return t.Name
}

// PackagesFor returns the package entries targeting the given distribution.
func (t *Task) PackagesFor(d Distro) []Package {
	var out []Package
	for _, p := range t.Packages {
		if p.Distro == d {
			out = append(out, p)
		}
	}
	return out
}

// Config is a loaded task file.
type Config struct {
	// Root is the absolute provisioning root.
	Root string
	// Source is the path of the task file that was read.
	Source string
	// Digest is the xxhash of the task file content.
	Digest uint64
	Tasks  []Task
}

// TaskNames returns the task names in declared order.
func (c *Config) TaskNames() []string {
	names := make([]string, len(c.Tasks))
	for i := range c.Tasks {
		names[i] = c.Tasks[i].Name
	}
	return names
}

// NeedsPackages reports whether any task carries a package entry for d.
func (c *Config) NeedsPackages(d Distro) bool {
	for i := range c.Tasks {
		if len(c.Tasks[i].PackagesFor(d)) > 0 {
			return true
		}
	}
	return false
}
