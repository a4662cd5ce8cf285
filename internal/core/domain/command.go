package domain

// Command is a process to spawn.
type Command struct {
	Name  string
	Args  []string
	Dir   string
	Stdin []byte
}

// ShellCommand returns a Command running line through sh in dir.
func ShellCommand(line, dir string) Command {
	return Command{
		Name: "sh",
		Args: []string{"-c", line},
		Dir:  dir,
	}
}

// CommandResult is the captured outcome of a process that ran to completion.
type CommandResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}
