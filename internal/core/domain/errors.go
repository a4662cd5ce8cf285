package domain

import "go.trai.ch/zerr"

var (
	// ErrTaskNotFound is returned when a task name or index does not resolve to a task.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrIOFailure is the kind of a step that failed on a filesystem or process-spawn error.
	ErrIOFailure = zerr.New("i/o failure")

	// ErrPartialFailure marks a task error raised after earlier steps were already applied.
	ErrPartialFailure = zerr.New("task partially applied")

	// ErrPackageFailure is the kind of a step that failed while applying packages.
	ErrPackageFailure = zerr.New("package application failed")

	// ErrCommandFailed is the kind of a command step rejected for its exit status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrTaskExecutionFailed is returned by the application when a task run failed.
	ErrTaskExecutionFailed = zerr.New("task execution failed")

	// ErrSymlinkRetriesExhausted is returned when the symlink self-heal loop gives up.
	ErrSymlinkRetriesExhausted = zerr.New("symlink retries exhausted")

	// ErrNonZeroExit is returned in strict mode for a command that exited non-zero.
	ErrNonZeroExit = zerr.New("command exited with non-zero status")

	// ErrNoPackageDriver is returned when the host distribution has no package manager driver.
	ErrNoPackageDriver = zerr.New("no package manager for distro")

	// ErrPackagesDisabled is returned when package application has not been enabled.
	ErrPackagesDisabled = zerr.New("package application is disabled")

	// ErrPackageCommandFailed is returned when the package manager exits non-zero.
	ErrPackageCommandFailed = zerr.New("package manager command failed")

	// ErrConfigNotFound is returned when no task file exists in the provisioning directory.
	ErrConfigNotFound = zerr.New("could not find tasks.toml or tasks.yaml")

	// ErrConfigReadFailed is returned when the task file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read task file")

	// ErrConfigParseFailed is returned when the task file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse task file")

	// ErrInvalidTaskName is returned for an empty task name.
	ErrInvalidTaskName = zerr.New("invalid task name")

	// ErrDuplicateTaskName is returned when two tasks share a name.
	ErrDuplicateTaskName = zerr.New("duplicate task name")

	// ErrInvalidSymlink is returned for a symlink entry that is not a (source, destination) pair.
	ErrInvalidSymlink = zerr.New("symlink entry must be a [source, destination] pair")

	// ErrUnknownDistro is returned when a distro name is not recognized.
	ErrUnknownDistro = zerr.New("unknown distro")

	// ErrHomeNotFound is returned when the user's home directory cannot be determined.
	ErrHomeNotFound = zerr.New("could not find home directory")

	// ErrPromptFailed is returned when the root password cannot be read.
	ErrPromptFailed = zerr.New("failed to read root password")

	// ErrInvalidOutputMode is returned for an unsupported --output value.
	ErrInvalidOutputMode = zerr.New("invalid output mode")
)
