package ports

import (
	"context"

	"go.trai.ch/ecfg/internal/core/domain"
)

// CommandRunner spawns processes and captures their output.
//
//go:generate mockgen -source=command_runner.go -destination=mocks/mock_command_runner.go -package=mocks
type CommandRunner interface {
	// Run spawns cmd and waits for it.
	//
	// An error is returned only when the process could not be spawned or its
	// streams could not be read. A process that ran and exited non-zero is
	// reported through CommandResult.ExitCode with a nil error.
	Run(ctx context.Context, cmd domain.Command) (domain.CommandResult, error)
}
