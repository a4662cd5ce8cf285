package ports

import (
	"context"

	"go.trai.ch/ecfg/internal/core/domain"
)

// TaskExecutor runs the steps of a single task.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type TaskExecutor interface {
	// Execute runs symlinks, then commands, then packages.
	//
	// The returned log holds every entry produced before the first failure,
	// the failing entry included, and is returned even when err is non-nil.
	Execute(ctx context.Context, task *domain.Task) (domain.Log, error)
}
