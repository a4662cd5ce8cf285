package ports

import (
	"context"

	"go.trai.ch/ecfg/internal/core/domain"
)

// PackageManager applies package installs and removals on the host.
//
// Every call that does not perform the action must say so in the returned
// entry and return an error; it never reports success for work it skipped.
//
//go:generate mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks
type PackageManager interface {
	Install(ctx context.Context, names []string) (domain.LogEntry, error)
	Remove(ctx context.Context, names []string) (domain.LogEntry, error)
}
