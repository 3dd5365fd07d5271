package ports

import (
	"context"

	"go.trai.ch/webpack/internal/core/domain"
)

// Installer runs the package manager to add a companion as a dev dependency.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Installer interface {
	// Install spawns the package manager through a shell with inherited
	// standard streams and waits for it to exit.
	//
	// Spawn errors and non-zero exits are both reported as domain.ErrInstallFailed.
	Install(ctx context.Context, cwd string, manager domain.PackageManager, pkg string) error
}

// Delegator transfers control to a resolved companion.
type Delegator interface {
	// Delegate runs the companion's entry point with args and waits for it.
	//
	// A companion that cannot be started yields domain.ErrDelegationFailed.
	// A companion that exits non-zero yields domain.ErrCompanionExited carrying
	// its exit status under domain.ExitCodeKey.
	Delegate(ctx context.Context, resolution domain.Resolution, args []string) error
}
