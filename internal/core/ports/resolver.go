// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/webpack/internal/core/domain"
)

// CompanionResolver probes for an installed companion package.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type CompanionResolver interface {
	// Resolve looks the companion up starting from cwd.
	//
	// Absence is reported as PresenceAbsent with a nil Err. A probe that fails
	// for any other reason is reported as PresenceUnknown with Err set; Resolve
	// itself never returns a Go error so both probes always run.
	Resolve(ctx context.Context, cwd string, companion domain.Companion) domain.Resolution
}

// LockfileDetector decides which package manager a project uses.
type LockfileDetector interface {
	// Detect checks cwd for yarnLockfile and returns the matching package manager.
	Detect(cwd, yarnLockfile string) domain.PackageManager
}
