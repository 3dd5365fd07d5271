// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/webpack/internal/adapters/config"
	_ "go.trai.ch/webpack/internal/adapters/fs"
	_ "go.trai.ch/webpack/internal/adapters/logger"
	_ "go.trai.ch/webpack/internal/adapters/nodemodules"
	_ "go.trai.ch/webpack/internal/adapters/shell"
	_ "go.trai.ch/webpack/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/webpack/internal/adapters/terminal"
	// Register app nodes.
	_ "go.trai.ch/webpack/internal/app"
)
