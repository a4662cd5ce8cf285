// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ecfg/internal/adapters/config"
	_ "go.trai.ch/ecfg/internal/adapters/distro"
	_ "go.trai.ch/ecfg/internal/adapters/fs"
	_ "go.trai.ch/ecfg/internal/adapters/logger"
	_ "go.trai.ch/ecfg/internal/adapters/prompt"
	_ "go.trai.ch/ecfg/internal/adapters/shell"
	_ "go.trai.ch/ecfg/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/ecfg/internal/app"
)
