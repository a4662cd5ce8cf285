package app

import "go.trai.ch/ecfg/internal/core/ports"

// Components holds what the entry point needs from the dependency graph.
type Components struct {
	App    *App
	Logger ports.Logger
}
