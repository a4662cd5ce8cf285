package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ecfg/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ecfg/internal/adapters/distro"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ecfg/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/ecfg/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ecfg/internal/adapters/prompt"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ecfg/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/ecfg/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/ecfg/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			distro.NodeID,
			fs.NodeID,
			shell.NodeID,
			prompt.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			detector, err := graft.Dep[ports.DistroDetector](ctx)
			if err != nil {
				return nil, err
			}

			filesystem, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}

			passwords, err := graft.Dep[ports.PasswordPrompt](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, detector, filesystem, runner, passwords, tracer, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}
