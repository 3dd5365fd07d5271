package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/webpack/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/webpack/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/webpack/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/webpack/internal/adapters/nodemodules"        //nolint:depguard // Wired in app layer
	"go.trai.ch/webpack/internal/adapters/shell"              //nolint:depguard // Wired in app layer
	"go.trai.ch/webpack/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/webpack/internal/adapters/terminal"           //nolint:depguard // Wired in app layer
	"go.trai.ch/webpack/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			nodemodules.NodeID,
			fs.DetectorNodeID,
			shell.InstallerNodeID,
			shell.DelegatorNodeID,
			terminal.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.CompanionResolver](ctx)
	if err != nil {
		return nil, err
	}

	detector, err := graft.Dep[ports.LockfileDetector](ctx)
	if err != nil {
		return nil, err
	}

	installer, err := graft.Dep[ports.Installer](ctx)
	if err != nil {
		return nil, err
	}

	delegator, err := graft.Dep[ports.Delegator](ctx)
	if err != nil {
		return nil, err
	}

	prompter, err := graft.Dep[ports.Prompter](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, resolver, detector, installer, delegator, prompter, telemetry, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
