package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bdep/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/bdep/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/bdep/internal/adapters/rpmmeta"   //nolint:depguard // Wired in app layer
	"go.trai.ch/bdep/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/bdep/internal/core/ports"
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
			logger.NodeID,
			telemetry.NodeID,
			rpmmeta.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			headers, err := graft.Dep[ports.HeaderReader](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, log, tel, headers), nil
		},
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

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
