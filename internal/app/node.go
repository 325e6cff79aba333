package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/testbridge/internal/adapters/cas"     //nolint:depguard // Wired in app layer
	"go.trai.ch/testbridge/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/testbridge/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/testbridge/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/testbridge/internal/core/ports"
	"go.trai.ch/testbridge/internal/engine/bridge"
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
			bridge.NodeID,
			cas.NodeID,
			watcher.NodeID,
			logger.NodeID,
			logger.SlogNodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			engine, err := graft.Dep[*bridge.Engine](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.BuildRecordStore](ctx)
			if err != nil {
				return nil, err
			}

			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			slogger, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, engine, store, w, log).WithLogControl(slogger), nil
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
