package bridge

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/testbridge/internal/adapters/cas"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/testbridge/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/testbridge/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/testbridge/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/testbridge/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/testbridge/internal/core/ports"
)

// NodeID is the unique identifier for the bridge engine Graft node.
const NodeID graft.ID = "engine.bridge"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.LocatorNodeID,
			fs.CheckerNodeID,
			fs.ResolverNodeID,
			fs.HasherNodeID,
			cas.NodeID,
			shell.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			locator, err := graft.Dep[ports.OutputLocator](ctx)
			if err != nil {
				return nil, err
			}

			checker, err := graft.Dep[ports.StalenessChecker](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.ArtifactResolver](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.BuildRecordStore](ctx)
			if err != nil {
				return nil, err
			}

			rebuilder, err := graft.Dep[ports.Rebuilder](ctx)
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

			return NewEngine(locator, checker, resolver, hasher, store, rebuilder, tracer, log), nil
		},
	})
}
