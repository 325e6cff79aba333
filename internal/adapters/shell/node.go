package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/testbridge/internal/adapters/logger"
	"go.trai.ch/testbridge/internal/core/ports"
)

// NodeID is the unique identifier for the rebuilder Graft node.
const NodeID graft.ID = "adapter.rebuilder"

func init() {
	graft.Register(graft.Node[ports.Rebuilder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Rebuilder, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRebuilder(log), nil
		},
	})
}
