package nodemodules

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/webpack/internal/adapters/logger"
	"go.trai.ch/webpack/internal/core/ports"
)

// NodeID is the unique identifier for the companion resolver Graft node.
const NodeID graft.ID = "adapter.companion_resolver"

func init() {
	graft.Register(graft.Node[ports.CompanionResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CompanionResolver, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(log), nil
		},
	})
}
