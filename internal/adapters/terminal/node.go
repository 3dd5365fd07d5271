package terminal

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/webpack/internal/adapters/logger"
	"go.trai.ch/webpack/internal/core/ports"
)

// NodeID is the unique identifier for the prompter Graft node.
const NodeID graft.ID = "adapter.prompter"

func init() {
	graft.Register(graft.Node[ports.Prompter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Prompter, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewPrompter(log), nil
		},
	})
}
