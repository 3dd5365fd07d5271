package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/webpack/internal/adapters/logger"
	"go.trai.ch/webpack/internal/core/ports"
)

const (
	// InstallerNodeID is the unique identifier for the installer Graft node.
	InstallerNodeID graft.ID = "adapter.installer"
	// DelegatorNodeID is the unique identifier for the delegator Graft node.
	DelegatorNodeID graft.ID = "adapter.delegator"
)

func init() {
	graft.Register(graft.Node[ports.Installer]{
		ID:        InstallerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Installer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstaller(log), nil
		},
	})

	graft.Register(graft.Node[ports.Delegator]{
		ID:        DelegatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Delegator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDelegator(log), nil
		},
	})
}
