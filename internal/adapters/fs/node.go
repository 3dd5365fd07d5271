package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/webpack/internal/core/ports"
)

// DetectorNodeID is the unique identifier for the lock file detector Graft node.
const DetectorNodeID graft.ID = "adapter.fs.detector"

func init() {
	graft.Register(graft.Node[ports.LockfileDetector]{
		ID:        DetectorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockfileDetector, error) {
			return NewDetector(), nil
		},
	})
}
