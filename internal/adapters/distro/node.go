package distro

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ecfg/internal/adapters/logger"
	"go.trai.ch/ecfg/internal/core/ports"
)

// NodeID is the unique identifier for the distro detector Graft node.
const NodeID graft.ID = "adapter.distro"

func init() {
	graft.Register(graft.Node[ports.DistroDetector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.DistroDetector, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDetector(log), nil
		},
	})
}
