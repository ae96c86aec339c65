package buildinfo

import (
	"context"

	"github.com/elharo/eclipse/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.info_aggregator"

func init() {
	graft.Register(graft.Node[ports.InfoAggregator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.InfoAggregator, error) {
			return New(), nil
		},
	})
}
