package projectview

import (
	"context"

	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.view_parser"

func init() {
	graft.Register(graft.Node[*Parser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Parser, error) {
			return New(), nil
		},
	})
}
