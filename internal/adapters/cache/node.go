package cache

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/elharo/eclipse/internal/adapters/projectview"
	"github.com/elharo/eclipse/internal/core/ports"
)

// NodeID is the unique identifier for the view cache node.
const NodeID graft.ID = "adapter.view_cache"

func init() {
	graft.Register(graft.Node[ports.ViewLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{projectview.NodeID},
		Run: func(ctx context.Context) (ports.ViewLoader, error) {
			parser, err := graft.Dep[*projectview.Parser](ctx)
			if err != nil {
				return nil, err
			}
			return New(parser)
		},
	})
}
