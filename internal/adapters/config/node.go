package config

import (
	"context"

	"github.com/elharo/eclipse/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.settings_loader"

func init() {
	graft.Register(graft.Node[ports.SettingsLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.SettingsLoader, error) {
			return &FileSettingsLoader{}, nil
		},
	})
}
