package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/elharo/eclipse/internal/adapters/buildinfo" //nolint:depguard // Wired in app layer
	"github.com/elharo/eclipse/internal/adapters/cache"     //nolint:depguard // Wired in app layer
	"github.com/elharo/eclipse/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/elharo/eclipse/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"github.com/elharo/eclipse/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/elharo/eclipse/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/elharo/eclipse/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cache.NodeID,
			buildinfo.NodeID,
			fs.VerifierNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	views, err := graft.Dep[ports.ViewLoader](ctx)
	if err != nil {
		return nil, err
	}

	infos, err := graft.Dep[ports.InfoAggregator](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[ports.ArtifactVerifier](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(views, infos, verifier, log, tel), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      application,
		Settings: settings,
	}, nil
}
