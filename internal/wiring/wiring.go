// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/elharo/eclipse/internal/adapters/buildinfo"
	_ "github.com/elharo/eclipse/internal/adapters/cache"
	_ "github.com/elharo/eclipse/internal/adapters/config"
	_ "github.com/elharo/eclipse/internal/adapters/fs"
	_ "github.com/elharo/eclipse/internal/adapters/logger"
	_ "github.com/elharo/eclipse/internal/adapters/projectview"
	_ "github.com/elharo/eclipse/internal/adapters/telemetry"
	// Register app nodes.
	_ "github.com/elharo/eclipse/internal/app"
)
