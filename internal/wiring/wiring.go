// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/testbridge/internal/adapters/cas"
	_ "go.trai.ch/testbridge/internal/adapters/config"
	_ "go.trai.ch/testbridge/internal/adapters/fs"
	_ "go.trai.ch/testbridge/internal/adapters/logger"
	_ "go.trai.ch/testbridge/internal/adapters/shell"
	_ "go.trai.ch/testbridge/internal/adapters/telemetry"
	_ "go.trai.ch/testbridge/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/testbridge/internal/app"
	_ "go.trai.ch/testbridge/internal/engine/bridge"
)
