// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/regen/internal/adapters/cache"
	_ "go.trai.ch/regen/internal/adapters/config"
	_ "go.trai.ch/regen/internal/adapters/fs"
	_ "go.trai.ch/regen/internal/adapters/logger"
	_ "go.trai.ch/regen/internal/adapters/shell"
	_ "go.trai.ch/regen/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/regen/internal/app"
	_ "go.trai.ch/regen/internal/engine/orchestrator"
	_ "go.trai.ch/regen/internal/engine/plan"
)
