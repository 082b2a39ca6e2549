// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rebind/internal/adapters/assembly"
	_ "go.trai.ch/rebind/internal/adapters/cas"
	_ "go.trai.ch/rebind/internal/adapters/config"
	_ "go.trai.ch/rebind/internal/adapters/fs"
	_ "go.trai.ch/rebind/internal/adapters/lockfile"
	_ "go.trai.ch/rebind/internal/adapters/logger"
	_ "go.trai.ch/rebind/internal/adapters/nuget"
	_ "go.trai.ch/rebind/internal/adapters/shell"
	_ "go.trai.ch/rebind/internal/adapters/telemetry"
	_ "go.trai.ch/rebind/internal/adapters/vcs"
	_ "go.trai.ch/rebind/internal/adapters/xmlconfig"
	// Register app and engine nodes.
	_ "go.trai.ch/rebind/internal/app"
	_ "go.trai.ch/rebind/internal/engine/aggregator"
	_ "go.trai.ch/rebind/internal/engine/reconciler"
	_ "go.trai.ch/rebind/internal/engine/synthesizer"
)
