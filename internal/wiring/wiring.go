// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/iroot/internal/adapters/config"
	_ "go.trai.ch/iroot/internal/adapters/image"
	_ "go.trai.ch/iroot/internal/adapters/irootdb"
	_ "go.trai.ch/iroot/internal/adapters/logger"
	_ "go.trai.ch/iroot/internal/adapters/memo"
	_ "go.trai.ch/iroot/internal/adapters/sinst"
	_ "go.trai.ch/iroot/internal/adapters/telemetry"
	_ "go.trai.ch/iroot/internal/adapters/trace"
	// Register app nodes.
	_ "go.trai.ch/iroot/internal/app"
)
