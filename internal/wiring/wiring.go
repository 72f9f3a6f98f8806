// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/vat/internal/adapters/config"
	_ "go.trai.ch/vat/internal/adapters/fs"
	_ "go.trai.ch/vat/internal/adapters/logger"
	_ "go.trai.ch/vat/internal/adapters/random"
	_ "go.trai.ch/vat/internal/adapters/shell"
	_ "go.trai.ch/vat/internal/adapters/store"
	_ "go.trai.ch/vat/internal/adapters/version"
	// Register app nodes.
	_ "go.trai.ch/vat/internal/app"
)
