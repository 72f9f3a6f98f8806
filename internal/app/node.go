package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vat/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/vat/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/vat/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/vat/internal/adapters/random"  //nolint:depguard // Wired in app layer
	"go.trai.ch/vat/internal/adapters/shell"   //nolint:depguard // Wired in app layer
	"go.trai.ch/vat/internal/adapters/store"   //nolint:depguard // Wired in app layer
	"go.trai.ch/vat/internal/adapters/version" //nolint:depguard // Wired in app layer
	"go.trai.ch/vat/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			config.PackagesNodeID,
			fs.CacheNodeID,
			shell.NodeID,
			version.NodeID,
			store.NodeID,
			random.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	settingsLoader, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	packageLoader, err := graft.Dep[ports.PackageLoader](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[ports.CacheManager](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.CommandExecutor](ctx)
	if err != nil {
		return nil, err
	}

	normalizer, err := graft.Dep[ports.VersionNormalizer](ctx)
	if err != nil {
		return nil, err
	}

	versions, err := graft.Dep[ports.VersionStore](ctx)
	if err != nil {
		return nil, err
	}

	sampler, err := graft.Dep[ports.Sampler](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(settingsLoader, packageLoader, cache, executor, normalizer, versions, sampler, log), nil
}
