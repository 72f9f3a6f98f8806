package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vat/internal/adapters/fs"     //nolint:depguard // Wired in adapter node
	"go.trai.ch/vat/internal/adapters/logger" //nolint:depguard // Wired in adapter node
	"go.trai.ch/vat/internal/core/ports"
)

const (
	// SettingsNodeID is the unique identifier for the settings loader Graft node.
	SettingsNodeID graft.ID = "adapter.config.settings"
	// PackagesNodeID is the unique identifier for the package loader Graft node.
	PackagesNodeID graft.ID = "adapter.config.packages"
)

func init() {
	graft.Register(graft.Node[ports.SettingsLoader]{
		ID:        SettingsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SettingsLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSettingsLoader(log), nil
		},
	})

	graft.Register(graft.Node[ports.PackageLoader]{
		ID:        PackagesNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, fs.WalkerNodeID},
		Run: func(ctx context.Context) (ports.PackageLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewPackageLoader(log, walker), nil
		},
	})
}
