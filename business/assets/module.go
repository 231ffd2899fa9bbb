// Package assets implements the asset creation bounded context.
package assets

import (
	"context"

	"github.com/fd1az/asset-console/business/assets/app"
	assetsDI "github.com/fd1az/asset-console/business/assets/di"
	"github.com/fd1az/asset-console/business/assets/domain"
	"github.com/fd1az/asset-console/internal/asset"
	"github.com/fd1az/asset-console/internal/config"
	"github.com/fd1az/asset-console/internal/di"
	"github.com/fd1az/asset-console/internal/logger"
	"github.com/fd1az/asset-console/internal/monolith"
)

// Module implements the assets bounded context.
type Module struct {
	// Reporter receives confirmed records. Required.
	Reporter app.Reporter
	// Defaults seeds the form, e.g. from CLI flags. Optional.
	Defaults *domain.FormState
}

// RegisterServices registers all asset services with the DI container.
func (m *Module) RegisterServices(c di.Container) error {
	di.RegisterToken(c, assetsDI.Reporter, func(di.ServiceRegistry) app.Reporter {
		return m.Reporter
	})

	di.RegisterToken(c, assetsDI.CreationService, func(sr di.ServiceRegistry) *app.CreationService {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)
		registry := sr.Get("assetRegistry").(*asset.Registry)

		// Validated by config.Load.
		openID, _ := cfg.Assets.OpenIDInt()

		return app.NewCreationService(registry, assetsDI.GetReporter(sr), log, app.ServiceConfig{
			OpenID:   openID,
			Defaults: m.defaults(cfg),
		})
	})

	return nil
}

// Startup builds the creation service so the form is ready before any front end attaches.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	log := mono.Logger()
	svc := assetsDI.GetCreationService(mono.Services())

	state := svc.Form().State()
	log.Info(ctx, "assets module started",
		"existing_assets", mono.AssetRegistry().Count(),
		"suggested_id", state.AssetID.String(),
	)
	return nil
}

// defaults fills in the creator account from the configured accounts when
// nothing else seeds it.
func (m *Module) defaults(cfg *config.Config) *domain.FormState {
	var seed domain.FormState
	if m.Defaults != nil {
		seed = m.Defaults.Clone()
	}
	if seed.AccountID == "" && len(cfg.Assets.Accounts) > 0 {
		seed.AccountID = cfg.Assets.Accounts[0]
	}
	return &seed
}
