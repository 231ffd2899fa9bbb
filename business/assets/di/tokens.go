// Package di contains dependency injection tokens for the assets context.
package di

import (
	"github.com/fd1az/asset-console/business/assets/app"
	"github.com/fd1az/asset-console/internal/di"
)

// Public service tokens - exposed to the front ends
var (
	CreationService = di.NewToken[*app.CreationService]("assets.CreationService")
)

// Private dependency tokens - internal to the assets module
var (
	Reporter = di.NewToken[app.Reporter]("assets:reporter")
)

// Helper functions for type-safe access
func GetCreationService(c di.ServiceRegistry) *app.CreationService {
	return di.GetToken(c, CreationService)
}

func GetReporter(c di.ServiceRegistry) app.Reporter {
	return di.GetToken(c, Reporter)
}
