// Package app contains the asset creation form, its application service and
// the ports it reports through.
package app

import (
	"context"
	"math/big"

	"github.com/fd1az/asset-console/business/assets/domain"
)

// Reporter receives the validated record once the user confirms it.
type Reporter interface {
	Report(ctx context.Context, info *domain.Info) error
}

// AssetSource lists the ids of assets that already exist.
type AssetSource interface {
	IDs() []*big.Int
	NextID() *big.Int
}
