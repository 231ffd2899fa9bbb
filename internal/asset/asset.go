// Package asset models the on-chain assets that already exist, and the
// conversion between raw units and the display units typed by users.
// Raw values are big.Int; decimal.Decimal is only used at the text boundary.
package asset

import "math/big"

// Asset is an existing on-chain asset. Identity is the numeric id.
type Asset struct {
	id       *big.Int
	symbol   string
	name     string
	decimals uint8
}

// NewAsset creates an Asset. The id is copied.
func NewAsset(id *big.Int, symbol, name string, decimals uint8) *Asset {
	if id == nil || id.Sign() <= 0 {
		panic("asset: id must be positive")
	}

	return &Asset{
		id:       new(big.Int).Set(id),
		symbol:   symbol,
		name:     name,
		decimals: decimals,
	}
}

// ID returns a copy of the asset id.
func (a *Asset) ID() *big.Int {
	return new(big.Int).Set(a.id)
}

// Symbol returns the ticker symbol.
func (a *Asset) Symbol() string {
	return a.symbol
}

// Name returns the descriptive name, falling back to the symbol.
func (a *Asset) Name() string {
	if a.name == "" {
		return a.symbol
	}
	return a.name
}

// Decimals returns the number of fractional digits.
func (a *Asset) Decimals() uint8 {
	return a.decimals
}

// String returns "#<id> <symbol>".
func (a *Asset) String() string {
	return "#" + a.id.String() + " " + a.symbol
}
