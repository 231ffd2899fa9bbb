// Package domain holds the asset creation form state, its validation rules
// and the validated record handed to callers.
package domain

import (
	"encoding/json"
	"math/big"
)

// FormState is the raw input of the asset creation form.
// Empty strings and nil integers mean the field has not been provided.
type FormState struct {
	AccountID     string
	AssetID       *big.Int
	AssetDecimals *big.Int
	AssetName     string
	AssetSymbol   string
	MinBalance    *big.Int
}

// Clone returns a deep copy of the state.
func (s FormState) Clone() FormState {
	return FormState{
		AccountID:     s.AccountID,
		AssetID:       copyInt(s.AssetID),
		AssetDecimals: copyInt(s.AssetDecimals),
		AssetName:     s.AssetName,
		AssetSymbol:   s.AssetSymbol,
		MinBalance:    copyInt(s.MinBalance),
	}
}

// Info is a validated, immutable asset creation record.
type Info struct {
	accountID     string
	assetID       *big.Int
	assetDecimals *big.Int
	assetName     string
	assetSymbol   string
	minBalance    *big.Int
}

// AccountID returns the creator account.
func (i *Info) AccountID() string { return i.accountID }

// AssetID returns a copy of the asset id.
func (i *Info) AssetID() *big.Int { return copyInt(i.assetID) }

// AssetDecimals returns a copy of the decimals.
func (i *Info) AssetDecimals() *big.Int { return copyInt(i.assetDecimals) }

// AssetName returns the asset name as entered.
func (i *Info) AssetName() string { return i.assetName }

// AssetSymbol returns the asset symbol as entered (not case-normalized).
func (i *Info) AssetSymbol() string { return i.assetSymbol }

// MinBalance returns a copy of the minimum balance in raw units.
func (i *Info) MinBalance() *big.Int { return copyInt(i.minBalance) }

// State returns the record as a FormState.
func (i *Info) State() FormState {
	return FormState{
		AccountID:     i.accountID,
		AssetID:       copyInt(i.assetID),
		AssetDecimals: copyInt(i.assetDecimals),
		AssetName:     i.assetName,
		AssetSymbol:   i.assetSymbol,
		MinBalance:    copyInt(i.minBalance),
	}
}

// Equal reports whether both records hold the same values.
func (i *Info) Equal(other *Info) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.accountID == other.accountID &&
		i.assetID.Cmp(other.assetID) == 0 &&
		i.assetDecimals.Cmp(other.assetDecimals) == 0 &&
		i.assetName == other.assetName &&
		i.assetSymbol == other.assetSymbol &&
		i.minBalance.Cmp(other.minBalance) == 0
}

type infoJSON struct {
	AccountID     string   `json:"accountId"`
	AssetDecimals *big.Int `json:"assetDecimals"`
	AssetID       *big.Int `json:"assetId"`
	AssetName     string   `json:"assetName"`
	AssetSymbol   string   `json:"assetSymbol"`
	MinBalance    *big.Int `json:"minBalance"`
}

// MarshalJSON encodes the record with integer fields as JSON numbers.
func (i *Info) MarshalJSON() ([]byte, error) {
	return json.Marshal(infoJSON{
		AccountID:     i.accountID,
		AssetDecimals: i.assetDecimals,
		AssetID:       i.assetID,
		AssetName:     i.assetName,
		AssetSymbol:   i.assetSymbol,
		MinBalance:    i.minBalance,
	})
}

func copyInt(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}
