package domain

import (
	"math/big"
	"strings"
	"unicode/utf16"
)

// Field limits.
const (
	MaxDecimals     = 20
	MinNameLength   = 3
	MaxNameLength   = 32
	MinSymbolLength = 3
	MaxSymbolLength = 7
)

// NoSymbol is the display symbol used until decimals and symbol are both known.
const NoSymbol = "NONE"

var maxDecimals = big.NewInt(MaxDecimals)

// Display is the unit the minimum balance is entered in.
type Display struct {
	Decimals int
	Symbol   string
}

// Evaluation is everything derived from a FormState.
type Evaluation struct {
	Display       Display
	ValidDecimals bool
	ValidName     bool
	ValidSymbol   bool
	ValidID       bool

	// Info is nil unless every field is present and valid.
	Info *Info
}

// Evaluate derives the display pair, the validity flags and the output
// record from state. It is pure: the same inputs always give the same result.
func Evaluate(state FormState, existing IDSet) Evaluation {
	e := Evaluation{
		Display:       DisplayFor(state.AssetDecimals, state.AssetSymbol),
		ValidDecimals: IsValidDecimals(state.AssetDecimals),
		ValidName:     IsValidName(state.AssetName),
		ValidSymbol:   IsValidSymbol(state.AssetSymbol),
		ValidID:       IsValidID(state.AssetID, existing),
	}

	complete := state.AssetID != nil &&
		state.AssetName != "" &&
		state.AssetSymbol != "" &&
		state.AssetDecimals != nil &&
		state.AccountID != "" &&
		state.MinBalance != nil

	if complete && e.ValidID && e.ValidName && e.ValidSymbol && e.ValidDecimals && state.MinBalance.Sign() != 0 {
		e.Info = &Info{
			accountID:     state.AccountID,
			assetID:       copyInt(state.AssetID),
			assetDecimals: copyInt(state.AssetDecimals),
			assetName:     state.AssetName,
			assetSymbol:   state.AssetSymbol,
			minBalance:    copyInt(state.MinBalance),
		}
	}

	return e
}

// DisplayFor returns (decimals, upper(symbol)) when both are present,
// otherwise (0, NoSymbol).
func DisplayFor(decimals *big.Int, symbol string) Display {
	if decimals == nil || symbol == "" {
		return Display{Decimals: 0, Symbol: NoSymbol}
	}
	return Display{Decimals: int(decimals.Int64()), Symbol: strings.ToUpper(symbol)}
}

// IsValidDecimals reports whether decimals is present and at most MaxDecimals.
func IsValidDecimals(decimals *big.Int) bool {
	return decimals != nil && decimals.Cmp(maxDecimals) <= 0
}

// IsValidName reports whether name is present and 3 to 32 characters long.
func IsValidName(name string) bool {
	n := textLength(name)
	return name != "" && n >= MinNameLength && n <= MaxNameLength
}

// IsValidSymbol reports whether symbol is present and 3 to 7 characters long.
func IsValidSymbol(symbol string) bool {
	n := textLength(symbol)
	return symbol != "" && n >= MinSymbolLength && n <= MaxSymbolLength
}

// IsValidID reports whether id is present, positive and not already taken.
func IsValidID(id *big.Int, existing IDSet) bool {
	return id != nil && id.Sign() > 0 && !existing.Contains(id)
}

// textLength counts UTF-16 code units, the unit browser inputs report.
func textLength(s string) int {
	n := 0
	for _, r := range s {
		l := utf16.RuneLen(r)
		if l < 0 {
			l = 1
		}
		n += l
	}
	return n
}
