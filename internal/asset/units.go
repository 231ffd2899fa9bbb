package asset

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fd1az/asset-console/internal/apperror"
)

// ParseUnits converts a display-unit decimal string (e.g. "1.5") into raw
// units for an asset with the given number of decimals.
// This is a BOUNDARY function - use for parsing user input.
func ParseUnits(s string, decimals int) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, apperror.Validation(apperror.CodeRequiredField, "amount")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, apperror.New(apperror.CodeInvalidAmount,
			apperror.WithContext(s), apperror.WithCause(err), apperror.WithExitCode(apperror.ExitInvalid))
	}
	if d.IsNegative() {
		return nil, apperror.Validation(apperror.CodeInvalidAmount, s)
	}

	scaled := d.Shift(int32(decimals))

	// No fractional part may be lost.
	if !scaled.Equal(scaled.Truncate(0)) {
		return nil, apperror.Validation(apperror.CodeTooManyDigits, s)
	}

	return scaled.BigInt(), nil
}

// FormatUnits renders raw units in display units, e.g. "1.5 USDC".
// The symbol is omitted when empty.
func FormatUnits(raw *big.Int, decimals int, symbol string) string {
	if raw == nil {
		raw = big.NewInt(0)
	}
	text := decimal.NewFromBigInt(raw, -int32(decimals)).String()
	if symbol == "" {
		return text
	}
	return fmt.Sprintf("%s %s", text, symbol)
}
