package asset

import (
	"math/big"
	"strings"

	"github.com/fd1az/asset-console/internal/apperror"
)

// IDBitLength is the width of an asset id on chain.
const IDBitLength = 128

// ParseID parses a base-10 asset id. Negative values and values wider than
// bitLength bits are rejected.
func ParseID(s string, bitLength int) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, apperror.Validation(apperror.CodeRequiredField, "asset id")
	}

	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, apperror.Validation(apperror.CodeInvalidNumber, s)
	}
	if v.Sign() < 0 {
		return nil, apperror.Validation(apperror.CodeInvalidNumber, s)
	}
	if v.BitLen() > bitLength {
		return nil, apperror.Validation(apperror.CodeNumberTooLarge, s)
	}

	return v, nil
}
