package validation

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hance08/splitter/internal/utils"
)

// ParseAddress parses a 0x-prefixed or bare 40-digit hex address.
// The zero address is accepted here; the ledger decides whether it is allowed.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return common.Address{}, fmt.Errorf("address can't be empty")
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid address %q (expected 20 bytes of hex)", s)
	}
	return common.HexToAddress(s), nil
}

// ValidateAddress is the prompt-friendly form of ParseAddress.
// Accepts both string and any (for survey compatibility)
func ValidateAddress(val any) error {
	s, ok := val.(string)
	if !ok {
		return fmt.Errorf("address must be a string")
	}
	_, err := ParseAddress(s)
	return err
}

// ValidateAmount returns a validator that checks an amount parses with decimals.
func ValidateAmount(decimals int32) func(string) error {
	return func(s string) error {
		_, err := utils.ParseUnits(s, decimals)
		return err
	}
}
