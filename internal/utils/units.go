package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatUnits renders a base-unit amount with the given number of decimals.
func FormatUnits(amount int64, decimals int32) string {
	return decimal.New(amount, -decimals).StringFixed(decimals)
}

// ParseUnits converts a display amount ("1.5") into base units. Amounts
// finer than one base unit are rejected rather than rounded.
func ParseUnits(amountStr string, decimals int32) (int64, error) {
	amountStr = strings.TrimSpace(amountStr)
	if amountStr == "" {
		return 0, fmt.Errorf("amount can't be empty")
	}

	d, err := decimal.NewFromString(amountStr)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %s", amountStr)
	}

	base := d.Shift(decimals)
	if !base.Equal(base.Truncate(0)) {
		return 0, fmt.Errorf("amount %s has more than %d decimal places", amountStr, decimals)
	}
	if base.BigInt().BitLen() > 63 {
		return 0, fmt.Errorf("amount %s is out of range", amountStr)
	}

	return base.IntPart(), nil
}
