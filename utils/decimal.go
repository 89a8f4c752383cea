package utils

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimal converts a price cell to a decimal.Decimal value.
// Accepts user-formatted strings like "12.50", "$1,234.50" or "USD 20".
func ParseDecimal(value string) (decimal.Decimal, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return decimal.Zero, errors.New("empty decimal string")
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "USD", "")
	s = strings.ReplaceAll(s, "usd", "")
	s = strings.TrimSpace(s)

	dec, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	return dec, nil
}
