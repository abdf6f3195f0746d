package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrTooManyDecimals = errors.New("amount has too many decimal places")
)

// LedgerScale is the precision of the SLH ledger columns (NUMERIC(24,6)).
const LedgerScale = 6

// ParseAmount parses user input into a ledger amount. Thousands
// separators are tolerated ("1,000.5"), anything beyond six decimal
// places is rejected rather than silently rounded.
func ParseAmount(input string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(strings.ReplaceAll(input, ",", ""))
	if trimmed == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if amount.Exponent() < -LedgerScale {
		return decimal.Zero, ErrTooManyDecimals
	}
	return amount, nil
}

// ParsePositiveAmount is ParseAmount restricted to amounts > 0, the
// precondition shared by transfers and community-wallet sends.
func ParsePositiveAmount(input string) (decimal.Decimal, error) {
	amount, err := ParseAmount(input)
	if err != nil {
		return decimal.Zero, err
	}
	if amount.Sign() <= 0 {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

// FormatSLH renders an SLH amount the way the bot displays balances.
func FormatSLH(amount decimal.Decimal) string {
	return amount.StringFixed(4)
}

// FormatSLHA renders internal reward points (finer granularity).
func FormatSLHA(amount decimal.Decimal) string {
	return amount.StringFixed(8)
}
