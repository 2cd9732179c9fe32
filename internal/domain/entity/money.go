package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
)

// Wallet amounts are held as int64 cents and rendered as decimal strings with two places.

// MaxDecimalPlaces defines the maximum number of decimal places allowed for wallet amounts
const MaxDecimalPlaces = 2

// ParseAmount converts a decimal string such as "10", "10.5" or "10.50" into cents.
// The fractional part is padded rather than parsed as a float, so no precision is lost.
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}
	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	whole, fraction, hasPoint := strings.Cut(amount, ".")
	if strings.Contains(fraction, ".") {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}
	if whole == "" {
		whole = "0"
	}
	if hasPoint && len(fraction) > MaxDecimalPlaces {
		return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}
	fraction += strings.Repeat("0", MaxDecimalPlaces-len(fraction))

	for _, r := range whole + fraction {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q is not a number", errs.ErrInvalidAmount, amount)
		}
	}

	value, err := strconv.ParseInt(whole+fraction, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}
	return value, nil
}

// ParsePositiveAmount is ParseAmount that additionally rejects zero
func ParsePositiveAmount(amount string) (int64, error) {
	cents, err := ParseAmount(amount)
	if err != nil {
		return 0, err
	}
	if cents == 0 {
		return 0, errs.ErrNegativeAmount
	}
	return cents, nil
}

// FormatAmount converts cents to a decimal string.
// For example 1015 becomes "10.15" and 5 becomes "0.05".
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// MultiplyAmount multiplies cents by n and reports overflow
func MultiplyAmount(cents int64, n int) (int64, bool) {
	if cents == 0 || n == 0 {
		return 0, true
	}
	result := cents * int64(n)
	if result/int64(n) != cents {
		return 0, false
	}
	return result, true
}
