// =============================================================================
// Agreement Payload Builder - Commission Calculator
// =============================================================================
//
// Derives the numeric commission figure from the commission mode and the raw
// strings captured by the form. All parsing degrades to zero rather than
// erroring: the engine must stay total even on dirty upstream input.
//
// =============================================================================

package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ginjaninja78/form-to-payload-conversion/internal/types"
)

// REITScalePhrase is the fixed descriptive commission reference used when no
// numeric commission applies. The agreement carries this literal in place of
// a computed value.
const REITScalePhrase = "REIT Gross Scale of Commission"

// ParseMoney parses a currency-ish string by stripping "," and "$" and
// surrounding whitespace. Malformed input yields 0, never an error.
func ParseMoney(raw string) float64 {
	cleaned := strings.NewReplacer(",", "", "$", "").Replace(strings.TrimSpace(raw))
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}

// Commission computes the commission amount for the given mode.
//
//   - reit:       nil; the agreement carries REITScalePhrase instead, which
//     the assembler fills in.
//   - fixed:      rawValue parsed as money.
//   - percentage: rawListingPrice parsed as money, multiplied by rawValue
//     as a percentage.
//
// Parse failures in any field degrade to 0.
func Commission(mode types.CommissionMode, rawValue, rawListingPrice string) *float64 {
	switch mode {
	case types.CommissionREIT:
		return nil
	case types.CommissionFixed:
		value := ParseMoney(rawValue)
		return &value
	case types.CommissionPercentage:
		price := ParseMoney(rawListingPrice)
		percentage := ParseMoney(rawValue)
		value := price * percentage / 100
		return &value
	default:
		// Unknown modes are caller bugs; stay total regardless.
		zero := 0.0
		return &zero
	}
}

// FormatCurrency renders an amount as "$1,234.50": dollar sign, comma
// thousands grouping, two decimals.
func FormatCurrency(amount float64) string {
	raw := strconv.FormatFloat(amount, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(raw, "-") {
		sign = "-"
		raw = raw[1:]
	}

	whole, frac, _ := strings.Cut(raw, ".")

	var sb strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(digit)
	}

	return fmt.Sprintf("%s$%s.%s", sign, sb.String(), frac)
}
