// =============================================================================
// Agreement Payload Builder - Numeric-to-Words Converter
// =============================================================================
//
// Converts a non-negative decimal amount into the English phrasing the
// agreement documents render, e.g.
//
//	Words(1234.56, true) -> "one thousand, two hundred and thirty-four
//	                         dollars and fifty-six cents"
//
// Downstream document generation parses these strings, so the phrasing is a
// compatibility contract: group joining with ", ", "and" before the tens
// within a chunk, hyphenated tens, and the dollars/cents clause order must
// not change.
//
// =============================================================================

package engine

import (
	"math"
	"strings"
)

var onesWords = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var tensWords = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

// scaleWords is indexed by base-1000 group position. Position 0 (the units
// group) has no scale name.
var scaleWords = []string{"", "thousand", "million", "billion"}

// Words converts amount into English words. The integer part is converted in
// base-1000 groups; a zero integer part reads "zero". When currency is true,
// " dollars" follows the integer phrasing, and any nonzero cents are
// appended as " and <cents> cents" in either case.
//
// Cents are the fractional part rounded to the nearest hundredth with no
// carry into dollars, and negative amounts are outside the contract; both
// match the behavior the downstream parsers were built against.
func Words(amount float64, currency bool) string {
	dollars := int64(amount)
	cents := int(math.Round((amount - float64(dollars)) * 100))

	var sb strings.Builder
	sb.WriteString(integerWords(dollars))

	if currency {
		sb.WriteString(" dollars")
	}

	if cents > 0 {
		sb.WriteString(" and ")
		sb.WriteString(chunkWords(cents))
		sb.WriteString(" cents")
	}

	return sb.String()
}

// integerWords converts a non-negative integer, joining nonzero base-1000
// groups most-significant-first with ", ".
func integerWords(n int64) string {
	if n == 0 {
		return "zero"
	}

	// Split into base-1000 groups, least significant first.
	var groups []int
	for v := n; v > 0; v /= 1000 {
		groups = append(groups, int(v%1000))
	}

	var parts []string
	for i := len(groups) - 1; i >= 0; i-- {
		if groups[i] == 0 {
			continue
		}
		part := chunkWords(groups[i])
		if i > 0 && i < len(scaleWords) {
			part += " " + scaleWords[i]
		}
		parts = append(parts, part)
	}

	return strings.Join(parts, ", ")
}

// chunkWords converts one base-1000 group (0-999).
func chunkWords(n int) string {
	if n < 20 {
		return onesWords[n]
	}
	if n < 100 {
		word := tensWords[n/10]
		if n%10 > 0 {
			word += "-" + onesWords[n%10]
		}
		return word
	}
	word := onesWords[n/100] + " hundred"
	if n%100 > 0 {
		word += " and " + chunkWords(n%100)
	}
	return word
}
