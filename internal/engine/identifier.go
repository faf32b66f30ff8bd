// =============================================================================
// Agreement Payload Builder - Composite Identifier Encoder
// =============================================================================
//
// Builds the bracket-delimited composite identifier downstream duplicate
// detection parses back apart, and the reordered "folder name" derived from
// the street address.
//
// The bracket format has no escaping for its own "][" delimiter sequence; a
// field value containing it silently produces an identifier that no longer
// round-trips. That risk is preserved as-is for compatibility with the
// existing downstream parsers.
//
// =============================================================================

package engine

import (
	"regexp"
	"strings"
)

// EncodeIdentifier wraps each field in square brackets and concatenates
// them with no separator: ["a","b"] -> "[a][b]".
func EncodeIdentifier(fields []string) string {
	var sb strings.Builder
	for _, field := range fields {
		sb.WriteByte('[')
		sb.WriteString(field)
		sb.WriteByte(']')
	}
	return sb.String()
}

// DecodeIdentifier reverses EncodeIdentifier for identifiers whose field
// values are free of the "][" sequence: strip one leading "[" and one
// trailing "]", then split on "][".
func DecodeIdentifier(id string) []string {
	if len(id) < 2 || id[0] != '[' || id[len(id)-1] != ']' {
		return nil
	}
	return strings.Split(id[1:len(id)-1], "][")
}

// streetNumberPattern matches a leading numeric token with an optional
// single trailing letter ("24", "24B"), then the rest of the street.
var streetNumberPattern = regexp.MustCompile(`^(\d+[A-Za-z]?)\s+(.*)$`)

// MainName reorders a street address so the street name leads: "24 Example
// Street" becomes "Example Street 24". Streets without a leading number are
// returned unchanged.
func MainName(street string) string {
	m := streetNumberPattern.FindStringSubmatch(street)
	if m == nil {
		return street
	}
	return m[2] + " " + m[1]
}

// FolderName derives the filing-folder name: the reordered street followed
// by the suburb. Casing is the caller's concern; the suburb is normally
// passed in already uppercased.
func FolderName(street, suburb string) string {
	return MainName(street) + ", " + suburb
}
