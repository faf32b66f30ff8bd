// =============================================================================
// Agreement Payload Builder - Entity-Structure Resolver
// =============================================================================
//
// Resolves the vendor group's legal structure into the strings and
// visibility rules the agreement needs: the normalized trust name, the
// canonical signer identity per vendor slot, the aggregate trustee or
// officer phrase, the first-names aggregate, and whether personal contact
// details are suppressed in favor of the entity.
//
// The structure matrix is dispatched on a single tagged enumeration
// (Individual, Company, Trust with individual trustee, Trust with corporate
// trustee) so each rule chain reads top to bottom with no nested boolean
// conditionals.
//
// =============================================================================

package engine

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ginjaninja78/form-to-payload-conversion/internal/types"
)

// entityKind is the flattened structure x trusteeType tag the resolver
// dispatches on.
type entityKind int

const (
	kindIndividual entityKind = iota
	kindCompany
	kindTrustIndividualTrustee
	kindTrustCorporateTrustee
)

func classify(group types.VendorGroup) entityKind {
	switch group.Structure {
	case types.StructureCompany:
		return kindCompany
	case types.StructureTrust:
		if group.TrusteeType == types.TrusteeCompany {
			return kindTrustCorporateTrustee
		}
		return kindTrustIndividualTrustee
	default:
		return kindIndividual
	}
}

// EntityView is the resolver's output: everything the assembler needs about
// the selling entity, with per-slot values indexed by active vendor order.
type EntityView struct {
	// NonIndividual is true for Company and Trust structures. When set,
	// the entity (not the individuals) is the legal party and each
	// vendor's personal contact and address fields are suppressed.
	NonIndividual bool

	// TrustName is the normalized, uppercased trust name; nil unless the
	// structure is a Trust.
	TrustName *string

	// CompanyName and CompanyACN identify the corporate party; nil unless
	// the structure is a Company or a Trust with a corporate trustee. The
	// ACN is regrouped into the standard 3+3+3 digit form.
	CompanyName *string
	CompanyACN  *string

	// DisplayNames holds each active vendor's uppercased display name
	// (name on title when it differs, otherwise full name).
	DisplayNames []string

	// SignerIdentities holds each active vendor slot's canonical signer
	// identity (full_name_val). For non-individual structures only the
	// first slot carries entity identity; later slots are nil.
	SignerIdentities []*string

	// AggregateNames is the all-vendors phrase: the plain name list for
	// individuals, the trustee phrase for trusts, the officer block for
	// companies.
	AggregateNames string

	// FirstNames is the title-cased natural-language join of each active
	// vendor's first name.
	FirstNames string
}

var titleCaser = cases.Title(language.English)

// ResolveEntity derives the EntityView for a vendor group. Pure; the group
// is read, never written.
func ResolveEntity(group types.VendorGroup) EntityView {
	kind := classify(group)
	vendors := group.ActiveVendors()

	view := EntityView{
		NonIndividual: kind != kindIndividual,
		DisplayNames:  make([]string, len(vendors)),
	}

	for i, v := range vendors {
		view.DisplayNames[i] = strings.ToUpper(strings.TrimSpace(v.DisplayName()))
	}

	if group.Structure == types.StructureTrust {
		normalized := NormalizeTrustName(group.TrustName)
		view.TrustName = &normalized
	}

	if kind == kindCompany || kind == kindTrustCorporateTrustee {
		name := strings.ToUpper(strings.TrimSpace(group.CompanyName))
		acn := FormatACN(group.CompanyACN)
		view.CompanyName = &name
		view.CompanyACN = &acn
	}

	view.AggregateNames = aggregateNames(kind, group, view)
	view.SignerIdentities = signerIdentities(kind, view)
	view.FirstNames = firstNamesAggregate(vendors)

	return view
}

// NormalizeTrustName trims the captured trust name, appends " TRUST" unless
// the name already ends with the word (checked case-insensitively before
// uppercasing), and uppercases the result for display.
func NormalizeTrustName(raw string) string {
	name := strings.TrimSpace(raw)
	if !strings.HasSuffix(strings.ToUpper(name), "TRUST") {
		name += " TRUST"
	}
	return strings.ToUpper(name)
}

// FormatACN regroups a 9-digit Australian Company Number as "nnn nnn nnn".
// Non-digit characters in the input are discarded first.
func FormatACN(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	s := digits.String()
	var groups []string
	for len(s) > 3 {
		groups = append(groups, s[:3])
		s = s[3:]
	}
	if s != "" {
		groups = append(groups, s)
	}
	return strings.Join(groups, " ")
}

// corporatePartyName composes the corporate signer identity:
// "<COMPANY> (ACN nnn nnn nnn)", plus " AS TRUSTEE FOR <TRUST>" when the
// company acts as trustee.
func corporatePartyName(kind entityKind, view EntityView) string {
	name := *view.CompanyName + " (ACN " + *view.CompanyACN + ")"
	if kind == kindTrustCorporateTrustee {
		name += " AS TRUSTEE FOR " + *view.TrustName
	}
	return name
}

// aggregateNames builds the all-vendors phrase for the structure.
func aggregateNames(kind entityKind, group types.VendorGroup, view EntityView) string {
	names := view.DisplayNames

	switch kind {
	case kindIndividual:
		return strings.Join(names, ", ")

	case kindTrustIndividualTrustee, kindTrustCorporateTrustee:
		role := " as trustee for "
		if len(names) > 1 {
			role = " as trustees for "
		}
		// Compose with lowercase joiners, then uppercase the whole phrase
		// in one place.
		return strings.ToUpper(joinNatural(names) + role + *view.TrustName)

	case kindCompany:
		if !group.HasMultipleDirectors || len(names) < 2 {
			return "DIRECTOR/SECRETARY: " + first(names)
		}
		// Fixed 5-space gap between the two officer labels.
		return "DIRECTOR: " + names[0] + "     SECRETARY: " + names[1]
	}

	return strings.Join(names, ", ")
}

// signerIdentities derives full_name_val per active vendor slot.
func signerIdentities(kind entityKind, view EntityView) []*string {
	identities := make([]*string, len(view.DisplayNames))

	if kind == kindIndividual {
		// Every vendor signs independently under their own name.
		for i := range view.DisplayNames {
			identities[i] = &view.DisplayNames[i]
		}
		return identities
	}

	if len(identities) == 0 {
		return identities
	}

	// Only the first slot carries entity identity.
	var identity string
	if kind == kindTrustIndividualTrustee {
		identity = view.AggregateNames
	} else {
		identity = corporatePartyName(kind, view)
	}
	identities[0] = &identity
	return identities
}

// firstNamesAggregate joins each vendor's first name, title-cased, in the
// natural-language form ("A", "A and B", "A, B, and C").
func firstNamesAggregate(vendors []types.VendorRecord) string {
	names := make([]string, 0, len(vendors))
	for _, v := range vendors {
		fields := strings.Fields(v.DisplayName())
		if len(fields) == 0 {
			continue
		}
		names = append(names, titleCaser.String(strings.ToLower(fields[0])))
	}
	return joinNatural(names)
}

// joinNatural joins names as natural language: "A", "A and B",
// "A, B, and C".
func joinNatural(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}

func first(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return names[0]
}
