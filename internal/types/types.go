// =============================================================================
// Agreement Payload Builder - Shared Types
// =============================================================================
//
// This package contains the form submission input model shared across the
// modules that consume it, kept separate to avoid import cycles. Types
// defined here are used by:
//   - engine
//   - validation
//   - formparser
//   - builder
//
// The JSON tags match the field names produced by the capture UI. A form
// submission is built once by the caller, validated, and handed to the
// engine unchanged; nothing in this package is mutated after parsing.
//
// =============================================================================

package types

// =============================================================================
// ENUMERATIONS
// =============================================================================

// Structure identifies the legal structure of the vendor group.
type Structure string

const (
	StructureIndividual Structure = "Individual"
	StructureCompany    Structure = "Company"
	StructureTrust      Structure = "Trust"
)

// TrusteeType identifies who acts as trustee when Structure is Trust.
// It carries no meaning for the other structures.
type TrusteeType string

const (
	TrusteeIndividual TrusteeType = "individual"
	TrusteeCompany    TrusteeType = "company"
)

// CommissionMode selects how the agreed commission is expressed.
// Exactly one interpretation is active per submission.
type CommissionMode string

const (
	CommissionFixed      CommissionMode = "fixed"
	CommissionPercentage CommissionMode = "percentage"
	CommissionREIT       CommissionMode = "reit"
)

// AnnexureCapacity is the number of annexure slots the agreement carries.
const AnnexureCapacity = 13

// MarketingCapacity is the number of marketing line-item slots the
// agreement carries.
const MarketingCapacity = 20

// MaxVendors is the number of vendor blocks the agreement carries.
const MaxVendors = 4

// =============================================================================
// FORM SUBMISSION MODEL
// =============================================================================

// FormData is one complete agreement form submission. It is the sole input
// to the synthesis engine. Preconditions (vendor count bounds, annexure
// bounds, commission mode) are enforced by the validation layer before the
// engine ever sees the value.
type FormData struct {
	Agent             AgentInfo    `json:"agent"`
	Property          PropertyInfo `json:"property"`
	Pricing           PricingInfo  `json:"pricing"`
	VendorGroup       VendorGroup  `json:"vendorGroup"`
	SelectedMarketing []string     `json:"selectedMarketing"`
}

// AgentInfo identifies the listing agent and their office.
type AgentInfo struct {
	AgentName   string `json:"agentName" validate:"required"`
	AgentEmail  string `json:"agentEmail" validate:"omitempty,email"`
	AgentMobile string `json:"agentMobile"`
	OfficeCode  string `json:"officeCode"`
	OfficeName  string `json:"officeName"`
}

// PropertyInfo describes the listed property, its legal references, and the
// optional annexure of special conditions and chattels.
type PropertyInfo struct {
	Street         string `json:"street" validate:"required"`
	Suburb         string `json:"suburb" validate:"required"`
	State          string `json:"state" validate:"required"`
	Postcode       string `json:"postcode" validate:"required"`
	TitleReference string `json:"titleReference"`
	Volume         string `json:"volume"`
	Folio          string `json:"folio"`

	// HasAnnexure toggles the annexure block. When false the annexure
	// items are ignored entirely.
	HasAnnexure   bool           `json:"hasAnnexure"`
	AnnexureItems []AnnexureItem `json:"annexureItems" validate:"max=13"`
}

// AnnexureItem is one numbered special-condition or chattel entry.
type AnnexureItem struct {
	Item        string `json:"item"`
	Description string `json:"description"`
}

// PricingInfo carries the listing price and the commission agreement.
// Price and commission values arrive as raw strings exactly as typed,
// possibly containing "$" and "," characters.
type PricingInfo struct {
	ListingPrice     string         `json:"listingPrice" validate:"required"`
	CommissionType   CommissionMode `json:"commissionType" validate:"oneof=fixed percentage reit"`
	CommissionValue  string         `json:"commissionValue"`
	GSTTaxable       bool           `json:"gstTaxable"`
	AgencyPeriodType string         `json:"agencyPeriodType"`
	AgencyPeriod     string         `json:"agencyPeriod"`
}

// VendorGroup describes the selling entity: its legal structure and the
// individual vendor records behind it. Vendors beyond VendorCount are
// ignored.
type VendorGroup struct {
	Structure   Structure   `json:"structure" validate:"oneof=Individual Company Trust"`
	TrusteeType TrusteeType `json:"trusteeType" validate:"omitempty,oneof=individual company"`

	CompanyName string `json:"companyName"`
	CompanyACN  string `json:"companyACN"`
	TrustName   string `json:"trustName"`

	// HasMultipleDirectors switches the company signing block between the
	// combined DIRECTOR/SECRETARY form and the two-officer form.
	HasMultipleDirectors bool `json:"hasMultipleDirectors"`

	VendorCount int            `json:"vendorCount" validate:"min=1,max=4"`
	Vendors     []VendorRecord `json:"vendors"`
}

// VendorRecord is one natural person behind the sale.
type VendorRecord struct {
	FullName                string `json:"fullName"`
	HasDifferentNameOnTitle bool   `json:"hasDifferentNameOnTitle"`
	NameOnTitle             string `json:"nameOnTitle"`

	Email     string `json:"email" validate:"omitempty,email"`
	Mobile    string `json:"mobile"`
	HomePhone string `json:"homePhone"`

	Street   string `json:"street"`
	Suburb   string `json:"suburb"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`
}

// DisplayName returns the name the agreement displays for this vendor: the
// name on title when it differs, otherwise the full name. Casing is left to
// the caller.
func (v VendorRecord) DisplayName() string {
	if v.HasDifferentNameOnTitle {
		return v.NameOnTitle
	}
	return v.FullName
}

// ActiveVendors returns the vendor records the submission actually covers,
// in form order. Extra trailing records are dropped; a short slice is
// returned as-is (the validation layer rejects that case before the engine
// runs).
func (g VendorGroup) ActiveVendors() []VendorRecord {
	if g.VendorCount > 0 && g.VendorCount <= len(g.Vendors) {
		return g.Vendors[:g.VendorCount]
	}
	return g.Vendors
}
