// =============================================================================
// Agreement Payload Builder - Submission Payload Record
// =============================================================================
//
// The flat, webhook-ready record the engine produces. Field names are a wire
// contract: downstream document generation and duplicate detection key on
// them, and every slot in a fixed range exists in every payload (null when
// unused) so consumers never have to probe for presence.
//
// =============================================================================

package engine

import "github.com/ginjaninja78/form-to-payload-conversion/internal/types"

// VendorPayload is one of the four fixed vendor blocks. Slots beyond the
// active vendor count are entirely null but always present. For Company and
// Trust structures the personal contact and address fields are null even in
// active slots; only the notification email (email_val) and the KYC name
// (full_name_id) survive, the entity being the legal party.
type VendorPayload struct {
	FullName    *string `json:"full_name"`
	FullNameVal *string `json:"full_name_val"`
	FullNameID  *string `json:"full_name_id"`

	Email    *string `json:"email"`
	EmailVal *string `json:"email_val"`

	Mobile    *string `json:"mobile"`
	HomePhone *string `json:"home_phone"`

	Street      *string `json:"street"`
	Suburb      *string `json:"suburb"`
	State       *string `json:"state"`
	Postcode    *string `json:"postcode"`
	AddressFull *string `json:"address_full"`
}

// SubmissionPayload is the complete flat record for one agreement
// submission. Nil means "not applicable" for the current entity structure
// or commission mode; empty strings are never used for that purpose.
type SubmissionPayload struct {
	// Agent and office.
	AgentName   string `json:"agent_name"`
	AgentEmail  string `json:"agent_email"`
	AgentMobile string `json:"agent_mobile"`
	OfficeCode  string `json:"office_code"`
	OfficeName  string `json:"office_name"`

	// Property and legal references.
	PropertyStreet      string  `json:"property_street"`
	PropertySuburb      string  `json:"property_suburb"`
	PropertyState       string  `json:"property_state"`
	PropertyPostcode    string  `json:"property_postcode"`
	PropertyAddressFull string  `json:"property_address_full"`
	TitleReference      *string `json:"title_reference"`
	Volume              *string `json:"volume"`
	Folio               *string `json:"folio"`
	HasAnnexure         bool    `json:"has_annexure"`

	// Pricing and commission. Exactly one commission interpretation is
	// populated; the rest stay null.
	ListingPrice         string  `json:"listing_price"`
	ListingPriceWords    string  `json:"listing_price_words"`
	CommissionType       string  `json:"commission_type"`
	CommissionFixed      *string `json:"commission_fixed"`
	CommissionPercentage *string `json:"commission_percentage"`
	CommissionValue      *string `json:"commission_value"`
	CommissionWords      *string `json:"commission_words"`
	GSTTaxable           bool    `json:"gst_taxable"`
	AgencyPeriodType     string  `json:"agency_period_type"`
	AgencyPeriod         string  `json:"agency_period"`

	// Entity structure.
	VendorStructure      string  `json:"vendor_structure"`
	TrusteeType          *string `json:"trustee_type"`
	CompanyName          *string `json:"company_name"`
	CompanyACN           *string `json:"company_acn"`
	TrustName            *string `json:"trust_name"`
	VendorCount          int     `json:"vendor_count"`
	AllVendorsNames      string  `json:"all_vendors_names"`
	AllVendorsNamesTrust string  `json:"all_vendors_names_trust"`
	AllVendorsFirstNames string  `json:"all_vendors_first_names"`

	// Fixed vendor blocks.
	Vendor1 VendorPayload `json:"vendor_1"`
	Vendor2 VendorPayload `json:"vendor_2"`
	Vendor3 VendorPayload `json:"vendor_3"`
	Vendor4 VendorPayload `json:"vendor_4"`

	// Document naming.
	FileName       string `json:"file_name"`
	FileNameFolder string `json:"file_name_folder"`
	FileNameMain   string `json:"file_name_main"`

	// Annexure slot range (capacity 13).
	AnnexItem1  *string `json:"annex_item_1"`
	AnnexItem2  *string `json:"annex_item_2"`
	AnnexItem3  *string `json:"annex_item_3"`
	AnnexItem4  *string `json:"annex_item_4"`
	AnnexItem5  *string `json:"annex_item_5"`
	AnnexItem6  *string `json:"annex_item_6"`
	AnnexItem7  *string `json:"annex_item_7"`
	AnnexItem8  *string `json:"annex_item_8"`
	AnnexItem9  *string `json:"annex_item_9"`
	AnnexItem10 *string `json:"annex_item_10"`
	AnnexItem11 *string `json:"annex_item_11"`
	AnnexItem12 *string `json:"annex_item_12"`
	AnnexItem13 *string `json:"annex_item_13"`

	AnnexDes1  *string `json:"annex_des_1"`
	AnnexDes2  *string `json:"annex_des_2"`
	AnnexDes3  *string `json:"annex_des_3"`
	AnnexDes4  *string `json:"annex_des_4"`
	AnnexDes5  *string `json:"annex_des_5"`
	AnnexDes6  *string `json:"annex_des_6"`
	AnnexDes7  *string `json:"annex_des_7"`
	AnnexDes8  *string `json:"annex_des_8"`
	AnnexDes9  *string `json:"annex_des_9"`
	AnnexDes10 *string `json:"annex_des_10"`
	AnnexDes11 *string `json:"annex_des_11"`
	AnnexDes12 *string `json:"annex_des_12"`
	AnnexDes13 *string `json:"annex_des_13"`

	// Marketing slot range (capacity 20).
	MarketingItem1  *string `json:"marketing_item_1"`
	MarketingItem2  *string `json:"marketing_item_2"`
	MarketingItem3  *string `json:"marketing_item_3"`
	MarketingItem4  *string `json:"marketing_item_4"`
	MarketingItem5  *string `json:"marketing_item_5"`
	MarketingItem6  *string `json:"marketing_item_6"`
	MarketingItem7  *string `json:"marketing_item_7"`
	MarketingItem8  *string `json:"marketing_item_8"`
	MarketingItem9  *string `json:"marketing_item_9"`
	MarketingItem10 *string `json:"marketing_item_10"`
	MarketingItem11 *string `json:"marketing_item_11"`
	MarketingItem12 *string `json:"marketing_item_12"`
	MarketingItem13 *string `json:"marketing_item_13"`
	MarketingItem14 *string `json:"marketing_item_14"`
	MarketingItem15 *string `json:"marketing_item_15"`
	MarketingItem16 *string `json:"marketing_item_16"`
	MarketingItem17 *string `json:"marketing_item_17"`
	MarketingItem18 *string `json:"marketing_item_18"`
	MarketingItem19 *string `json:"marketing_item_19"`
	MarketingItem20 *string `json:"marketing_item_20"`

	MarketingPrice1  *string `json:"marketing_price_1"`
	MarketingPrice2  *string `json:"marketing_price_2"`
	MarketingPrice3  *string `json:"marketing_price_3"`
	MarketingPrice4  *string `json:"marketing_price_4"`
	MarketingPrice5  *string `json:"marketing_price_5"`
	MarketingPrice6  *string `json:"marketing_price_6"`
	MarketingPrice7  *string `json:"marketing_price_7"`
	MarketingPrice8  *string `json:"marketing_price_8"`
	MarketingPrice9  *string `json:"marketing_price_9"`
	MarketingPrice10 *string `json:"marketing_price_10"`
	MarketingPrice11 *string `json:"marketing_price_11"`
	MarketingPrice12 *string `json:"marketing_price_12"`
	MarketingPrice13 *string `json:"marketing_price_13"`
	MarketingPrice14 *string `json:"marketing_price_14"`
	MarketingPrice15 *string `json:"marketing_price_15"`
	MarketingPrice16 *string `json:"marketing_price_16"`
	MarketingPrice17 *string `json:"marketing_price_17"`
	MarketingPrice18 *string `json:"marketing_price_18"`
	MarketingPrice19 *string `json:"marketing_price_19"`
	MarketingPrice20 *string `json:"marketing_price_20"`
}

// vendorSlots exposes the four fixed vendor blocks for index-driven fill.
func (p *SubmissionPayload) vendorSlots() [types.MaxVendors]*VendorPayload {
	return [types.MaxVendors]*VendorPayload{
		&p.Vendor1, &p.Vendor2, &p.Vendor3, &p.Vendor4,
	}
}

// setAnnexure copies the packed 13-slot range into the flat fields.
func (p *SubmissionPayload) setAnnexure(slots []Slot) {
	targets := [types.AnnexureCapacity]struct{ item, value **string }{
		{&p.AnnexItem1, &p.AnnexDes1},
		{&p.AnnexItem2, &p.AnnexDes2},
		{&p.AnnexItem3, &p.AnnexDes3},
		{&p.AnnexItem4, &p.AnnexDes4},
		{&p.AnnexItem5, &p.AnnexDes5},
		{&p.AnnexItem6, &p.AnnexDes6},
		{&p.AnnexItem7, &p.AnnexDes7},
		{&p.AnnexItem8, &p.AnnexDes8},
		{&p.AnnexItem9, &p.AnnexDes9},
		{&p.AnnexItem10, &p.AnnexDes10},
		{&p.AnnexItem11, &p.AnnexDes11},
		{&p.AnnexItem12, &p.AnnexDes12},
		{&p.AnnexItem13, &p.AnnexDes13},
	}
	for i, t := range targets {
		*t.item = slots[i].Item
		*t.value = slots[i].Value
	}
}

// setMarketing copies the packed 20-slot range into the flat fields.
func (p *SubmissionPayload) setMarketing(slots []Slot) {
	targets := [types.MarketingCapacity]struct{ item, value **string }{
		{&p.MarketingItem1, &p.MarketingPrice1},
		{&p.MarketingItem2, &p.MarketingPrice2},
		{&p.MarketingItem3, &p.MarketingPrice3},
		{&p.MarketingItem4, &p.MarketingPrice4},
		{&p.MarketingItem5, &p.MarketingPrice5},
		{&p.MarketingItem6, &p.MarketingPrice6},
		{&p.MarketingItem7, &p.MarketingPrice7},
		{&p.MarketingItem8, &p.MarketingPrice8},
		{&p.MarketingItem9, &p.MarketingPrice9},
		{&p.MarketingItem10, &p.MarketingPrice10},
		{&p.MarketingItem11, &p.MarketingPrice11},
		{&p.MarketingItem12, &p.MarketingPrice12},
		{&p.MarketingItem13, &p.MarketingPrice13},
		{&p.MarketingItem14, &p.MarketingPrice14},
		{&p.MarketingItem15, &p.MarketingPrice15},
		{&p.MarketingItem16, &p.MarketingPrice16},
		{&p.MarketingItem17, &p.MarketingPrice17},
		{&p.MarketingItem18, &p.MarketingPrice18},
		{&p.MarketingItem19, &p.MarketingPrice19},
		{&p.MarketingItem20, &p.MarketingPrice20},
	}
	for i, t := range targets {
		*t.item = slots[i].Item
		*t.value = slots[i].Value
	}
}
