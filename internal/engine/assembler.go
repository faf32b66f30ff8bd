// =============================================================================
// Agreement Payload Builder - Payload Assembler
// =============================================================================
//
// Orchestrates the engine components into the final flat record. Pure and
// total on well-formed input: no I/O, no clock, no randomness, so the same
// FormData always assembles to byte-identical output and recomputing a
// payload for a delivery retry is always safe.
//
// Casing convention: free-text legal and display fields are uppercased,
// email addresses are lowercased, generated phrasing (number words, REIT
// scale reference) keeps its own casing.
//
// =============================================================================

package engine

import (
	"strings"

	"github.com/ginjaninja78/form-to-payload-conversion/internal/types"
)

// Assemble converts one validated form submission into its submission
// payload. Preconditions follow the input contract: 1-4 vendors, at most 13
// annexure items, a recognized commission mode. The catalog supplies the
// marketing reference data.
func Assemble(form types.FormData, catalog MarketingCatalog) SubmissionPayload {
	view := ResolveEntity(form.VendorGroup)

	payload := SubmissionPayload{
		AgentName:   up(form.Agent.AgentName),
		AgentEmail:  low(form.Agent.AgentEmail),
		AgentMobile: strings.TrimSpace(form.Agent.AgentMobile),
		OfficeCode:  up(form.Agent.OfficeCode),
		OfficeName:  up(form.Agent.OfficeName),
	}

	assembleProperty(&payload, form.Property)
	assemblePricing(&payload, form.Pricing)
	assembleEntity(&payload, form.VendorGroup, view)
	assembleVendors(&payload, form.VendorGroup, view)
	assembleNaming(&payload, form)

	payload.setAnnexure(PackAnnexure(form.Property))
	payload.setMarketing(PackMarketing(form.SelectedMarketing, catalog))

	return payload
}

func assembleProperty(payload *SubmissionPayload, property types.PropertyInfo) {
	street := up(property.Street)
	suburb := up(property.Suburb)
	state := up(property.State)
	postcode := strings.TrimSpace(property.Postcode)

	payload.PropertyStreet = street
	payload.PropertySuburb = suburb
	payload.PropertyState = state
	payload.PropertyPostcode = postcode
	payload.PropertyAddressFull = street + ", " + suburb + " " + state + " " + postcode
	payload.TitleReference = upPtr(property.TitleReference)
	payload.Volume = upPtr(property.Volume)
	payload.Folio = upPtr(property.Folio)
	payload.HasAnnexure = property.HasAnnexure
}

func assemblePricing(payload *SubmissionPayload, pricing types.PricingInfo) {
	price := ParseMoney(pricing.ListingPrice)
	payload.ListingPrice = FormatCurrency(price)
	payload.ListingPriceWords = Words(price, true)
	payload.CommissionType = string(pricing.CommissionType)
	payload.GSTTaxable = pricing.GSTTaxable
	payload.AgencyPeriodType = up(pricing.AgencyPeriodType)
	payload.AgencyPeriod = up(pricing.AgencyPeriod)

	amount := Commission(pricing.CommissionType, pricing.CommissionValue, pricing.ListingPrice)

	// Exactly one commission interpretation is populated; the other
	// fields stay null rather than carrying stale values.
	switch pricing.CommissionType {
	case types.CommissionFixed:
		figure := FormatCurrency(*amount)
		words := Words(*amount, true)
		payload.CommissionFixed = &figure
		payload.CommissionValue = &figure
		payload.CommissionWords = &words

	case types.CommissionPercentage:
		percentage := strings.TrimSpace(pricing.CommissionValue)
		figure := FormatCurrency(*amount)
		words := Words(*amount, true)
		payload.CommissionPercentage = &percentage
		payload.CommissionValue = &figure
		payload.CommissionWords = &words

	case types.CommissionREIT:
		phrase := REITScalePhrase
		payload.CommissionValue = &phrase
	}
}

func assembleEntity(payload *SubmissionPayload, group types.VendorGroup, view EntityView) {
	payload.VendorStructure = up(string(group.Structure))
	payload.CompanyName = view.CompanyName
	payload.CompanyACN = view.CompanyACN
	payload.TrustName = view.TrustName
	payload.VendorCount = group.VendorCount
	payload.AllVendorsNames = strings.Join(view.DisplayNames, ", ")
	payload.AllVendorsNamesTrust = view.AggregateNames
	payload.AllVendorsFirstNames = view.FirstNames

	if group.Structure == types.StructureTrust {
		trustee := string(group.TrusteeType)
		payload.TrusteeType = &trustee
	}
}

func assembleVendors(payload *SubmissionPayload, group types.VendorGroup, view EntityView) {
	vendors := group.ActiveVendors()
	slots := payload.vendorSlots()

	for i, slot := range slots {
		if i >= len(vendors) {
			// The fixed empty-vendor shape: present, all null.
			continue
		}

		v := vendors[i]
		slot.FullName = &view.DisplayNames[i]
		slot.FullNameVal = view.SignerIdentities[i]
		slot.FullNameID = upPtr(v.FullName)
		slot.EmailVal = lowPtr(v.Email)

		if view.NonIndividual {
			// The entity, not the individual, is the legal party:
			// personal contact and address fields stay null.
			continue
		}

		slot.Email = lowPtr(v.Email)
		slot.Mobile = trimPtr(v.Mobile)
		slot.HomePhone = trimPtr(v.HomePhone)
		slot.Street = upPtr(v.Street)
		slot.Suburb = upPtr(v.Suburb)
		slot.State = upPtr(v.State)
		slot.Postcode = trimPtr(v.Postcode)
		slot.AddressFull = vendorAddressFull(v)
	}
}

// assembleNaming derives the document naming block: the reordered street as
// the main name, the filing folder, and the bracket-encoded composite
// identifier duplicate detection parses back apart.
func assembleNaming(payload *SubmissionPayload, form types.FormData) {
	street := strings.TrimSpace(form.Property.Street)
	main := MainName(street)

	payload.FileNameMain = main
	payload.FileNameFolder = FolderName(street, up(form.Property.Suburb))
	payload.FileName = EncodeIdentifier([]string{
		main,
		up(form.Property.Suburb),
		up(form.Property.State),
		strings.TrimSpace(form.Property.Postcode),
		up(form.Agent.AgentName),
	})
}

func vendorAddressFull(v types.VendorRecord) *string {
	if strings.TrimSpace(v.Street) == "" {
		return nil
	}
	full := up(v.Street) + ", " + up(v.Suburb) + " " + up(v.State) + " " + strings.TrimSpace(v.Postcode)
	return &full
}

// =============================================================================
// CASING HELPERS
// =============================================================================

func up(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func low(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func upPtr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v := up(s)
	return &v
}

func lowPtr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v := low(s)
	return &v
}

func trimPtr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v := strings.TrimSpace(s)
	return &v
}
