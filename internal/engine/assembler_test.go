package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/form-to-payload-conversion/internal/types"
)

func testCatalog() fakeCatalog {
	return fakeCatalog{
		"photo": {"Professional Photography", 350},
		"board": {"Photo Signboard", 320},
	}
}

func testForm() types.FormData {
	return types.FormData{
		Agent: types.AgentInfo{
			AgentName:   "Alice Smith",
			AgentEmail:  "Alice.Smith@Example.com",
			AgentMobile: "0400 111 222",
			OfficeCode:  "ulv",
			OfficeName:  "Ulverstone Office",
		},
		Property: types.PropertyInfo{
			Street:         "24 Example Street",
			Suburb:         "Ulverstone",
			State:          "Tas",
			Postcode:       "7315",
			TitleReference: "145632/7",
			Volume:         "145632",
			Folio:          "7",
			HasAnnexure:    true,
			AnnexureItems: []types.AnnexureItem{
				{Item: "Dishwasher", Description: "Remains with property"},
				{Item: "Garden shed", Description: "As inspected"},
				{Item: "Pool equipment", Description: "Pump and cleaner"},
			},
		},
		Pricing: types.PricingInfo{
			ListingPrice:     "500,000",
			CommissionType:   types.CommissionPercentage,
			CommissionValue:  "2.5",
			GSTTaxable:       true,
			AgencyPeriodType: "days",
			AgencyPeriod:     "90",
		},
		VendorGroup: types.VendorGroup{
			Structure:   types.StructureIndividual,
			VendorCount: 2,
			Vendors: []types.VendorRecord{
				{
					FullName: "john smith",
					Email:    "John@Example.com",
					Mobile:   "0400 333 444",
					Street:   "10 Home Road",
					Suburb:   "Devonport",
					State:    "Tas",
					Postcode: "7310",
				},
				{
					FullName: "jane smith",
					Email:    "Jane@Example.com",
					Mobile:   "0400 555 666",
					Street:   "10 Home Road",
					Suburb:   "Devonport",
					State:    "Tas",
					Postcode: "7310",
				},
			},
		},
		SelectedMarketing: []string{"photo", "board"},
	}
}

func TestAssembleAgentAndProperty(t *testing.T) {
	payload := Assemble(testForm(), testCatalog())

	assert.Equal(t, "ALICE SMITH", payload.AgentName)
	assert.Equal(t, "alice.smith@example.com", payload.AgentEmail)
	assert.Equal(t, "ULV", payload.OfficeCode)
	assert.Equal(t, "ULVERSTONE OFFICE", payload.OfficeName)

	assert.Equal(t, "24 EXAMPLE STREET", payload.PropertyStreet)
	assert.Equal(t, "24 EXAMPLE STREET, ULVERSTONE TAS 7315", payload.PropertyAddressFull)
	require.NotNil(t, payload.TitleReference)
	assert.Equal(t, "145632/7", *payload.TitleReference)
}

func TestAssemblePricingPercentage(t *testing.T) {
	payload := Assemble(testForm(), testCatalog())

	assert.Equal(t, "$500,000.00", payload.ListingPrice)
	assert.Equal(t, "five hundred thousand dollars", payload.ListingPriceWords)

	assert.Equal(t, "percentage", payload.CommissionType)
	require.NotNil(t, payload.CommissionPercentage)
	assert.Equal(t, "2.5", *payload.CommissionPercentage)
	require.NotNil(t, payload.CommissionValue)
	assert.Equal(t, "$12,500.00", *payload.CommissionValue)
	require.NotNil(t, payload.CommissionWords)
	assert.Equal(t, "twelve thousand, five hundred dollars", *payload.CommissionWords)

	// The fixed interpretation is inactive, so its field is null, not "".
	assert.Nil(t, payload.CommissionFixed)
}

func TestAssemblePricingFixed(t *testing.T) {
	form := testForm()
	form.Pricing.CommissionType = types.CommissionFixed
	form.Pricing.CommissionValue = "$15,000"

	payload := Assemble(form, testCatalog())

	require.NotNil(t, payload.CommissionFixed)
	assert.Equal(t, "$15,000.00", *payload.CommissionFixed)
	require.NotNil(t, payload.CommissionValue)
	assert.Equal(t, "$15,000.00", *payload.CommissionValue)
	assert.Nil(t, payload.CommissionPercentage)
}

func TestAssemblePricingREIT(t *testing.T) {
	form := testForm()
	form.Pricing.CommissionType = types.CommissionREIT
	form.Pricing.CommissionValue = ""

	payload := Assemble(form, testCatalog())

	require.NotNil(t, payload.CommissionValue)
	assert.Equal(t, "REIT Gross Scale of Commission", *payload.CommissionValue)
	assert.Nil(t, payload.CommissionFixed)
	assert.Nil(t, payload.CommissionPercentage)
	assert.Nil(t, payload.CommissionWords)
}

func TestAssembleVendorsIndividual(t *testing.T) {
	payload := Assemble(testForm(), testCatalog())

	require.NotNil(t, payload.Vendor1.FullName)
	assert.Equal(t, "JOHN SMITH", *payload.Vendor1.FullName)
	require.NotNil(t, payload.Vendor1.FullNameVal)
	assert.Equal(t, "JOHN SMITH", *payload.Vendor1.FullNameVal)
	require.NotNil(t, payload.Vendor1.Email)
	assert.Equal(t, "john@example.com", *payload.Vendor1.Email)
	require.NotNil(t, payload.Vendor1.AddressFull)
	assert.Equal(t, "10 HOME ROAD, DEVONPORT TAS 7310", *payload.Vendor1.AddressFull)

	assert.Equal(t, "JOHN SMITH, JANE SMITH", payload.AllVendorsNames)
	assert.Equal(t, "John and Jane", payload.AllVendorsFirstNames)
}

func TestAssembleEmptyVendorSlots(t *testing.T) {
	payload := Assemble(testForm(), testCatalog())

	// Slots 3 and 4 exist as the fixed empty-vendor shape.
	for _, v := range []VendorPayload{payload.Vendor3, payload.Vendor4} {
		assert.Nil(t, v.FullName)
		assert.Nil(t, v.FullNameVal)
		assert.Nil(t, v.FullNameID)
		assert.Nil(t, v.Email)
		assert.Nil(t, v.EmailVal)
		assert.Nil(t, v.Mobile)
		assert.Nil(t, v.HomePhone)
		assert.Nil(t, v.Street)
		assert.Nil(t, v.AddressFull)
	}
}

func TestAssembleTrustSuppressesContacts(t *testing.T) {
	form := testForm()
	form.VendorGroup.Structure = types.StructureTrust
	form.VendorGroup.TrusteeType = types.TrusteeIndividual
	form.VendorGroup.TrustName = "The Smith Family"

	payload := Assemble(form, testCatalog())

	want := "JOHN SMITH AND JANE SMITH AS TRUSTEES FOR THE SMITH FAMILY TRUST"
	assert.Equal(t, want, payload.AllVendorsNamesTrust)

	require.NotNil(t, payload.Vendor1.FullNameVal)
	assert.Equal(t, want, *payload.Vendor1.FullNameVal)
	assert.Nil(t, payload.Vendor2.FullNameVal)

	// Entity suppression applies to every active vendor slot.
	for _, v := range []VendorPayload{payload.Vendor1, payload.Vendor2} {
		assert.Nil(t, v.Email)
		assert.Nil(t, v.Mobile)
		assert.Nil(t, v.HomePhone)
		assert.Nil(t, v.Street)
		assert.Nil(t, v.Suburb)
		assert.Nil(t, v.State)
		assert.Nil(t, v.Postcode)
		assert.Nil(t, v.AddressFull)

		// Notification email and KYC name survive.
		assert.NotNil(t, v.EmailVal)
		assert.NotNil(t, v.FullNameID)
	}

	require.NotNil(t, payload.TrustName)
	assert.Equal(t, "THE SMITH FAMILY TRUST", *payload.TrustName)
	require.NotNil(t, payload.TrusteeType)
	assert.Equal(t, "individual", *payload.TrusteeType)
}

func TestAssembleCompanyOfficerBlock(t *testing.T) {
	form := testForm()
	form.VendorGroup.Structure = types.StructureCompany
	form.VendorGroup.CompanyName = "Lee Enterprises Pty Ltd"
	form.VendorGroup.CompanyACN = "987654321"
	form.VendorGroup.VendorCount = 1
	form.VendorGroup.Vendors = []types.VendorRecord{{FullName: "Alex Lee", Email: "alex@example.com"}}

	payload := Assemble(form, testCatalog())

	assert.Equal(t, "DIRECTOR/SECRETARY: ALEX LEE", payload.AllVendorsNamesTrust)
	require.NotNil(t, payload.CompanyName)
	assert.Equal(t, "LEE ENTERPRISES PTY LTD", *payload.CompanyName)
	require.NotNil(t, payload.CompanyACN)
	assert.Equal(t, "987 654 321", *payload.CompanyACN)
	assert.Nil(t, payload.TrusteeType)
}

func TestAssembleAnnexureAndMarketingSlots(t *testing.T) {
	payload := Assemble(testForm(), testCatalog())

	require.NotNil(t, payload.AnnexItem1)
	assert.Equal(t, "1. Dishwasher", *payload.AnnexItem1)
	assert.Equal(t, "Remains with property", *payload.AnnexDes1)
	assert.Equal(t, "3. Pool equipment", *payload.AnnexItem3)
	assert.Nil(t, payload.AnnexItem4)
	assert.Nil(t, payload.AnnexDes13)

	require.NotNil(t, payload.MarketingItem1)
	assert.Equal(t, "1. Professional Photography", *payload.MarketingItem1)
	assert.Equal(t, "$350.00", *payload.MarketingPrice1)
	assert.Equal(t, "2. Photo Signboard", *payload.MarketingItem2)
	assert.Nil(t, payload.MarketingItem3)
	assert.Nil(t, payload.MarketingPrice20)
}

func TestAssembleNaming(t *testing.T) {
	payload := Assemble(testForm(), testCatalog())

	assert.Equal(t, "Example Street 24", payload.FileNameMain)
	assert.Equal(t, "Example Street 24, ULVERSTONE", payload.FileNameFolder)

	fields := DecodeIdentifier(payload.FileName)
	assert.Equal(t, []string{
		"Example Street 24", "ULVERSTONE", "TAS", "7315", "ALICE SMITH",
	}, fields)
}

func TestAssembleIdempotent(t *testing.T) {
	form := testForm()
	first := Assemble(form, testCatalog())
	second := Assemble(form, testCatalog())
	assert.Equal(t, first, second)
}
