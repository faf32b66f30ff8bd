package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/form-to-payload-conversion/internal/types"
)

func validForm() *types.FormData {
	return &types.FormData{
		Agent: types.AgentInfo{
			AgentName:   "Alice Smith",
			AgentEmail:  "alice@example.com",
			AgentMobile: "0400 111 222",
			OfficeCode:  "ULV",
			OfficeName:  "Ulverstone Office",
		},
		Property: types.PropertyInfo{
			Street:   "24 Example Street",
			Suburb:   "Ulverstone",
			State:    "TAS",
			Postcode: "7315",
		},
		Pricing: types.PricingInfo{
			ListingPrice:     "500,000",
			CommissionType:   types.CommissionPercentage,
			CommissionValue:  "2.5",
			AgencyPeriodType: "days",
			AgencyPeriod:     "90",
		},
		VendorGroup: types.VendorGroup{
			Structure:   types.StructureIndividual,
			VendorCount: 1,
			Vendors: []types.VendorRecord{
				{FullName: "John Smith", Email: "john@example.com"},
			},
		},
	}
}

func fieldNames(result *ValidationResult) []string {
	names := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		names = append(names, e.Field)
	}
	return names
}

func TestValidFormPasses(t *testing.T) {
	result := New().ValidateForm(validForm())
	assert.True(t, result.IsValid, "unexpected errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
}

func TestVendorCountOutOfRange(t *testing.T) {
	form := validForm()
	form.VendorGroup.VendorCount = 5

	result := New().ValidateForm(form)
	require.False(t, result.IsValid)
	assert.Contains(t, fieldNames(result), "vendorGroup.vendorCount")
}

func TestVendorRecordsShorterThanCount(t *testing.T) {
	form := validForm()
	form.VendorGroup.VendorCount = 3

	result := New().ValidateForm(form)
	require.False(t, result.IsValid)
	assert.Contains(t, fieldNames(result), "vendorGroup.vendors")
}

func TestActiveVendorMissingFullName(t *testing.T) {
	form := validForm()
	form.VendorGroup.Vendors[0].FullName = "   "

	result := New().ValidateForm(form)
	require.False(t, result.IsValid)
	assert.Contains(t, fieldNames(result), "vendorGroup.vendors[0].fullName")
}

func TestNameOnTitleFlaggedButMissing(t *testing.T) {
	form := validForm()
	form.VendorGroup.Vendors[0].HasDifferentNameOnTitle = true

	result := New().ValidateForm(form)
	require.False(t, result.IsValid)
	assert.Contains(t, fieldNames(result), "vendorGroup.vendors[0].nameOnTitle")
}

func TestCompanyRequiresCompanyName(t *testing.T) {
	form := validForm()
	form.VendorGroup.Structure = types.StructureCompany

	result := New().ValidateForm(form)
	require.False(t, result.IsValid)
	assert.Contains(t, fieldNames(result), "vendorGroup.companyName")
}

func TestTrustRequiresNameAndTrusteeType(t *testing.T) {
	form := validForm()
	form.VendorGroup.Structure = types.StructureTrust

	result := New().ValidateForm(form)
	require.False(t, result.IsValid)

	names := fieldNames(result)
	assert.Contains(t, names, "vendorGroup.trustName")
	assert.Contains(t, names, "vendorGroup.trusteeType")
}

func TestCorporateTrusteeRequiresCompanyName(t *testing.T) {
	form := validForm()
	form.VendorGroup.Structure = types.StructureTrust
	form.VendorGroup.TrustName = "Smith Family"
	form.VendorGroup.TrusteeType = types.TrusteeCompany

	result := New().ValidateForm(form)
	require.False(t, result.IsValid)
	assert.Contains(t, fieldNames(result), "vendorGroup.companyName")
}

func TestAnnexureOverCapacity(t *testing.T) {
	form := validForm()
	form.Property.HasAnnexure = true
	for i := 0; i < types.AnnexureCapacity+1; i++ {
		form.Property.AnnexureItems = append(form.Property.AnnexureItems,
			types.AnnexureItem{Item: "Item", Description: "Desc"})
	}

	result := New().ValidateForm(form)
	require.False(t, result.IsValid)
	assert.Contains(t, fieldNames(result), "property.annexureItems")
}

func TestAnnexureEnabledWithoutItems(t *testing.T) {
	form := validForm()
	form.Property.HasAnnexure = true

	result := New().ValidateForm(form)
	require.False(t, result.IsValid)
	assert.Contains(t, fieldNames(result), "property.annexureItems")
}

func TestCommissionValueRequired(t *testing.T) {
	form := validForm()
	form.Pricing.CommissionValue = ""

	result := New().ValidateForm(form)
	require.False(t, result.IsValid)
	assert.Contains(t, fieldNames(result), "pricing.commissionValue")
}

func TestREITNeedsNoCommissionValue(t *testing.T) {
	form := validForm()
	form.Pricing.CommissionType = types.CommissionREIT
	form.Pricing.CommissionValue = ""

	result := New().ValidateForm(form)
	assert.True(t, result.IsValid, "unexpected errors: %v", result.Errors)
}
