// =============================================================================
// Agreement Payload Builder - Precondition Validation
// =============================================================================
//
// The synthesis engine assumes its input invariants hold; this module is the
// enforcement point in front of it. Field-level rules live as struct tags on
// the form model (go-playground/validator); the cross-field rules the tag
// language can't express (vendor list sizing, structure-specific required
// names, annexure bounds) are checked here by hand.
//
// Validation never mutates the form.
//
// =============================================================================

package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ginjaninja78/form-to-payload-conversion/internal/types"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ValidationError describes a single failed precondition.
type ValidationError struct {
	// Field is the offending field in dotted form, e.g.
	// "vendorGroup.vendorCount".
	Field string

	// Rule names the violated rule ("min", "max", "required", ...).
	Rule string

	// Message is the human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("field '%s' violates rule '%s': %s", e.Field, e.Rule, e.Message)
}

// ValidationResult collects every failed precondition for one form.
type ValidationResult struct {
	IsValid bool
	Errors  []*ValidationError
}

func (r *ValidationResult) add(field, rule, message string) {
	r.Errors = append(r.Errors, &ValidationError{Field: field, Rule: rule, Message: message})
}

// =============================================================================
// VALIDATOR
// =============================================================================

// Validator checks form submissions against the engine's preconditions.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ValidateForm checks one form submission. The returned result lists every
// violation found; IsValid is true only when there are none.
func (v *Validator) ValidateForm(form *types.FormData) *ValidationResult {
	result := &ValidationResult{}

	v.runTagRules(form, result)
	checkVendorGroup(form.VendorGroup, result)
	checkAnnexure(form.Property, result)
	checkCommission(form.Pricing, result)

	result.IsValid = len(result.Errors) == 0
	return result
}

// runTagRules evaluates the struct-tag rules and converts the library's
// error values into ValidationErrors.
func (v *Validator) runTagRules(form *types.FormData, result *ValidationResult) {
	err := v.validate.Struct(form)
	if err == nil {
		return
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		result.add("form", "struct", err.Error())
		return
	}

	for _, fe := range fieldErrors {
		result.add(namespaceToField(fe.Namespace()), fe.Tag(),
			fmt.Sprintf("value %q fails '%s'", fmt.Sprint(fe.Value()), fe.Tag()))
	}
}

// namespaceToField strips the root struct name from a validator namespace:
// "FormData.VendorGroup.VendorCount" -> "vendorGroup.vendorCount".
func namespaceToField(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToLower(p[:1]) + p[1:]
	}
	return strings.Join(parts, ".")
}

// =============================================================================
// CROSS-FIELD RULES
// =============================================================================

func checkVendorGroup(group types.VendorGroup, result *ValidationResult) {
	if group.VendorCount >= 1 && len(group.Vendors) < group.VendorCount {
		result.add("vendorGroup.vendors", "min",
			fmt.Sprintf("%d vendor record(s) supplied for vendorCount %d",
				len(group.Vendors), group.VendorCount))
	}

	for i, vendor := range group.ActiveVendors() {
		if strings.TrimSpace(vendor.FullName) == "" {
			result.add(fmt.Sprintf("vendorGroup.vendors[%d].fullName", i),
				"required", "active vendor has no full name")
		}
		if vendor.HasDifferentNameOnTitle && strings.TrimSpace(vendor.NameOnTitle) == "" {
			result.add(fmt.Sprintf("vendorGroup.vendors[%d].nameOnTitle", i),
				"required", "name on title flagged as different but not supplied")
		}
	}

	switch group.Structure {
	case types.StructureCompany:
		if strings.TrimSpace(group.CompanyName) == "" {
			result.add("vendorGroup.companyName", "required",
				"company structure requires a company name")
		}

	case types.StructureTrust:
		if strings.TrimSpace(group.TrustName) == "" {
			result.add("vendorGroup.trustName", "required",
				"trust structure requires a trust name")
		}
		if group.TrusteeType != types.TrusteeIndividual && group.TrusteeType != types.TrusteeCompany {
			result.add("vendorGroup.trusteeType", "oneof",
				"trust structure requires trusteeType individual or company")
		}
		if group.TrusteeType == types.TrusteeCompany && strings.TrimSpace(group.CompanyName) == "" {
			result.add("vendorGroup.companyName", "required",
				"corporate trustee requires a company name")
		}
	}
}

func checkAnnexure(property types.PropertyInfo, result *ValidationResult) {
	if !property.HasAnnexure {
		return
	}
	count := len(property.AnnexureItems)
	if count < 1 || count > types.AnnexureCapacity {
		result.add("property.annexureItems", "range",
			fmt.Sprintf("annexure enabled with %d item(s); expected 1-%d",
				count, types.AnnexureCapacity))
	}
}

func checkCommission(pricing types.PricingInfo, result *ValidationResult) {
	switch pricing.CommissionType {
	case types.CommissionFixed, types.CommissionPercentage:
		if strings.TrimSpace(pricing.CommissionValue) == "" {
			result.add("pricing.commissionValue", "required",
				fmt.Sprintf("commission type %q requires a value", pricing.CommissionType))
		}
	case types.CommissionREIT:
		// No value required; the agreement carries the scale reference.
	}
}
