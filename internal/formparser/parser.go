// =============================================================================
// Agreement Payload Builder - Form Parser
// =============================================================================
//
// Reads one agreement form submission per JSON file, as exported by the
// capture UI. Parsing is strictly a decoding concern: precondition checks
// belong to the validation module, and the engine itself never sees a file.
//
// =============================================================================

package formparser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ginjaninja78/form-to-payload-conversion/internal/types"
)

// ParseFile reads and decodes a form submission file.
func ParseFile(path string) (*types.FormData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open form file: %w", err)
	}
	defer f.Close()

	form, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return form, nil
}

// Parse decodes a form submission from r and applies input defaults.
func Parse(r io.Reader) (*types.FormData, error) {
	var form types.FormData
	dec := json.NewDecoder(r)
	if err := dec.Decode(&form); err != nil {
		return nil, fmt.Errorf("invalid form JSON: %w", err)
	}

	applyDefaults(&form)
	return &form, nil
}

// applyDefaults fills input fields older capture-UI exports omit.
func applyDefaults(form *types.FormData) {
	if form.VendorGroup.Structure == "" {
		form.VendorGroup.Structure = types.StructureIndividual
	}
	if form.VendorGroup.VendorCount == 0 && len(form.VendorGroup.Vendors) > 0 {
		count := len(form.VendorGroup.Vendors)
		if count > types.MaxVendors {
			count = types.MaxVendors
		}
		form.VendorGroup.VendorCount = count
	}
	if strings.TrimSpace(form.Pricing.AgencyPeriodType) == "" {
		form.Pricing.AgencyPeriodType = "days"
	}
}
