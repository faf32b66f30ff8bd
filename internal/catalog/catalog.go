// =============================================================================
// Agreement Payload Builder - Marketing Catalog
// =============================================================================
//
// The marketing catalog is immutable reference data: the fixed set of
// marketing products a submission's selectedMarketing ids refer to. A
// compiled-in default table covers the standard office price list; offices
// that maintain their own price list as a spreadsheet can point the
// configuration at an XLSX file instead, which replaces the default table
// wholesale.
//
// XLSX LAYOUT (first sheet):
//   column A: product id      (e.g. "photography_standard")
//   column B: display name    (e.g. "Professional Photography")
//   column C: price in dollars
//   Row 1 is treated as a header row and skipped.
//
// =============================================================================

package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Item is one marketing product.
type Item struct {
	ID    string
	Name  string
	Price float64
}

// Catalog is a read-only marketing product lookup table, initialized once.
type Catalog struct {
	items []Item
	index map[string]Item
}

// defaultItems is the standard office price list.
var defaultItems = []Item{
	{ID: "realestate_premiere", Name: "realestate.com.au Premiere Listing", Price: 1850},
	{ID: "realestate_feature", Name: "realestate.com.au Feature Listing", Price: 750},
	{ID: "domain_gold", Name: "domain.com.au Gold Listing", Price: 1200},
	{ID: "photography_standard", Name: "Professional Photography", Price: 350},
	{ID: "photography_drone", Name: "Drone Photography", Price: 450},
	{ID: "video_tour", Name: "Video Walkthrough Tour", Price: 650},
	{ID: "floorplan", Name: "Floor Plan", Price: 220},
	{ID: "signboard_standard", Name: "Standard Signboard", Price: 180},
	{ID: "signboard_photo", Name: "Photo Signboard", Price: 320},
	{ID: "brochures", Name: "Property Brochures (50 pack)", Price: 140},
	{ID: "social_boost", Name: "Social Media Campaign", Price: 300},
	{ID: "press_advert", Name: "Local Press Advertisement", Price: 280},
	{ID: "styling_consult", Name: "Property Styling Consultation", Price: 250},
	{ID: "window_display", Name: "Office Window Display", Price: 90},
}

// Default returns the compiled-in catalog.
func Default() *Catalog {
	return build(defaultItems)
}

// LoadXLSX reads a price-list spreadsheet and returns the catalog it
// defines. Rows with an empty id are skipped; a price that fails to parse
// is an error so a broken price list never silently produces $0.00 lines.
func LoadXLSX(path string) (*Catalog, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open price list: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read price list sheet %q: %w", sheet, err)
	}

	var items []Item
	for i, row := range rows {
		if i == 0 {
			// Header row.
			continue
		}
		if len(row) < 3 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad price %q: %w", i+1, row[2], err)
		}

		items = append(items, Item{
			ID:    strings.TrimSpace(row[0]),
			Name:  strings.TrimSpace(row[1]),
			Price: price,
		})
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("price list %s contains no items", path)
	}

	return build(items), nil
}

// Load returns the catalog for the configured price-list path, or the
// default catalog when no path is configured.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	return LoadXLSX(path)
}

func build(items []Item) *Catalog {
	index := make(map[string]Item, len(items))
	for _, item := range items {
		index[item.ID] = item
	}
	return &Catalog{items: items, index: index}
}

// Lookup resolves a product id. It satisfies the engine's MarketingCatalog
// interface.
func (c *Catalog) Lookup(id string) (name string, price float64, ok bool) {
	item, ok := c.index[id]
	if !ok {
		return "", 0, false
	}
	return item.Name, item.Price, true
}

// Items returns the catalog entries in definition order. The returned slice
// is a copy; the catalog itself stays immutable.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}
