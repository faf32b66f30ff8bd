// =============================================================================
// Agreement Payload Builder - Slot Packer
// =============================================================================
//
// Maps a variable-length, capacity-bounded list into fixed numbered output
// slots, null-padding everything past the active count. Both slot ranges of
// the agreement (13 annexure entries, 20 marketing line items) go through
// the same packer; only capacity and the per-item formatter differ.
//
// =============================================================================

package engine

import (
	"fmt"

	"github.com/ginjaninja78/form-to-payload-conversion/internal/types"
)

// Slot is one fixed numbered output position. Item is the numbered label;
// Value is the slot's companion field (annexure description, marketing
// price). Both are nil in unused slots.
type Slot struct {
	Item  *string
	Value *string
}

// PackSlots fills capacity slots from items. Slot k (1-indexed) is built by
// format(items[k-1], k) while k <= activeCount; every later slot stays
// entirely null so downstream consumers always see the full fixed range.
func PackSlots[T any](items []T, activeCount, capacity int, format func(item T, n int) Slot) []Slot {
	slots := make([]Slot, capacity)
	if activeCount > len(items) {
		activeCount = len(items)
	}
	for k := 1; k <= activeCount && k <= capacity; k++ {
		slots[k-1] = format(items[k-1], k)
	}
	return slots
}

// PackAnnexure packs annexure entries into the 13-slot range. Item names
// gain the "<k>. " prefix; descriptions are carried raw. A disabled
// annexure packs as all-null slots.
func PackAnnexure(property types.PropertyInfo) []Slot {
	active := 0
	if property.HasAnnexure {
		active = len(property.AnnexureItems)
	}

	return PackSlots(property.AnnexureItems, active, types.AnnexureCapacity,
		func(item types.AnnexureItem, n int) Slot {
			label := fmt.Sprintf("%d. %s", n, item.Item)
			description := item.Description
			return Slot{Item: &label, Value: &description}
		})
}

// MarketingCatalog resolves marketing line-item ids to their catalog entry.
// The catalog is immutable reference data; lookups never mutate it.
type MarketingCatalog interface {
	Lookup(id string) (name string, price float64, ok bool)
}

// marketingLine is one resolved marketing selection.
type marketingLine struct {
	name  string
	price float64
}

// PackMarketing projects the selected marketing ids against the catalog,
// preserving selection order, and packs the resolved lines into the 20-slot
// range. Ids the catalog does not know are dropped from the active list, so
// later real items keep contiguous slot numbers. Prices are
// currency-formatted.
func PackMarketing(selected []string, catalog MarketingCatalog) []Slot {
	lines := make([]marketingLine, 0, len(selected))
	for _, id := range selected {
		name, price, ok := catalog.Lookup(id)
		if !ok {
			continue
		}
		lines = append(lines, marketingLine{name: name, price: price})
	}

	return PackSlots(lines, len(lines), types.MarketingCapacity,
		func(line marketingLine, n int) Slot {
			label := fmt.Sprintf("%d. %s", n, line.name)
			price := FormatCurrency(line.price)
			return Slot{Item: &label, Value: &price}
		})
}
