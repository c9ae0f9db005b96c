// Package pricing holds the pure discount engine: which discounts apply to a
// line, which single discount wins, and what the discounted unit price is.
// Nothing here touches storage.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountAmount     DiscountType = "amount"
)

type ScopeKind string

const (
	ScopeAll         ScopeKind = "all"
	ScopeCategory    ScopeKind = "category"
	ScopeSubcategory ScopeKind = "subcategory"
	ScopeProduct     ScopeKind = "product"
)

// ParseScopeKind normalizes the stored applied_to value. Older rows were
// written with plural spellings ("categories") by one admin path and singular
// by another; both are accepted on read, only the singular form is persisted.
func ParseScopeKind(s string) (ScopeKind, error) {
	switch s {
	case "all":
		return ScopeAll, nil
	case "category", "categories":
		return ScopeCategory, nil
	case "subcategory", "subcategories":
		return ScopeSubcategory, nil
	case "product", "products":
		return ScopeProduct, nil
	}
	return "", fmt.Errorf("unknown discount scope %q", s)
}

// Discount is a denormalized discount record: the scope junction rows are
// already folded into the id slices, so applicability checks need no storage.
type Discount struct {
	ID             string
	Name           string
	Type           DiscountType
	Value          float64
	MinQuantity    int
	Scope          ScopeKind
	CategoryIDs    []string
	SubcategoryIDs []string
	ProductIDs     []string
}

// AppliesTo reports whether the discount's scope covers the given line.
func (d *Discount) AppliesTo(productID, categoryID, subcategoryID string) bool {
	switch d.Scope {
	case ScopeAll:
		return true
	case ScopeProduct:
		return contains(d.ProductIDs, productID)
	case ScopeSubcategory:
		return contains(d.SubcategoryIDs, subcategoryID)
	case ScopeCategory:
		return contains(d.CategoryIDs, categoryID)
	}
	return false
}

// Applicable filters the catalog to discounts whose scope covers the line.
// No ordering or dedup happens here; selection is SelectBest's job.
func Applicable(productID, categoryID, subcategoryID string, catalog []Discount) []Discount {
	var out []Discount
	for _, d := range catalog {
		if d.AppliesTo(productID, categoryID, subcategoryID) {
			out = append(out, d)
		}
	}
	return out
}

// Saving is the absolute saving used to rank discounts against each other.
// Percentage discounts compare per unit, amount discounts compare flat:
// the flat value is NOT multiplied by quantity. That asymmetry is the
// store's established behavior and is relied on by existing catalogs.
func (d *Discount) Saving(price float64) float64 {
	if d.Type == DiscountPercentage {
		return price * d.Value / 100
	}
	return d.Value
}

// SelectBest picks the single discount with the strictly largest saving among
// those whose minimum-quantity gate the line passes. Ties keep the first
// discount encountered, so catalog order is stable and deterministic.
// Returns nil when nothing qualifies; that is not an error.
func SelectBest(discounts []Discount, price float64, quantity int) *Discount {
	var best *Discount
	var bestSaving float64
	for i := range discounts {
		d := &discounts[i]
		if quantity < d.MinQuantity {
			continue
		}
		s := d.Saving(price)
		if best == nil || s > bestSaving {
			best = d
			bestSaving = s
		}
	}
	return best
}

// UnitPrice projects the discounted per-unit price. The amount case subtracts
// the flat value once from the line total and divides it back across units;
// it can go below zero when value exceeds the line total, and is deliberately
// not clamped.
func UnitPrice(price float64, quantity int, d *Discount) float64 {
	if d == nil {
		return price
	}
	switch d.Type {
	case DiscountPercentage:
		return Round2(price * (1 - d.Value/100))
	case DiscountAmount:
		return Round2((price*float64(quantity) - d.Value) / float64(quantity))
	}
	return price
}

// LineSaving is the saving a discount contributes to one cart line: per-unit
// times quantity for percentage discounts, the flat value once for amount
// discounts.
func LineSaving(price float64, quantity int, d *Discount) float64 {
	if d == nil {
		return 0
	}
	if d.Type == DiscountPercentage {
		return price * (d.Value / 100) * float64(quantity)
	}
	return d.Value
}

// Label renders the storefront badge, currency-agnostic.
func Label(d *Discount) string {
	if d == nil {
		return ""
	}
	if d.Type == DiscountPercentage {
		return fmt.Sprintf("%v%% OFF", d.Value)
	}
	return fmt.Sprintf("%v OFF", d.Value)
}

// Round2 rounds to two decimals. Used only at output boundaries, never
// mid-calculation.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
