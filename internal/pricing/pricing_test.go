package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pct(id string, value float64, minQty int) Discount {
	return Discount{ID: id, Type: DiscountPercentage, Value: value, MinQuantity: minQty, Scope: ScopeAll}
}

func amt(id string, value float64, minQty int) Discount {
	return Discount{ID: id, Type: DiscountAmount, Value: value, MinQuantity: minQty, Scope: ScopeAll}
}

func TestParseScopeKind(t *testing.T) {
	cases := map[string]ScopeKind{
		"all":           ScopeAll,
		"category":      ScopeCategory,
		"categories":    ScopeCategory,
		"subcategory":   ScopeSubcategory,
		"subcategories": ScopeSubcategory,
		"product":       ScopeProduct,
		"products":      ScopeProduct,
	}
	for in, want := range cases {
		got, err := ParseScopeKind(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseScopeKind("storewide")
	assert.Error(t, err)
}

func TestApplicable(t *testing.T) {
	catalog := []Discount{
		{ID: "d-all", Scope: ScopeAll},
		{ID: "d-cat", Scope: ScopeCategory, CategoryIDs: []string{"cat-1"}},
		{ID: "d-sub", Scope: ScopeSubcategory, SubcategoryIDs: []string{"sub-9"}},
		{ID: "d-prod", Scope: ScopeProduct, ProductIDs: []string{"p-7"}},
	}

	got := Applicable("p-7", "cat-1", "sub-2", catalog)
	ids := make([]string, len(got))
	for i, d := range got {
		ids[i] = d.ID
	}
	assert.Equal(t, []string{"d-all", "d-cat", "d-prod"}, ids)

	got = Applicable("p-1", "cat-2", "sub-2", catalog)
	require.Len(t, got, 1)
	assert.Equal(t, "d-all", got[0].ID)
}

func TestSelectBestMinQuantityGate(t *testing.T) {
	ds := []Discount{pct("a", 50, 5)}

	assert.Nil(t, SelectBest(ds, 100, 4))

	best := SelectBest(ds, 100, 5)
	require.NotNil(t, best)
	assert.Equal(t, "a", best.ID)
}

func TestSelectBestLargestSaving(t *testing.T) {
	// percentage saving is per unit, amount saving is flat; the flat value is
	// not scaled by quantity when the two are compared.
	ds := []Discount{
		pct("ten-pct", 10, 1), // saving on 500 = 50
		amt("flat-60", 60, 1), // saving = 60
	}
	best := SelectBest(ds, 500, 3)
	require.NotNil(t, best)
	assert.Equal(t, "flat-60", best.ID)

	best = SelectBest(ds, 700, 3) // 10% of 700 = 70 beats 60
	require.NotNil(t, best)
	assert.Equal(t, "ten-pct", best.ID)
}

func TestSelectBestTieKeepsFirst(t *testing.T) {
	ds := []Discount{
		amt("first", 50, 1),
		pct("second", 10, 1), // 10% of 500 = 50, exact tie
		amt("third", 50, 1),
	}
	best := SelectBest(ds, 500, 2)
	require.NotNil(t, best)
	assert.Equal(t, "first", best.ID)
}

func TestSelectBestEmpty(t *testing.T) {
	assert.Nil(t, SelectBest(nil, 100, 1))
	assert.Nil(t, SelectBest([]Discount{}, 100, 1))
}

func TestUnitPricePercentage(t *testing.T) {
	// price=599, qty=3, 10% off with minQty 2
	d := pct("d", 10, 2)
	assert.Equal(t, 539.10, UnitPrice(599, 3, &d))
	assert.Equal(t, 179.70, Round2(LineSaving(599, 3, &d)))
}

func TestUnitPriceAmount(t *testing.T) {
	d := amt("d", 100, 1)
	assert.Equal(t, 900.0, UnitPrice(1000, 1, &d))

	// flat value spread back across units
	d2 := amt("d2", 90, 1)
	assert.Equal(t, 170.0, UnitPrice(200, 3, &d2)) // (600-90)/3
}

func TestUnitPriceAmountCanGoNegative(t *testing.T) {
	// the flat value exceeding the line total is reproduced raw, not clamped
	d := amt("d", 500, 1)
	assert.Equal(t, -150.0, UnitPrice(100, 2, &d)) // (200-500)/2
}

func TestUnitPriceNoDiscount(t *testing.T) {
	assert.Equal(t, 249.99, UnitPrice(249.99, 4, nil))
}

func TestUnitPriceNeverExceedsPriceForPercentage(t *testing.T) {
	d := pct("d", 33, 1)
	for _, price := range []float64{1, 9.99, 100, 599, 12345.67} {
		assert.LessOrEqual(t, UnitPrice(price, 2, &d), price)
	}
}

func TestLabel(t *testing.T) {
	p := pct("d", 15, 1)
	a := amt("d", 200, 1)
	assert.Equal(t, "15% OFF", Label(&p))
	assert.Equal(t, "200 OFF", Label(&a))
	assert.Equal(t, "", Label(nil))
}

func TestFinalizeShippingThreshold(t *testing.T) {
	c := Charges{FreeShippingLimit: 1000, ShippingCharges: 99, TaxPercentage: 18}

	below := c.Finalize(500, 0, 1)
	assert.Equal(t, 99.0, below.Shipping)

	above := c.Finalize(1200, 0, 1)
	assert.Equal(t, 0.0, above.Shipping)
}

func TestFinalizeTotalIdentity(t *testing.T) {
	c := Charges{FreeShippingLimit: 1000, ShippingCharges: 99, TaxPercentage: 18}

	cases := []struct {
		subtotal, savings float64
		items             int
	}{
		{500, 0, 1},
		{1797, 179.70, 3},
		{999.99, 100.555, 2},
		{1000, 0, 1},
	}
	for _, tc := range cases {
		got := c.Finalize(tc.subtotal, tc.savings, tc.items)

		shipping := c.ShippingCharges
		if tc.subtotal >= c.FreeShippingLimit {
			shipping = 0
		}
		tax := (tc.subtotal - tc.savings + shipping) * c.TaxPercentage / 100
		want := Round2(tc.subtotal - tc.savings + shipping + tax)

		assert.Equal(t, want, got.Total)
		assert.Equal(t, tc.items, got.TotalItems)
	}
}
