package pricing

// Charges holds the checkout constants applied on top of the cart subtotal.
type Charges struct {
	FreeShippingLimit float64
	ShippingCharges   float64
	TaxPercentage     float64
}

// Totals is the money summary of a priced cart. All fields are rounded to two
// decimals; intermediate math stays unrounded.
type Totals struct {
	TotalItems int     `json:"totalItems"`
	Subtotal   float64 `json:"subtotal"`
	Savings    float64 `json:"savings"`
	Shipping   float64 `json:"shipping"`
	Tax        float64 `json:"tax"`
	Total      float64 `json:"total"`
}

// Finalize turns accumulated raw subtotal/savings into the full summary.
// Shipping is waived once the subtotal reaches the free-shipping limit; tax
// applies to the discounted subtotal plus shipping.
func (c Charges) Finalize(subtotal, savings float64, totalItems int) Totals {
	shipping := c.ShippingCharges
	if subtotal >= c.FreeShippingLimit {
		shipping = 0
	}
	tax := (subtotal - savings + shipping) * c.TaxPercentage / 100
	total := subtotal - savings + shipping + tax

	return Totals{
		TotalItems: totalItems,
		Subtotal:   Round2(subtotal),
		Savings:    Round2(savings),
		Shipping:   Round2(shipping),
		Tax:        Round2(tax),
		Total:      Round2(total),
	}
}
