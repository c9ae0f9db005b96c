package dto

import "clothing-store-backend/internal/pricing"

type AddToCartRequest struct {
	ProductID        string `json:"productId"`
	ProductVariantID string `json:"productVariantId"`
	Quantity         int    `json:"quantity"`
}

type UpdateQuantityRequest struct {
	ProductID        string `json:"productId"`
	ProductVariantID string `json:"productVariantId"`
	NewQuantity      int    `json:"newQuantity"`
}

type CartLineKeyRequest struct {
	ProductID        string `json:"productId"`
	ProductVariantID string `json:"productVariantId"`
}

// CartResult is the typed outcome of a cart mutation. Business failures
// (out of stock) come back with Success=false and a Type the UI can branch
// on; they are not errors.
type CartResult struct {
	Success bool   `json:"success"`
	Type    string `json:"type,omitempty"`
	Message string `json:"message,omitempty"`
}

type UpdateQuantityResult struct {
	Updated     bool `json:"updated"`
	NewQuantity int  `json:"newQuantity"`
}

type CartLine struct {
	ProductID        string  `json:"productId"`
	ProductVariantID string  `json:"productVariantId"`
	Name             string  `json:"name"`
	ImageURL         string  `json:"imageUrl,omitempty"`
	Quantity         int     `json:"quantity"`
	Price            float64 `json:"price"`
	DiscountedPrice  float64 `json:"discountedPrice"`
	DiscountLabel    string  `json:"discountLabel,omitempty"`
}

type CheckoutPreview struct {
	Lines []CartLine `json:"lines"`
	pricing.Totals
}

type PlaceOrderRequest struct {
	AddressID     string `json:"addressId"`
	PaymentMethod string `json:"paymentMethod"`
}

// PlaceOrderResult mirrors CartResult: an empty cart is a typed business
// outcome, not an error.
type PlaceOrderResult struct {
	Success bool    `json:"success"`
	OrderID *string `json:"orderId"`
	Type    string  `json:"type"`
	Message string  `json:"message"`
}

type CreateDiscountRequest struct {
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	Value          float64  `json:"value"`
	MinQuantity    int      `json:"minQuantity"`
	AppliedTo      string   `json:"appliedTo"`
	CategoryIDs    []string `json:"categoryIds"`
	SubcategoryIDs []string `json:"subcategoryIds"`
	ProductIDs     []string `json:"productIds"`
}

type CreatePromoCodeRequest struct {
	CreateDiscountRequest
	Code        string `json:"code"`
	ValidFrom   string `json:"validFrom"`
	ValidTo     string `json:"validTo"`
	MaxUses     int    `json:"maxUses"`
	UsesPerUser int    `json:"usesPerUser"`
}

type CreateAddressRequest struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
	Phone   string `json:"phone"`
}
