package service

import "errors"

var (
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrVariantNotFound  = errors.New("product variant not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrAddressNotFound  = errors.New("address not found")
	ErrInvalidDiscount  = errors.New("invalid discount definition")

	// ErrOutOfStock aborts a reservation transaction; the add-to-cart
	// boundary converts it into the outofstock typed outcome.
	ErrOutOfStock = errors.New("not enough stock available")

	// errCartEmpty aborts order placement; mapped to the cartempty outcome.
	errCartEmpty = errors.New("cart is empty")
)

// Outcome discriminators for typed business results. The UI branches on
// these instead of parsing error strings.
const (
	OutcomeSuccess    = "success"
	OutcomeOutOfStock = "outofstock"
	OutcomeCartEmpty  = "cartempty"
)
