package model

import "time"

type Order struct {
	ID             string  `gorm:"primaryKey;size:36;not null"`
	UserID         string  `gorm:"size:36;index;not null"`
	Status         string  `gorm:"size:32;index;not null"` // PLACED, SHIPPED, DELIVERED, CANCELLED
	OriginalAmount float64 `gorm:"not null"`               // subtotal before discounts
	DiscountAmount float64 `gorm:"not null"`
	TotalAmount    float64 `gorm:"not null"` // after discount, before shipping/tax
	ShippingAmount float64 `gorm:"not null"`
	TaxAmount      float64 `gorm:"not null"`
	FinalAmount    float64 `gorm:"not null"`
	PaymentMethod  string  `gorm:"size:32;not null"`
	AddressID      string  `gorm:"size:36;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

// OrderItem is a frozen snapshot of a cart line at placement time; it is
// never recomputed afterwards.
type OrderItem struct {
	ID               uint    `gorm:"primaryKey"`
	OrderID          string  `gorm:"size:36;index;not null"`
	ProductID        string  `gorm:"size:36;not null"`
	ProductVariantID string  `gorm:"size:36;not null"`
	Quantity         int     `gorm:"not null"`
	Price            float64 `gorm:"not null"` // original unit price
	DiscountAmount   float64 `gorm:"not null"` // line-level saving
	Total            float64 `gorm:"not null"` // final line total
	CreatedAt        time.Time
}
