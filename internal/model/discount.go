package model

import "time"

// Discount is an admin-managed price rule. AppliedTo selects the scope; the
// three junction tables below carry the scope ids. The pricing engine never
// mutates these rows.
type Discount struct {
	ID          string  `gorm:"primaryKey;size:36;not null"`
	Name        string  `gorm:"size:128;not null"`
	Type        string  `gorm:"size:16;not null"` // percentage | amount
	Value       float64 `gorm:"not null"`
	MinQuantity int     `gorm:"not null;default:1"`
	AppliedTo   string  `gorm:"size:16;not null"` // all | category | subcategory | product
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DiscountCategory struct {
	DiscountID string `gorm:"primaryKey;size:36;not null"`
	CategoryID string `gorm:"primaryKey;size:36;not null"`
}

type DiscountSubcategory struct {
	DiscountID    string `gorm:"primaryKey;size:36;not null"`
	SubcategoryID string `gorm:"primaryKey;size:36;not null"`
}

type DiscountProduct struct {
	DiscountID string `gorm:"primaryKey;size:36;not null"`
	ProductID  string `gorm:"primaryKey;size:36;not null"`
}

// PromoCode carries the full lifecycle shape (validity window, usage caps) but
// redemption enforcement lives with an external collaborator; this service
// only stores the fields and exposes the code as a discount candidate.
type PromoCode struct {
	ID          string  `gorm:"primaryKey;size:36;not null"`
	Code        string  `gorm:"size:64;uniqueIndex;not null"`
	Name        string  `gorm:"size:128;not null"`
	Type        string  `gorm:"size:16;not null"`
	Value       float64 `gorm:"not null"`
	MinQuantity int     `gorm:"not null;default:1"`
	AppliedTo   string  `gorm:"size:16;not null"`
	ValidFrom   *time.Time
	ValidTo     *time.Time
	MaxUses     int `gorm:"not null;default:0"`
	UsesPerUser int `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
