package model

import "time"

type Category struct {
	ID   string `gorm:"primaryKey;size:36;not null"`
	Name string `gorm:"size:128;not null"`
}

type Subcategory struct {
	ID         string `gorm:"primaryKey;size:36;not null"`
	CategoryID string `gorm:"size:36;index;not null"`
	Name       string `gorm:"size:128;not null"`
}

type Product struct {
	ID            string  `gorm:"primaryKey;size:36;not null"`
	Name          string  `gorm:"size:256;not null"`
	Price         float64 `gorm:"not null"`
	CategoryID    string  `gorm:"size:36;index;not null"`
	SubcategoryID string  `gorm:"size:36;index;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProductVariant is the inventory unit. Quantity is the stock NOT currently
// reserved by any cart: variant.Quantity + the sum of cart lines holding this
// variant equals the true total stock.
type ProductVariant struct {
	ID        string `gorm:"primaryKey;size:36;not null"`
	ProductID string `gorm:"size:36;index;not null"`
	ColorID   string `gorm:"size:36;index"`
	Size      string `gorm:"size:16"`
	Quantity  int    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey"`
	ProductID string `gorm:"size:36;index;not null"`
	ColorID   string `gorm:"size:36;index"`
	URL       string `gorm:"size:512;not null"`
}

// CartItem is one cart line. Creating a line reserves stock on the variant,
// deleting it releases the reservation.
type CartItem struct {
	UserID           string `gorm:"primaryKey;size:36;not null"`
	ProductID        string `gorm:"primaryKey;size:36;not null"`
	ProductVariantID string `gorm:"primaryKey;size:36;not null"`
	Quantity         int    `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type WishlistItem struct {
	UserID           string `gorm:"primaryKey;size:36;not null"`
	ProductID        string `gorm:"primaryKey;size:36;not null"`
	ProductVariantID string `gorm:"primaryKey;size:36;not null"`
	CreatedAt        time.Time
}

type Address struct {
	ID        string `gorm:"primaryKey;size:36;not null"`
	UserID    string `gorm:"size:36;index;not null"`
	Line1     string `gorm:"size:256;not null"`
	Line2     string `gorm:"size:256"`
	City      string `gorm:"size:128;not null"`
	State     string `gorm:"size:128"`
	Zipcode   string `gorm:"size:16;not null"`
	Phone     string `gorm:"size:32"`
	CreatedAt time.Time
}
