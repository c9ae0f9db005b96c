package client

import (
	"clothing-store-backend/internal/model"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func InitDBClient(driver, databaseURL string) *gorm.DB {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(databaseURL)
	case "sqlite":
		dialector = sqlite.Open(databaseURL)
	default:
		log.Fatal(fmt.Errorf("unsupported database driver %q", driver))
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(db); err != nil {
		log.Fatal(err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Category{},
		&model.Subcategory{},
		&model.Product{},
		&model.ProductVariant{},
		&model.ProductImage{},
		&model.CartItem{},
		&model.WishlistItem{},
		&model.Address{},
		&model.Discount{},
		&model.DiscountCategory{},
		&model.DiscountSubcategory{},
		&model.DiscountProduct{},
		&model.PromoCode{},
		&model.Order{},
		&model.OrderItem{},
	)
}
