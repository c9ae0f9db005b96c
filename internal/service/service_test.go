package service

import (
	"clothing-store-backend/internal/client"
	"clothing-store-backend/internal/model"
	"clothing-store-backend/internal/pricing"
	"clothing-store-backend/internal/repository"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testCharges = pricing.Charges{
	FreeShippingLimit: 1000,
	ShippingCharges:   99,
	TaxPercentage:     18,
}

// newTestDB opens a fresh in-memory sqlite database per test. One connection
// keeps the shared-cache memory db alive and serializes writers the way the
// production row lock does.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, client.Migrate(db))
	return db
}

type testEnv struct {
	db       *gorm.DB
	cart     CartService
	checkout CheckoutService
	discount DiscountService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)

	productRepo := repository.NewProductRepository(db)
	variantRepo := repository.NewVariantRepository(db)
	cartRepo := repository.NewCartRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	discountRepo := repository.NewDiscountRepository(db)
	promoRepo := repository.NewPromoCodeRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	addressRepo := repository.NewAddressRepository(db)

	discountService := NewDiscountService(discountRepo, promoRepo)

	return &testEnv{
		db:       db,
		cart:     NewCartService(db, cartRepo, variantRepo, productRepo, wishlistRepo),
		discount: discountService,
		checkout: NewCheckoutService(
			db, testCharges,
			cartRepo, productRepo, variantRepo, discountRepo, orderRepo, addressRepo,
			discountService,
		),
	}
}

func seedProduct(t *testing.T, db *gorm.DB, id string, price float64, stock int) (productID, variantID string) {
	t.Helper()

	product := model.Product{
		ID:            id,
		Name:          "Product " + id,
		Price:         price,
		CategoryID:    "cat-1",
		SubcategoryID: "sub-1",
	}
	require.NoError(t, db.Create(&product).Error)

	variant := model.ProductVariant{
		ID:        id + "-var",
		ProductID: id,
		ColorID:   "color-1",
		Size:      "M",
		Quantity:  stock,
	}
	require.NoError(t, db.Create(&variant).Error)

	return product.ID, variant.ID
}

func seedDiscount(t *testing.T, db *gorm.DB, id, discountType string, value float64, minQty int) {
	t.Helper()
	require.NoError(t, db.Create(&model.Discount{
		ID:          id,
		Name:        "Discount " + id,
		Type:        discountType,
		Value:       value,
		MinQuantity: minQty,
		AppliedTo:   "all",
	}).Error)
}

func seedAddress(t *testing.T, db *gorm.DB, userID string) string {
	t.Helper()
	address := model.Address{
		ID:      "addr-" + userID,
		UserID:  userID,
		Line1:   "1 Main St",
		City:    "Springfield",
		Zipcode: "12345",
	}
	require.NoError(t, db.Create(&address).Error)
	return address.ID
}

func variantStock(t *testing.T, db *gorm.DB, variantID string) int {
	t.Helper()
	var variant model.ProductVariant
	require.NoError(t, db.Where("id = ?", variantID).First(&variant).Error)
	return variant.Quantity
}
