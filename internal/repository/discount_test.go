package repository

import (
	"clothing-store-backend/internal/client"
	"clothing-store-backend/internal/model"
	"clothing-store-backend/internal/pricing"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

func TestCatalogDenormalizesScopeRows(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewDiscountRepository(db)

	require.NoError(t, db.Create(&model.Discount{
		ID: "d-cat", Name: "Winter sale", Type: "percentage", Value: 15, MinQuantity: 1, AppliedTo: "category",
	}).Error)
	require.NoError(t, db.Create(&model.DiscountCategory{DiscountID: "d-cat", CategoryID: "cat-1"}).Error)
	require.NoError(t, db.Create(&model.DiscountCategory{DiscountID: "d-cat", CategoryID: "cat-2"}).Error)

	require.NoError(t, db.Create(&model.Discount{
		ID: "d-all", Name: "Storewide", Type: "amount", Value: 50, MinQuantity: 2, AppliedTo: "all",
	}).Error)

	catalog, err := repo.Catalog(ctx)
	require.NoError(t, err)
	require.Len(t, catalog, 2)

	byID := make(map[string]pricing.Discount, len(catalog))
	for _, d := range catalog {
		byID[d.ID] = d
	}

	cat := byID["d-cat"]
	assert.Equal(t, pricing.ScopeCategory, cat.Scope)
	assert.ElementsMatch(t, []string{"cat-1", "cat-2"}, cat.CategoryIDs)
	assert.Empty(t, cat.SubcategoryIDs)
	assert.Empty(t, cat.ProductIDs)

	all := byID["d-all"]
	assert.Equal(t, pricing.ScopeAll, all.Scope)
	assert.Equal(t, 2, all.MinQuantity)
}

func TestCatalogAcceptsLegacyPluralSpelling(t *testing.T) {
	db := newTestDB(t)
	repo := NewDiscountRepository(db)

	// older admin paths persisted plural scope values
	require.NoError(t, db.Create(&model.Discount{
		ID: "d-legacy", Name: "Legacy", Type: "percentage", Value: 5, MinQuantity: 1, AppliedTo: "categories",
	}).Error)
	require.NoError(t, db.Create(&model.DiscountCategory{DiscountID: "d-legacy", CategoryID: "cat-9"}).Error)

	catalog, err := repo.Catalog(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, pricing.ScopeCategory, catalog[0].Scope)
	assert.Equal(t, []string{"cat-9"}, catalog[0].CategoryIDs)
}

func TestCatalogRejectsUnknownScope(t *testing.T) {
	db := newTestDB(t)
	repo := NewDiscountRepository(db)

	require.NoError(t, db.Create(&model.Discount{
		ID: "d-bad", Name: "Bad", Type: "percentage", Value: 5, MinQuantity: 1, AppliedTo: "storewide",
	}).Error)

	_, err := repo.Catalog(context.Background())
	assert.Error(t, err)
}

func TestDiscountDelete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewDiscountRepository(db)

	discount := &model.Discount{ID: "d-1", Name: "Deal", Type: "amount", Value: 10, MinQuantity: 1, AppliedTo: "product"}
	require.NoError(t, repo.Create(ctx, discount, nil, nil, []string{"p-1", "p-2"}))

	require.NoError(t, repo.Delete(ctx, "d-1"))

	var junctionCount int64
	require.NoError(t, db.Model(&model.DiscountProduct{}).Count(&junctionCount).Error)
	assert.Zero(t, junctionCount)

	assert.ErrorIs(t, repo.Delete(ctx, "d-1"), gorm.ErrRecordNotFound)
}
