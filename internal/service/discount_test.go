package service

import (
	"clothing-store-backend/internal/dto"
	"clothing-store-backend/internal/model"
	"clothing-store-backend/internal/pricing"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDiscountNormalizesScopeSpelling(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	discount, err := env.discount.CreateDiscount(ctx, &dto.CreateDiscountRequest{
		Name:        "Tops sale",
		Type:        "percentage",
		Value:       20,
		MinQuantity: 0,
		AppliedTo:   "categories", // legacy plural from an old admin client
		CategoryIDs: []string{"cat-1"},
	})
	require.NoError(t, err)

	// singular form reaches storage, minQuantity floors at 1
	var stored model.Discount
	require.NoError(t, env.db.Where("id = ?", discount.ID).First(&stored).Error)
	assert.Equal(t, "category", stored.AppliedTo)
	assert.Equal(t, 1, stored.MinQuantity)
}

func TestCreateDiscountDropsOutOfScopeIDs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	discount, err := env.discount.CreateDiscount(ctx, &dto.CreateDiscountRequest{
		Name:       "Tee deal",
		Type:       "amount",
		Value:      50,
		AppliedTo:  "product",
		ProductIDs: []string{"p-1"},
		// ids for other scopes are ignored, not persisted
		CategoryIDs: []string{"cat-1"},
	})
	require.NoError(t, err)

	var categoryRows int64
	require.NoError(t, env.db.Model(&model.DiscountCategory{}).Count(&categoryRows).Error)
	assert.Zero(t, categoryRows)

	var productRows int64
	require.NoError(t, env.db.Model(&model.DiscountProduct{}).Where("discount_id = ?", discount.ID).Count(&productRows).Error)
	assert.EqualValues(t, 1, productRows)
}

func TestCreateDiscountValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cases := []dto.CreateDiscountRequest{
		{Name: "", Type: "percentage", Value: 10, AppliedTo: "all"},
		{Name: "x", Type: "bogof", Value: 10, AppliedTo: "all"},
		{Name: "x", Type: "percentage", Value: 0, AppliedTo: "all"},
		{Name: "x", Type: "percentage", Value: 120, AppliedTo: "all"},
		{Name: "x", Type: "percentage", Value: 10, AppliedTo: "storewide"},
	}
	for _, req := range cases {
		_, err := env.discount.CreateDiscount(ctx, &req)
		assert.ErrorIs(t, err, ErrInvalidDiscount)
	}
}

func TestPromoCandidate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.discount.CreatePromoCode(ctx, &dto.CreatePromoCodeRequest{
		CreateDiscountRequest: dto.CreateDiscountRequest{
			Name:       "Tee promo",
			Type:       "percentage",
			Value:      25,
			AppliedTo:  "product",
			ProductIDs: []string{"p-1"},
		},
		Code:    "TEES25",
		MaxUses: 100,
	})
	require.NoError(t, err)

	candidate, err := env.discount.PromoCandidate(ctx, "TEES25", "user-1")
	require.NoError(t, err)
	require.NotNil(t, candidate)
	assert.Equal(t, pricing.DiscountPercentage, candidate.Type)
	assert.Equal(t, pricing.ScopeProduct, candidate.Scope)
	assert.Equal(t, []string{"p-1"}, candidate.ProductIDs)

	assert.True(t, candidate.AppliesTo("p-1", "cat-1", "sub-1"))
	assert.False(t, candidate.AppliesTo("p-2", "cat-1", "sub-1"))
}

func TestPromoCandidateUnknownCode(t *testing.T) {
	env := newTestEnv(t)

	candidate, err := env.discount.PromoCandidate(context.Background(), "NOPE", "user-1")
	require.NoError(t, err)
	assert.Nil(t, candidate)
}

// promo scope rows share the discount junction tables keyed by promo id;
// the storewide catalog must not pick them up.
func TestPromoScopeRowsStayOutOfCatalog(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.discount.CreatePromoCode(ctx, &dto.CreatePromoCodeRequest{
		CreateDiscountRequest: dto.CreateDiscountRequest{
			Name: "Promo", Type: "amount", Value: 10, AppliedTo: "product", ProductIDs: []string{"p-1"},
		},
		Code: "P10",
	})
	require.NoError(t, err)

	catalog, err := env.discount.Catalog(ctx)
	require.NoError(t, err)
	assert.Empty(t, catalog)
}
