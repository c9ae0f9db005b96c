package repository

import (
	"clothing-store-backend/internal/model"
	"clothing-store-backend/internal/pricing"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type DiscountRepository interface {
	// Catalog loads every discount with its scope rows denormalized into id
	// slices. One query per table regardless of cart size.
	Catalog(ctx context.Context) ([]pricing.Discount, error)
	Create(ctx context.Context, discount *model.Discount, categoryIDs, subcategoryIDs, productIDs []string) error
	Delete(ctx context.Context, discountID string) error
}

type discountRepoImpl struct {
	db *gorm.DB
}

func NewDiscountRepository(db *gorm.DB) DiscountRepository {
	return &discountRepoImpl{
		db: db,
	}
}

func (r *discountRepoImpl) Catalog(ctx context.Context) ([]pricing.Discount, error) {
	var rows []model.Discount
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load discounts: %w", err)
	}

	var categories []model.DiscountCategory
	if err := r.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("load discount categories: %w", err)
	}
	var subcategories []model.DiscountSubcategory
	if err := r.db.WithContext(ctx).Find(&subcategories).Error; err != nil {
		return nil, fmt.Errorf("load discount subcategories: %w", err)
	}
	var products []model.DiscountProduct
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("load discount products: %w", err)
	}

	categoryIDs := make(map[string][]string)
	for _, c := range categories {
		categoryIDs[c.DiscountID] = append(categoryIDs[c.DiscountID], c.CategoryID)
	}
	subcategoryIDs := make(map[string][]string)
	for _, s := range subcategories {
		subcategoryIDs[s.DiscountID] = append(subcategoryIDs[s.DiscountID], s.SubcategoryID)
	}
	productIDs := make(map[string][]string)
	for _, p := range products {
		productIDs[p.DiscountID] = append(productIDs[p.DiscountID], p.ProductID)
	}

	catalog := make([]pricing.Discount, 0, len(rows))
	for _, row := range rows {
		scope, err := pricing.ParseScopeKind(row.AppliedTo)
		if err != nil {
			return nil, fmt.Errorf("discount %s: %w", row.ID, err)
		}
		catalog = append(catalog, pricing.Discount{
			ID:             row.ID,
			Name:           row.Name,
			Type:           pricing.DiscountType(row.Type),
			Value:          row.Value,
			MinQuantity:    row.MinQuantity,
			Scope:          scope,
			CategoryIDs:    categoryIDs[row.ID],
			SubcategoryIDs: subcategoryIDs[row.ID],
			ProductIDs:     productIDs[row.ID],
		})
	}
	return catalog, nil
}

func (r *discountRepoImpl) Create(ctx context.Context, discount *model.Discount, categoryIDs, subcategoryIDs, productIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(discount).Error; err != nil {
			return fmt.Errorf("create discount: %w", err)
		}

		for _, id := range categoryIDs {
			if err := tx.Create(&model.DiscountCategory{DiscountID: discount.ID, CategoryID: id}).Error; err != nil {
				return fmt.Errorf("create discount category row: %w", err)
			}
		}
		for _, id := range subcategoryIDs {
			if err := tx.Create(&model.DiscountSubcategory{DiscountID: discount.ID, SubcategoryID: id}).Error; err != nil {
				return fmt.Errorf("create discount subcategory row: %w", err)
			}
		}
		for _, id := range productIDs {
			if err := tx.Create(&model.DiscountProduct{DiscountID: discount.ID, ProductID: id}).Error; err != nil {
				return fmt.Errorf("create discount product row: %w", err)
			}
		}
		return nil
	})
}

func (r *discountRepoImpl) Delete(ctx context.Context, discountID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("discount_id = ?", discountID).Delete(&model.DiscountCategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("discount_id = ?", discountID).Delete(&model.DiscountSubcategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("discount_id = ?", discountID).Delete(&model.DiscountProduct{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", discountID).Delete(&model.Discount{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
