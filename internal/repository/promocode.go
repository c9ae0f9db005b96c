package repository

import (
	"clothing-store-backend/internal/model"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type PromoCodeRepository interface {
	// Create stores the promo code and its scope rows. Scope rows share the
	// discount junction tables, keyed by the promo's id; the catalog loader
	// only folds rows whose key matches a discount, so promo scopes never
	// leak into the storewide catalog.
	Create(ctx context.Context, code *model.PromoCode, categoryIDs, subcategoryIDs, productIDs []string) error
	List(ctx context.Context) ([]*model.PromoCode, error)
	FindByCode(ctx context.Context, code string) (*model.PromoCode, error)
	ScopeIDs(ctx context.Context, promoID string) (categoryIDs, subcategoryIDs, productIDs []string, err error)
}

type promoCodeRepoImpl struct {
	db *gorm.DB
}

func NewPromoCodeRepository(db *gorm.DB) PromoCodeRepository {
	return &promoCodeRepoImpl{
		db: db,
	}
}

func (r *promoCodeRepoImpl) Create(ctx context.Context, code *model.PromoCode, categoryIDs, subcategoryIDs, productIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(code).Error; err != nil {
			return fmt.Errorf("create promo code: %w", err)
		}

		for _, id := range categoryIDs {
			if err := tx.Create(&model.DiscountCategory{DiscountID: code.ID, CategoryID: id}).Error; err != nil {
				return err
			}
		}
		for _, id := range subcategoryIDs {
			if err := tx.Create(&model.DiscountSubcategory{DiscountID: code.ID, SubcategoryID: id}).Error; err != nil {
				return err
			}
		}
		for _, id := range productIDs {
			if err := tx.Create(&model.DiscountProduct{DiscountID: code.ID, ProductID: id}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *promoCodeRepoImpl) List(ctx context.Context) ([]*model.PromoCode, error) {
	var codes []*model.PromoCode
	err := r.db.WithContext(ctx).Find(&codes).Error
	if err != nil {
		return nil, err
	}

	return codes, nil
}

func (r *promoCodeRepoImpl) FindByCode(ctx context.Context, code string) (*model.PromoCode, error) {
	var promo model.PromoCode
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&promo).Error

	if err != nil {
		return nil, err
	}

	return &promo, nil
}

func (r *promoCodeRepoImpl) ScopeIDs(ctx context.Context, promoID string) ([]string, []string, []string, error) {
	var categories []model.DiscountCategory
	if err := r.db.WithContext(ctx).Where("discount_id = ?", promoID).Find(&categories).Error; err != nil {
		return nil, nil, nil, err
	}
	var subcategories []model.DiscountSubcategory
	if err := r.db.WithContext(ctx).Where("discount_id = ?", promoID).Find(&subcategories).Error; err != nil {
		return nil, nil, nil, err
	}
	var products []model.DiscountProduct
	if err := r.db.WithContext(ctx).Where("discount_id = ?", promoID).Find(&products).Error; err != nil {
		return nil, nil, nil, err
	}

	categoryIDs := make([]string, len(categories))
	for i, c := range categories {
		categoryIDs[i] = c.CategoryID
	}
	subcategoryIDs := make([]string, len(subcategories))
	for i, s := range subcategories {
		subcategoryIDs[i] = s.SubcategoryID
	}
	productIDs := make([]string, len(products))
	for i, p := range products {
		productIDs[i] = p.ProductID
	}
	return categoryIDs, subcategoryIDs, productIDs, nil
}
