package repository

import (
	"clothing-store-backend/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VariantRepository interface {
	// FindForUpdate locks the variant row for the rest of the transaction so
	// concurrent reservations on the same variant serialize instead of
	// racing on the read-compute-write sequence.
	FindForUpdate(ctx context.Context, tx *gorm.DB, variantID string) (*model.ProductVariant, error)
	AdjustQuantity(ctx context.Context, tx *gorm.DB, variantID string, delta int) error
	FindMany(ctx context.Context, variantIDs []string) ([]*model.ProductVariant, error)
	ListByProduct(ctx context.Context, productID string) ([]*model.ProductVariant, error)
}

type variantRepoImpl struct {
	db *gorm.DB
}

func NewVariantRepository(db *gorm.DB) VariantRepository {
	return &variantRepoImpl{
		db: db,
	}
}

func (r *variantRepoImpl) FindForUpdate(ctx context.Context, tx *gorm.DB, variantID string) (*model.ProductVariant, error) {
	q := tx.WithContext(ctx)
	// sqlite rejects FOR UPDATE syntax; its single-writer model serializes
	// the transaction anyway.
	if tx.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var variant model.ProductVariant
	err := q.Where("id = ?", variantID).First(&variant).Error
	if err != nil {
		return nil, err
	}

	return &variant, nil
}

func (r *variantRepoImpl) AdjustQuantity(ctx context.Context, tx *gorm.DB, variantID string, delta int) error {
	res := tx.WithContext(ctx).Model(&model.ProductVariant{}).
		Where("id = ?", variantID).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *variantRepoImpl) FindMany(ctx context.Context, variantIDs []string) ([]*model.ProductVariant, error) {
	var variants []*model.ProductVariant
	err := r.db.WithContext(ctx).
		Where("id IN ?", variantIDs).
		Find(&variants).Error

	if err != nil {
		return nil, err
	}

	return variants, nil
}

func (r *variantRepoImpl) ListByProduct(ctx context.Context, productID string) ([]*model.ProductVariant, error) {
	var variants []*model.ProductVariant
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Find(&variants).Error

	if err != nil {
		return nil, err
	}

	return variants, nil
}
