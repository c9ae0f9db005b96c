package repository

import (
	"clothing-store-backend/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type CartRepository interface {
	Find(ctx context.Context, tx *gorm.DB, userID, productID, variantID string) (*model.CartItem, error)
	Create(ctx context.Context, tx *gorm.DB, item *model.CartItem) error
	UpdateQuantity(ctx context.Context, tx *gorm.DB, userID, productID, variantID string, quantity int) error
	Delete(ctx context.Context, tx *gorm.DB, userID, productID, variantID string) error
	DeleteAllForUser(ctx context.Context, tx *gorm.DB, userID string) error
	ListByUser(ctx context.Context, tx *gorm.DB, userID string) ([]*model.CartItem, error)
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

func (r *cartRepoImpl) Find(ctx context.Context, tx *gorm.DB, userID, productID, variantID string) (*model.CartItem, error) {
	var item model.CartItem
	err := tx.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND product_variant_id = ?", userID, productID, variantID).
		First(&item).Error

	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *cartRepoImpl) Create(ctx context.Context, tx *gorm.DB, item *model.CartItem) error {
	return tx.WithContext(ctx).Create(item).Error
}

func (r *cartRepoImpl) UpdateQuantity(ctx context.Context, tx *gorm.DB, userID, productID, variantID string, quantity int) error {
	res := tx.WithContext(ctx).Model(&model.CartItem{}).
		Where("user_id = ? AND product_id = ? AND product_variant_id = ?", userID, productID, variantID).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": time.Now(),
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cartRepoImpl) Delete(ctx context.Context, tx *gorm.DB, userID, productID, variantID string) error {
	res := tx.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND product_variant_id = ?", userID, productID, variantID).
		Delete(&model.CartItem{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cartRepoImpl) DeleteAllForUser(ctx context.Context, tx *gorm.DB, userID string) error {
	return tx.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItem{}).Error
}

// ListByUser accepts the caller's tx so order placement can read the cart
// inside the same transaction that commits against it. Read-only callers pass
// the plain db handle.
func (r *cartRepoImpl) ListByUser(ctx context.Context, tx *gorm.DB, userID string) ([]*model.CartItem, error) {
	var items []*model.CartItem
	err := tx.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}
