package repository

import (
	"clothing-store-backend/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	FindByID(ctx context.Context, productID string) (*model.Product, error)
	FindMany(ctx context.Context, productIDs []string) ([]*model.Product, error)
	List(ctx context.Context) ([]*model.Product, error)
	Images(ctx context.Context, productIDs []string) ([]*model.ProductImage, error)
	Seed(ctx context.Context) error
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func (r *productRepoImpl) FindByID(ctx context.Context, productID string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Where("id = ?", productID).
		First(&product).Error

	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepoImpl) FindMany(ctx context.Context, productIDs []string) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Where("id IN ?", productIDs).
		Find(&products).Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) List(ctx context.Context) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).Find(&products).Error
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) Images(ctx context.Context, productIDs []string) ([]*model.ProductImage, error) {
	var images []*model.ProductImage
	err := r.db.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Find(&images).Error

	if err != nil {
		return nil, err
	}

	return images, nil
}

// Seed inserts a small dev catalog, idempotently.
func (r *productRepoImpl) Seed(ctx context.Context) error {
	categories := []model.Category{
		{ID: "cat-men", Name: "Men"},
		{ID: "cat-women", Name: "Women"},
	}
	subcategories := []model.Subcategory{
		{ID: "sub-tshirts", CategoryID: "cat-men", Name: "T-Shirts"},
		{ID: "sub-jeans", CategoryID: "cat-men", Name: "Jeans"},
		{ID: "sub-dresses", CategoryID: "cat-women", Name: "Dresses"},
	}
	products := []model.Product{
		{ID: "prod-tee-basic", Name: "Basic Crew Tee", Price: 599, CategoryID: "cat-men", SubcategoryID: "sub-tshirts"},
		{ID: "prod-jeans-slim", Name: "Slim Fit Jeans", Price: 1499, CategoryID: "cat-men", SubcategoryID: "sub-jeans"},
		{ID: "prod-dress-midi", Name: "Midi Wrap Dress", Price: 1999, CategoryID: "cat-women", SubcategoryID: "sub-dresses"},
	}
	variants := []model.ProductVariant{
		{ID: "var-tee-black-m", ProductID: "prod-tee-basic", ColorID: "color-black", Size: "M", Quantity: 50},
		{ID: "var-tee-black-l", ProductID: "prod-tee-basic", ColorID: "color-black", Size: "L", Quantity: 50},
		{ID: "var-jeans-blue-32", ProductID: "prod-jeans-slim", ColorID: "color-blue", Size: "32", Quantity: 30},
		{ID: "var-dress-red-s", ProductID: "prod-dress-midi", ColorID: "color-red", Size: "S", Quantity: 20},
	}

	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&categories).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&subcategories).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&variants).Error
}
