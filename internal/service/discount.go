package service

import (
	"clothing-store-backend/internal/dto"
	"clothing-store-backend/internal/model"
	"clothing-store-backend/internal/pricing"
	"clothing-store-backend/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DiscountService interface {
	Catalog(ctx context.Context) ([]pricing.Discount, error)
	CreateDiscount(ctx context.Context, req *dto.CreateDiscountRequest) (*model.Discount, error)
	DeleteDiscount(ctx context.Context, discountID string) error

	CreatePromoCode(ctx context.Context, req *dto.CreatePromoCodeRequest) (*model.PromoCode, error)
	ListPromoCodes(ctx context.Context) ([]*model.PromoCode, error)

	// PromoCandidate converts a promo code into an extra discount candidate
	// for checkout pricing. The code's validity window and usage caps are a
	// separate redemption service's concern and are deliberately not checked
	// here; userID is part of the seam for that collaborator.
	PromoCandidate(ctx context.Context, code, userID string) (*pricing.Discount, error)
}

type discountServiceImpl struct {
	discountRepo repository.DiscountRepository
	promoRepo    repository.PromoCodeRepository
}

func NewDiscountService(
	discountRepo repository.DiscountRepository,
	promoRepo repository.PromoCodeRepository,
) DiscountService {
	return &discountServiceImpl{
		discountRepo: discountRepo,
		promoRepo:    promoRepo,
	}
}

func (s *discountServiceImpl) Catalog(ctx context.Context) ([]pricing.Discount, error) {
	return s.discountRepo.Catalog(ctx)
}

func (s *discountServiceImpl) CreateDiscount(ctx context.Context, req *dto.CreateDiscountRequest) (*model.Discount, error) {
	row, categoryIDs, subcategoryIDs, productIDs, err := discountRow(req.Name, req.Type, req.Value, req.MinQuantity, req.AppliedTo, req.CategoryIDs, req.SubcategoryIDs, req.ProductIDs)
	if err != nil {
		return nil, err
	}

	discount := &model.Discount{
		ID:          uuid.NewString(),
		Name:        row.name,
		Type:        row.discountType,
		Value:       row.value,
		MinQuantity: row.minQuantity,
		AppliedTo:   row.appliedTo,
	}
	if err := s.discountRepo.Create(ctx, discount, categoryIDs, subcategoryIDs, productIDs); err != nil {
		return nil, err
	}
	return discount, nil
}

func (s *discountServiceImpl) DeleteDiscount(ctx context.Context, discountID string) error {
	return s.discountRepo.Delete(ctx, discountID)
}

func (s *discountServiceImpl) CreatePromoCode(ctx context.Context, req *dto.CreatePromoCodeRequest) (*model.PromoCode, error) {
	row, categoryIDs, subcategoryIDs, productIDs, err := discountRow(req.Name, req.Type, req.Value, req.MinQuantity, req.AppliedTo, req.CategoryIDs, req.SubcategoryIDs, req.ProductIDs)
	if err != nil {
		return nil, err
	}
	if req.Code == "" {
		return nil, fmt.Errorf("%w: promo code is required", ErrInvalidDiscount)
	}

	promo := &model.PromoCode{
		ID:          uuid.NewString(),
		Code:        req.Code,
		Name:        row.name,
		Type:        row.discountType,
		Value:       row.value,
		MinQuantity: row.minQuantity,
		AppliedTo:   row.appliedTo,
		MaxUses:     req.MaxUses,
		UsesPerUser: req.UsesPerUser,
	}
	if req.ValidFrom != "" {
		t, err := time.Parse(time.RFC3339, req.ValidFrom)
		if err != nil {
			return nil, fmt.Errorf("%w: validFrom: %v", ErrInvalidDiscount, err)
		}
		promo.ValidFrom = &t
	}
	if req.ValidTo != "" {
		t, err := time.Parse(time.RFC3339, req.ValidTo)
		if err != nil {
			return nil, fmt.Errorf("%w: validTo: %v", ErrInvalidDiscount, err)
		}
		promo.ValidTo = &t
	}

	if err := s.promoRepo.Create(ctx, promo, categoryIDs, subcategoryIDs, productIDs); err != nil {
		return nil, err
	}
	return promo, nil
}

func (s *discountServiceImpl) ListPromoCodes(ctx context.Context) ([]*model.PromoCode, error) {
	return s.promoRepo.List(ctx)
}

func (s *discountServiceImpl) PromoCandidate(ctx context.Context, code, userID string) (*pricing.Discount, error) {
	promo, err := s.promoRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	scope, err := pricing.ParseScopeKind(promo.AppliedTo)
	if err != nil {
		return nil, err
	}

	candidate := &pricing.Discount{
		ID:          promo.ID,
		Name:        promo.Name,
		Type:        pricing.DiscountType(promo.Type),
		Value:       promo.Value,
		MinQuantity: promo.MinQuantity,
		Scope:       scope,
	}
	if scope != pricing.ScopeAll {
		categoryIDs, subcategoryIDs, productIDs, err := s.promoRepo.ScopeIDs(ctx, promo.ID)
		if err != nil {
			return nil, err
		}
		candidate.CategoryIDs = categoryIDs
		candidate.SubcategoryIDs = subcategoryIDs
		candidate.ProductIDs = productIDs
	}
	return candidate, nil
}

type discountFields struct {
	name         string
	discountType string
	value        float64
	minQuantity  int
	appliedTo    string
}

// discountRow validates and normalizes the shared discount/promo fields.
// The scope spelling is normalized to the singular form before it reaches
// storage, whatever the admin client sent.
func discountRow(name string, discountType string, value float64, minQuantity int, appliedTo string, categoryIDs, subcategoryIDs, productIDs []string) (discountFields, []string, []string, []string, error) {
	var zero discountFields

	if name == "" {
		return zero, nil, nil, nil, fmt.Errorf("%w: name is required", ErrInvalidDiscount)
	}
	dt := pricing.DiscountType(discountType)
	if dt != pricing.DiscountPercentage && dt != pricing.DiscountAmount {
		return zero, nil, nil, nil, fmt.Errorf("%w: type must be percentage or amount", ErrInvalidDiscount)
	}
	if value <= 0 {
		return zero, nil, nil, nil, fmt.Errorf("%w: value must be positive", ErrInvalidDiscount)
	}
	if dt == pricing.DiscountPercentage && value > 100 {
		return zero, nil, nil, nil, fmt.Errorf("%w: percentage cannot exceed 100", ErrInvalidDiscount)
	}
	if minQuantity < 1 {
		minQuantity = 1
	}

	scope, err := pricing.ParseScopeKind(appliedTo)
	if err != nil {
		return zero, nil, nil, nil, fmt.Errorf("%w: %v", ErrInvalidDiscount, err)
	}

	// only the ids of the selected scope are persisted
	switch scope {
	case pricing.ScopeCategory:
		subcategoryIDs, productIDs = nil, nil
	case pricing.ScopeSubcategory:
		categoryIDs, productIDs = nil, nil
	case pricing.ScopeProduct:
		categoryIDs, subcategoryIDs = nil, nil
	default:
		categoryIDs, subcategoryIDs, productIDs = nil, nil, nil
	}

	return discountFields{
		name:         name,
		discountType: string(dt),
		value:        value,
		minQuantity:  minQuantity,
		appliedTo:    string(scope),
	}, categoryIDs, subcategoryIDs, productIDs, nil
}
