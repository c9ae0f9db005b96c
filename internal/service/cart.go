package service

import (
	"clothing-store-backend/internal/dto"
	"clothing-store-backend/internal/model"
	"clothing-store-backend/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

// CartService keeps cart lines and variant stock consistent. Adding to cart
// is a reservation: the requested quantity leaves the variant's available
// stock immediately, and comes back when the line shrinks or disappears.
// Every mutation runs its read-then-write sequence inside one transaction
// with the variant row locked, so concurrent requests on the same variant
// cannot double- or under-reserve.
type CartService interface {
	Add(ctx context.Context, userID string, req *dto.AddToCartRequest) (*dto.CartResult, error)
	UpdateQuantity(ctx context.Context, userID string, req *dto.UpdateQuantityRequest) (*dto.UpdateQuantityResult, error)
	Delete(ctx context.Context, userID, productID, variantID string) error
	MoveToWishlist(ctx context.Context, userID, productID, variantID string) error
	List(ctx context.Context, userID string) ([]dto.CartLine, error)
	Wishlist(ctx context.Context, userID string) ([]*model.WishlistItem, error)
}

type cartServiceImpl struct {
	db           *gorm.DB
	cartRepo     repository.CartRepository
	variantRepo  repository.VariantRepository
	productRepo  repository.ProductRepository
	wishlistRepo repository.WishlistRepository
}

func NewCartService(
	db *gorm.DB,
	cartRepo repository.CartRepository,
	variantRepo repository.VariantRepository,
	productRepo repository.ProductRepository,
	wishlistRepo repository.WishlistRepository,
) CartService {
	return &cartServiceImpl{
		db:           db,
		cartRepo:     cartRepo,
		variantRepo:  variantRepo,
		productRepo:  productRepo,
		wishlistRepo: wishlistRepo,
	}
}

func (s *cartServiceImpl) Add(ctx context.Context, userID string, req *dto.AddToCartRequest) (*dto.CartResult, error) {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		variant, err := s.variantRepo.FindForUpdate(ctx, tx, req.ProductVariantID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVariantNotFound
			}
			return err
		}
		if variant.Quantity < quantity {
			return ErrOutOfStock
		}

		line, err := s.cartRepo.Find(ctx, tx, userID, req.ProductID, req.ProductVariantID)
		switch {
		case err == nil:
			if err := s.cartRepo.UpdateQuantity(ctx, tx, userID, req.ProductID, req.ProductVariantID, line.Quantity+quantity); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			item := &model.CartItem{
				UserID:           userID,
				ProductID:        req.ProductID,
				ProductVariantID: req.ProductVariantID,
				Quantity:         quantity,
			}
			if err := s.cartRepo.Create(ctx, tx, item); err != nil {
				return err
			}
		default:
			return err
		}

		// only the newly requested delta leaves availability, also on the
		// already-in-cart path
		return s.variantRepo.AdjustQuantity(ctx, tx, req.ProductVariantID, -quantity)
	})

	if errors.Is(err, ErrOutOfStock) {
		return &dto.CartResult{Success: false, Type: OutcomeOutOfStock, Message: "not enough stock available"}, nil
	}
	if err != nil {
		return nil, err
	}

	return &dto.CartResult{Success: true, Type: OutcomeSuccess}, nil
}

func (s *cartServiceImpl) UpdateQuantity(ctx context.Context, userID string, req *dto.UpdateQuantityRequest) (*dto.UpdateQuantityResult, error) {
	if req.NewQuantity < 1 {
		return nil, ErrInvalidQuantity
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		variant, err := s.variantRepo.FindForUpdate(ctx, tx, req.ProductVariantID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVariantNotFound
			}
			return err
		}

		line, err := s.cartRepo.Find(ctx, tx, userID, req.ProductID, req.ProductVariantID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartItemNotFound
			}
			return err
		}

		// growing the line reserves more stock, shrinking it releases some
		delta := req.NewQuantity - line.Quantity
		if delta > 0 && variant.Quantity < delta {
			return ErrOutOfStock
		}

		if err := s.cartRepo.UpdateQuantity(ctx, tx, userID, req.ProductID, req.ProductVariantID, req.NewQuantity); err != nil {
			return err
		}
		return s.variantRepo.AdjustQuantity(ctx, tx, req.ProductVariantID, -delta)
	})

	if err != nil {
		return nil, err
	}

	return &dto.UpdateQuantityResult{Updated: true, NewQuantity: req.NewQuantity}, nil
}

func (s *cartServiceImpl) Delete(ctx context.Context, userID, productID, variantID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		line, err := s.cartRepo.Find(ctx, tx, userID, productID, variantID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartItemNotFound
			}
			return err
		}

		if err := s.cartRepo.Delete(ctx, tx, userID, productID, variantID); err != nil {
			return err
		}
		// the full reservation goes back to available stock
		return s.variantRepo.AdjustQuantity(ctx, tx, variantID, line.Quantity)
	})
}

func (s *cartServiceImpl) MoveToWishlist(ctx context.Context, userID, productID, variantID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		line, err := s.cartRepo.Find(ctx, tx, userID, productID, variantID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartItemNotFound
			}
			return err
		}

		if err := s.cartRepo.Delete(ctx, tx, userID, productID, variantID); err != nil {
			return err
		}
		if err := s.variantRepo.AdjustQuantity(ctx, tx, variantID, line.Quantity); err != nil {
			return err
		}

		return s.wishlistRepo.Create(ctx, tx, &model.WishlistItem{
			UserID:           userID,
			ProductID:        productID,
			ProductVariantID: variantID,
		})
	})
}

func (s *cartServiceImpl) List(ctx context.Context, userID string) ([]dto.CartLine, error) {
	items, err := s.cartRepo.ListByUser(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []dto.CartLine{}, nil
	}

	productIDs := make([]string, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}
	products, err := s.productRepo.FindMany(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	productMap := make(map[string]*model.Product, len(products))
	for _, p := range products {
		productMap[p.ID] = p
	}

	lines := make([]dto.CartLine, 0, len(items))
	for _, item := range items {
		product, ok := productMap[item.ProductID]
		if !ok {
			return nil, ErrProductNotFound
		}
		lines = append(lines, dto.CartLine{
			ProductID:        item.ProductID,
			ProductVariantID: item.ProductVariantID,
			Name:             product.Name,
			Quantity:         item.Quantity,
			Price:            product.Price,
			DiscountedPrice:  product.Price,
		})
	}
	return lines, nil
}

func (s *cartServiceImpl) Wishlist(ctx context.Context, userID string) ([]*model.WishlistItem, error) {
	return s.wishlistRepo.ListByUser(ctx, userID)
}
