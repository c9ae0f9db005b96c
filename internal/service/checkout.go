package service

import (
	"clothing-store-backend/internal/dto"
	"clothing-store-backend/internal/model"
	"clothing-store-backend/internal/pricing"
	"clothing-store-backend/internal/repository"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckoutService prices the cart. Preview is the read path; PlaceOrder
// recomputes the same numbers from the live cart at commit time; a client
// supplied total is never trusted.
type CheckoutService interface {
	Preview(ctx context.Context, userID, promoCode string) (*dto.CheckoutPreview, error)
	PlaceOrder(ctx context.Context, userID string, req *dto.PlaceOrderRequest) (*dto.PlaceOrderResult, error)
	ListOrders(ctx context.Context, userID string) ([]*model.Order, error)
}

type checkoutServiceImpl struct {
	db              *gorm.DB
	charges         pricing.Charges
	cartRepo        repository.CartRepository
	productRepo     repository.ProductRepository
	variantRepo     repository.VariantRepository
	discountRepo    repository.DiscountRepository
	orderRepo       repository.OrderRepository
	addressRepo     repository.AddressRepository
	discountService DiscountService
}

func NewCheckoutService(
	db *gorm.DB,
	charges pricing.Charges,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	variantRepo repository.VariantRepository,
	discountRepo repository.DiscountRepository,
	orderRepo repository.OrderRepository,
	addressRepo repository.AddressRepository,
	discountService DiscountService,
) CheckoutService {
	return &checkoutServiceImpl{
		db:              db,
		charges:         charges,
		cartRepo:        cartRepo,
		productRepo:     productRepo,
		variantRepo:     variantRepo,
		discountRepo:    discountRepo,
		orderRepo:       orderRepo,
		addressRepo:     addressRepo,
		discountService: discountService,
	}
}

// pricedLine pairs the outward cart line with the raw per-line numbers the
// order snapshot needs.
type pricedLine struct {
	line   dto.CartLine
	item   *model.CartItem
	saving float64
}

// priceCart joins the cart with the discount catalog and projects every line.
// The catalog is loaded once per call, never per line. The tx parameter lets
// order placement price against the cart rows of its own transaction.
func (s *checkoutServiceImpl) priceCart(ctx context.Context, tx *gorm.DB, userID string, promo *pricing.Discount) ([]pricedLine, float64, float64, error) {
	items, err := s.cartRepo.ListByUser(ctx, tx, userID)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, 0, 0, nil
	}

	productIDs := make([]string, 0, len(items))
	variantIDs := make([]string, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
		variantIDs = append(variantIDs, item.ProductVariantID)
	}

	products, err := s.productRepo.FindMany(ctx, productIDs)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("load products: %w", err)
	}
	productMap := make(map[string]*model.Product, len(products))
	for _, p := range products {
		productMap[p.ID] = p
	}

	variants, err := s.variantRepo.FindMany(ctx, variantIDs)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("load variants: %w", err)
	}
	variantMap := make(map[string]*model.ProductVariant, len(variants))
	for _, v := range variants {
		variantMap[v.ID] = v
	}

	images, err := s.productRepo.Images(ctx, productIDs)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("load images: %w", err)
	}
	imageMap := make(map[string]string, len(images))
	for _, img := range images {
		key := img.ProductID + "/" + img.ColorID
		if _, ok := imageMap[key]; !ok {
			imageMap[key] = img.URL
		}
	}

	catalog, err := s.discountRepo.Catalog(ctx)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("load discount catalog: %w", err)
	}

	var subtotal, savings float64
	lines := make([]pricedLine, 0, len(items))
	for _, item := range items {
		product, ok := productMap[item.ProductID]
		if !ok {
			return nil, 0, 0, ErrProductNotFound
		}
		price := product.Price

		candidates := pricing.Applicable(item.ProductID, product.CategoryID, product.SubcategoryID, catalog)
		// promo candidates join the pool after the catalog, so a catalog
		// discount wins exact ties
		if promo != nil && promo.AppliesTo(item.ProductID, product.CategoryID, product.SubcategoryID) {
			candidates = append(candidates, *promo)
		}
		best := pricing.SelectBest(candidates, price, item.Quantity)

		saving := pricing.LineSaving(price, item.Quantity, best)
		subtotal += price * float64(item.Quantity)
		savings += saving

		imageURL := ""
		if variant, ok := variantMap[item.ProductVariantID]; ok {
			imageURL = imageMap[item.ProductID+"/"+variant.ColorID]
		}

		lines = append(lines, pricedLine{
			line: dto.CartLine{
				ProductID:        item.ProductID,
				ProductVariantID: item.ProductVariantID,
				Name:             product.Name,
				ImageURL:         imageURL,
				Quantity:         item.Quantity,
				Price:            price,
				DiscountedPrice:  pricing.UnitPrice(price, item.Quantity, best),
				DiscountLabel:    pricing.Label(best),
			},
			item:   item,
			saving: saving,
		})
	}

	return lines, subtotal, savings, nil
}

func (s *checkoutServiceImpl) Preview(ctx context.Context, userID, promoCode string) (*dto.CheckoutPreview, error) {
	var promo *pricing.Discount
	if promoCode != "" {
		var err error
		promo, err = s.discountService.PromoCandidate(ctx, promoCode, userID)
		if err != nil {
			return nil, fmt.Errorf("resolve promo code: %w", err)
		}
	}

	priced, subtotal, savings, err := s.priceCart(ctx, s.db, userID, promo)
	if err != nil {
		return nil, err
	}
	if len(priced) == 0 {
		return &dto.CheckoutPreview{Lines: []dto.CartLine{}}, nil
	}

	lines := make([]dto.CartLine, len(priced))
	totalItems := 0
	for i, pl := range priced {
		lines[i] = pl.line
		totalItems += pl.item.Quantity
	}

	return &dto.CheckoutPreview{
		Lines:  lines,
		Totals: s.charges.Finalize(subtotal, savings, totalItems),
	}, nil
}

func (s *checkoutServiceImpl) PlaceOrder(ctx context.Context, userID string, req *dto.PlaceOrderRequest) (*dto.PlaceOrderResult, error) {
	if _, err := s.addressRepo.FindForUser(ctx, req.AddressID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, err
	}

	orderID := uuid.NewString()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		priced, subtotal, savings, err := s.priceCart(ctx, tx, userID, nil)
		if err != nil {
			return err
		}
		if len(priced) == 0 {
			return errCartEmpty
		}

		totalItems := 0
		for _, pl := range priced {
			totalItems += pl.item.Quantity
		}
		totals := s.charges.Finalize(subtotal, savings, totalItems)

		order := &model.Order{
			ID:             orderID,
			UserID:         userID,
			Status:         "PLACED",
			OriginalAmount: totals.Subtotal,
			DiscountAmount: totals.Savings,
			TotalAmount:    pricing.Round2(subtotal - savings),
			ShippingAmount: totals.Shipping,
			TaxAmount:      totals.Tax,
			FinalAmount:    totals.Total,
			PaymentMethod:  req.PaymentMethod,
			AddressID:      req.AddressID,
		}
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("store order: %w", err)
		}

		orderItems := make([]*model.OrderItem, len(priced))
		for i, pl := range priced {
			orderItems[i] = &model.OrderItem{
				OrderID:          orderID,
				ProductID:        pl.item.ProductID,
				ProductVariantID: pl.item.ProductVariantID,
				Quantity:         pl.item.Quantity,
				Price:            pl.line.Price,
				DiscountAmount:   pricing.Round2(pl.saving),
				Total:            pricing.Round2(pl.line.Price*float64(pl.item.Quantity) - pl.saving),
			}
		}
		if err := s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
			return fmt.Errorf("store order items: %w", err)
		}

		// the cart empties on success; the reserved stock stays decremented,
		// which is the reservation turning into a sale
		if err := s.cartRepo.DeleteAllForUser(ctx, tx, userID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
		return nil
	})

	if errors.Is(err, errCartEmpty) {
		return &dto.PlaceOrderResult{Success: false, OrderID: nil, Type: OutcomeCartEmpty, Message: "cart is empty"}, nil
	}
	if err != nil {
		return nil, err
	}

	return &dto.PlaceOrderResult{Success: true, OrderID: &orderID, Type: OutcomeSuccess, Message: "order placed"}, nil
}

func (s *checkoutServiceImpl) ListOrders(ctx context.Context, userID string) ([]*model.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}
