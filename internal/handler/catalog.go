package handler

import (
	"clothing-store-backend/internal/dto"
	"clothing-store-backend/internal/model"
	"clothing-store-backend/internal/repository"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the storefront read models the pricing engine joins
// against: products, variants, addresses.
type CatalogHandler struct {
	productRepo repository.ProductRepository
	variantRepo repository.VariantRepository
	addressRepo repository.AddressRepository
}

func NewCatalogHandler(
	productRepo repository.ProductRepository,
	variantRepo repository.VariantRepository,
	addressRepo repository.AddressRepository,
) *CatalogHandler {
	return &CatalogHandler{
		productRepo: productRepo,
		variantRepo: variantRepo,
		addressRepo: addressRepo,
	}
}

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.productRepo.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"products": products})
}

func (h *CatalogHandler) ListVariants(c echo.Context) error {
	ctx := c.Request().Context()
	productID := c.Param("id")

	variants, err := h.variantRepo.ListByProduct(ctx, productID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"variants": variants})
}

func (h *CatalogHandler) CreateAddress(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	var req dto.CreateAddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Line1 == "" || req.City == "" || req.Zipcode == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "line1, city and zipcode are required")
	}

	address := &model.Address{
		ID:      uuid.NewString(),
		UserID:  userID,
		Line1:   req.Line1,
		Line2:   req.Line2,
		City:    req.City,
		State:   req.State,
		Zipcode: req.Zipcode,
		Phone:   req.Phone,
	}
	if err := h.addressRepo.Create(ctx, address); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, address)
}

func (h *CatalogHandler) ListAddresses(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	addresses, err := h.addressRepo.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"addresses": addresses})
}
