package handler

import (
	"clothing-store-backend/internal/dto"
	"clothing-store-backend/internal/service"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// AdminHandler is the dashboard's discount and promo-code management.
type AdminHandler struct {
	discountService service.DiscountService
}

func NewAdminHandler(discountService service.DiscountService) *AdminHandler {
	return &AdminHandler{
		discountService: discountService,
	}
}

func (h *AdminHandler) CreateDiscount(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateDiscountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	discount, err := h.discountService.CreateDiscount(ctx, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, discount)
}

func (h *AdminHandler) ListDiscounts(c echo.Context) error {
	ctx := c.Request().Context()

	catalog, err := h.discountService.Catalog(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"discounts": catalog})
}

func (h *AdminHandler) DeleteDiscount(c echo.Context) error {
	ctx := c.Request().Context()
	discountID := c.Param("id")

	if err := h.discountService.DeleteDiscount(ctx, discountID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "discount not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}

func (h *AdminHandler) CreatePromoCode(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreatePromoCodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	promo, err := h.discountService.CreatePromoCode(ctx, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, promo)
}

func (h *AdminHandler) ListPromoCodes(c echo.Context) error {
	ctx := c.Request().Context()

	codes, err := h.discountService.ListPromoCodes(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"promoCodes": codes})
}
