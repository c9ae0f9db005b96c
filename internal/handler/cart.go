package handler

import (
	"clothing-store-backend/internal/dto"
	"clothing-store-backend/internal/service"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// httpError maps service sentinels onto status codes; anything unknown stays
// a 500 through echo's default handler.
func httpError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidQuantity), errors.Is(err, service.ErrInvalidDiscount):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrCartItemNotFound),
		errors.Is(err, service.ErrVariantNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrAddressNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrOutOfStock):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return err
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	lines, err := h.cartService.List(ctx, userID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"items": lines})
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	var req dto.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ProductID == "" || req.ProductVariantID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "productId and productVariantId are required")
	}

	result, err := h.cartService.Add(ctx, userID, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	var req dto.UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.cartService.UpdateQuantity(ctx, userID, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *CartHandler) DeleteCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	var req dto.CartLineKeyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.cartService.Delete(ctx, userID, req.ProductID, req.ProductVariantID); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}

func (h *CartHandler) MoveToWishlist(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	var req dto.CartLineKeyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.cartService.MoveToWishlist(ctx, userID, req.ProductID, req.ProductVariantID); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"moved": true})
}

func (h *CartHandler) GetWishlist(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	items, err := h.cartService.Wishlist(ctx, userID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"items": items})
}
