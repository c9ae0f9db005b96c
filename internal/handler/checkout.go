package handler

import (
	"clothing-store-backend/internal/dto"
	"clothing-store-backend/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

func (h *CheckoutHandler) Preview(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)
	promoCode := c.QueryParam("promo")

	preview, err := h.checkoutService.Preview(ctx, userID, promoCode)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, preview)
}

func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	var req dto.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.AddressID == "" || req.PaymentMethod == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "addressId and paymentMethod are required")
	}

	result, err := h.checkoutService.PlaceOrder(ctx, userID, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *CheckoutHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	orders, err := h.checkoutService.ListOrders(ctx, userID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"orders": orders})
}
