package server

import (
	"clothing-store-backend/internal/handler"
	appmiddleware "clothing-store-backend/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo            *echo.Echo
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	catalogHandler  *handler.CatalogHandler
	adminHandler    *handler.AdminHandler
	jwtSecret       string
}

func NewServer(
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
	catalogHandler *handler.CatalogHandler,
	adminHandler *handler.AdminHandler,
	jwtSecret string,
) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:            e,
		cartHandler:     cartHandler,
		checkoutHandler: checkoutHandler,
		catalogHandler:  catalogHandler,
		adminHandler:    adminHandler,
		jwtSecret:       jwtSecret,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	api.GET("/products", s.catalogHandler.ListProducts)
	api.GET("/products/:id/variants", s.catalogHandler.ListVariants)

	auth := api.Group("", appmiddleware.Auth(s.jwtSecret))

	auth.GET("/cart", s.cartHandler.GetCart)
	auth.POST("/cart", s.cartHandler.AddToCart)
	auth.PUT("/cart", s.cartHandler.UpdateQuantity)
	auth.DELETE("/cart", s.cartHandler.DeleteCartItem)
	auth.POST("/cart/wishlist", s.cartHandler.MoveToWishlist)
	auth.GET("/wishlist", s.cartHandler.GetWishlist)

	auth.GET("/checkout/preview", s.checkoutHandler.Preview)
	auth.POST("/orders", s.checkoutHandler.PlaceOrder)
	auth.GET("/orders", s.checkoutHandler.ListOrders)

	auth.POST("/addresses", s.catalogHandler.CreateAddress)
	auth.GET("/addresses", s.catalogHandler.ListAddresses)

	admin := auth.Group("/admin", appmiddleware.RequireAdmin())
	admin.POST("/discounts", s.adminHandler.CreateDiscount)
	admin.GET("/discounts", s.adminHandler.ListDiscounts)
	admin.DELETE("/discounts/:id", s.adminHandler.DeleteDiscount)
	admin.POST("/promocodes", s.adminHandler.CreatePromoCode)
	admin.GET("/promocodes", s.adminHandler.ListPromoCodes)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
