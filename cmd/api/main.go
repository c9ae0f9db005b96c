package main

import (
	"clothing-store-backend/internal/client"
	"clothing-store-backend/internal/config"
	"clothing-store-backend/internal/handler"
	"clothing-store-backend/internal/pricing"
	"clothing-store-backend/internal/repository"
	"clothing-store-backend/internal/server"
	"clothing-store-backend/internal/service"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitDBClient(cfg.Database.Driver, cfg.Database.URL)

	productRepo := repository.NewProductRepository(db)
	variantRepo := repository.NewVariantRepository(db)
	cartRepo := repository.NewCartRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	discountRepo := repository.NewDiscountRepository(db)
	promoRepo := repository.NewPromoCodeRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	addressRepo := repository.NewAddressRepository(db)

	if cfg.Environment.Name == "development" {
		if err := productRepo.Seed(context.Background()); err != nil {
			log.Println("seed dev catalog:", err)
		}
	}

	charges := pricing.Charges{
		FreeShippingLimit: cfg.Checkout.FreeShippingLimit,
		ShippingCharges:   cfg.Checkout.ShippingCharges,
		TaxPercentage:     cfg.Checkout.TaxPercentage,
	}

	cartService := service.NewCartService(db, cartRepo, variantRepo, productRepo, wishlistRepo)
	discountService := service.NewDiscountService(discountRepo, promoRepo)
	checkoutService := service.NewCheckoutService(
		db, charges,
		cartRepo, productRepo, variantRepo, discountRepo, orderRepo, addressRepo,
		discountService,
	)

	srv := server.NewServer(
		handler.NewCartHandler(cartService),
		handler.NewCheckoutHandler(checkoutService),
		handler.NewCatalogHandler(productRepo, variantRepo, addressRepo),
		handler.NewAdminHandler(discountService),
		cfg.Auth.Secret,
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
