package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Vyora-Platform/vendor-api/internal/application/service"
	"github.com/Vyora-Platform/vendor-api/internal/config"
	"github.com/Vyora-Platform/vendor-api/internal/infrastructure/database"
	"github.com/Vyora-Platform/vendor-api/internal/infrastructure/repository"
	"github.com/Vyora-Platform/vendor-api/internal/presentation/http/handler"
	"github.com/Vyora-Platform/vendor-api/internal/presentation/http/routes"
	"github.com/Vyora-Platform/vendor-api/pkg/printer"
	"github.com/Vyora-Platform/vendor-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	billRepo := repository.NewBillRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	movementRepo := repository.NewStockMovementRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	txManager := repository.NewTxManager(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, vendorRepo, txManager, jwtManager)
	pricingService := service.NewPricingService(cfg.Pricing.TaxRateBp)
	couponService := service.NewCouponService(couponRepo)
	stockService := service.NewStockService(productRepo, movementRepo, txManager, cfg.Stock.LowThreshold, cfg.Stock.HighThreshold)
	checkoutService := service.NewCheckoutService(
		billRepo,
		orderRepo,
		customerRepo,
		couponRepo,
		ledgerRepo,
		vendorRepo,
		pricingService,
		couponService,
		stockService,
		txManager,
	)
	ledgerService := service.NewLedgerService(ledgerRepo, vendorRepo, service.BalancePolicy{
		CountExcluded: cfg.Ledger.CountExcludedPostings,
	})
	productService := service.NewProductService(productRepo, cfg.Stock.LowThreshold)
	customerService := service.NewCustomerService(customerRepo)
	supplierService := service.NewSupplierService(supplierRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.Device,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, billRepo, vendorRepo, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Checkout: handler.NewCheckoutHandler(checkoutService),
		Coupon:   handler.NewCouponHandler(couponService),
		Stock:    handler.NewStockHandler(stockService),
		Ledger:   handler.NewLedgerHandler(ledgerService),
		Product:  handler.NewProductHandler(productService),
		Customer: handler.NewCustomerHandler(customerService),
		Supplier: handler.NewSupplierHandler(supplierService),
		Printer:  handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
