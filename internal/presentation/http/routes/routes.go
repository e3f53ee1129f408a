package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Vyora-Platform/vendor-api/internal/config"
	domainRepo "github.com/Vyora-Platform/vendor-api/internal/domain/repository"
	"github.com/Vyora-Platform/vendor-api/internal/presentation/http/handler"
	"github.com/Vyora-Platform/vendor-api/internal/presentation/http/middleware"
	"github.com/Vyora-Platform/vendor-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Checkout *handler.CheckoutHandler
	Coupon   *handler.CouponHandler
	Stock    *handler.StockHandler
	Ledger   *handler.LedgerHandler
	Product  *handler.ProductHandler
	Customer *handler.CustomerHandler
	Supplier *handler.SupplierHandler
	Printer  *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required, vendor scoped)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(middleware.VendorMiddleware())

		// Per-vendor rate limiter
		rateLimiter := middleware.NewVendorRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.GET("/profile", h.Auth.Me)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Checkout and bills
	registerCheckoutRoutes(protected, h, deps)

	// Coupons
	registerCouponRoutes(protected, h)

	// Products and stock
	registerProductRoutes(protected, h)
	registerStockRoutes(protected, h)

	// Khata ledger
	registerLedgerRoutes(protected, h)

	// Customers
	registerCustomerRoutes(protected, h)

	// Suppliers
	registerSupplierRoutes(protected, h)

	// Printer
	registerPrinterRoutes(protected, h)
}

func registerCheckoutRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	protected.POST("/pricing/preview", h.Checkout.PreviewPricing)

	// Checkout requires an idempotency key so a retried request replays the
	// committed bill instead of selling the stock twice.
	protected.POST("/checkout", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	}), h.Checkout.Checkout)

	bills := protected.Group("/bills")
	{
		bills.GET("", h.Checkout.ListBills)
		bills.GET("/:id", h.Checkout.GetBill)
		bills.POST("/:id/pay-due", h.Checkout.PayDue)
		bills.POST("/:id/print", h.Printer.PrintBill)
	}
}

func registerCouponRoutes(protected *gin.RouterGroup, h *Handlers) {
	coupons := protected.Group("/coupons")
	{
		coupons.POST("", h.Coupon.Create)
		coupons.POST("/validate", h.Coupon.Validate)
	}
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)

		products.POST("/:id/stock-in", h.Stock.StockIn)
		products.POST("/:id/stock-out", h.Stock.StockOut)
		products.POST("/:id/reserve", h.Stock.Reserve)
		products.GET("/:id/stock", h.Stock.GetStockLevel)
	}
}

func registerStockRoutes(protected *gin.RouterGroup, h *Handlers) {
	stock := protected.Group("/stock")
	{
		stock.GET("/movements", h.Stock.ListMovements)
		stock.GET("/low", h.Stock.ListLowStock)
	}
}

func registerLedgerRoutes(protected *gin.RouterGroup, h *Handlers) {
	ledger := protected.Group("/ledger")
	{
		ledger.GET("/transactions", h.Ledger.ListTransactions)
		ledger.POST("/postings", h.Ledger.CreatePosting)
		ledger.GET("/customers/:id/balance", h.Ledger.GetCustomerBalance)
		ledger.GET("/suppliers/:id/balance", h.Ledger.GetSupplierBalance)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerSupplierRoutes(protected *gin.RouterGroup, h *Handlers) {
	suppliers := protected.Group("/suppliers")
	{
		suppliers.GET("", h.Supplier.List)
		suppliers.POST("", h.Supplier.Create)
		suppliers.GET("/:id", h.Supplier.Get)
		suppliers.PUT("/:id", h.Supplier.Update)
		suppliers.DELETE("/:id", h.Supplier.Delete)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.Status)
		printerGroup.POST("/test", h.Printer.TestPrint)
	}
}
