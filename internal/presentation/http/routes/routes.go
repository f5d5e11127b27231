package routes

import (
	"time"

	"github.com/TheAdijagtap/erpx/internal/config"
	domainRepo "github.com/TheAdijagtap/erpx/internal/domain/repository"
	"github.com/TheAdijagtap/erpx/internal/mutation"
	"github.com/TheAdijagtap/erpx/internal/presentation/http/handler"
	"github.com/TheAdijagtap/erpx/internal/presentation/http/dto/response"
	"github.com/TheAdijagtap/erpx/internal/presentation/http/middleware"
	"github.com/TheAdijagtap/erpx/internal/readmodel"
	"github.com/TheAdijagtap/erpx/pkg/apperror"
	"github.com/TheAdijagtap/erpx/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth            *handler.AuthHandler
	Item            *handler.ItemHandler
	Product         *handler.ProductHandler
	Supplier        *handler.SupplierHandler
	Customer        *handler.CustomerHandler
	PurchaseOrder   *handler.PurchaseOrderHandler
	GoodsReceipt    *handler.GoodsReceiptHandler
	ProformaInvoice *handler.ProformaInvoiceHandler
	Payroll         *handler.PayrollHandler
	Dashboard       *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	Store           *readmodel.Store
	Pipeline        *mutation.Pipeline
	Monitor         *readmodel.StalenessMonitor
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// Readiness depends on the read model being populated
	router.GET("/readyz", func(c *gin.Context) {
		if deps.Store.Loading() {
			response.Error(c, apperror.ErrCacheLoading)
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Requests on a cold read model trigger a background refresh
		protected.Use(middleware.StalenessRefresh(deps.Monitor, deps.Pipeline))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
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
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard/summary", h.Dashboard.GetSummary)

	// Inventory items and stock ledger
	registerItemRoutes(protected, h)

	// Products
	registerProductRoutes(protected, h)

	// Contacts
	registerSupplierRoutes(protected, h)
	registerCustomerRoutes(protected, h)

	// Documents
	registerPurchaseOrderRoutes(protected, h)
	registerGoodsReceiptRoutes(protected, h, deps)
	registerProformaInvoiceRoutes(protected, h)

	// Payroll (Admin)
	registerPayrollRoutes(protected, h)
}

func registerItemRoutes(protected *gin.RouterGroup, h *Handlers) {
	items := protected.Group("/items")
	{
		items.GET("", h.Item.List)
		items.POST("", h.Item.Create)
		items.GET("/low-stock", h.Item.GetLowStock)
		items.GET("/:id", h.Item.Get)
		items.PUT("/:id", h.Item.Update)
		items.DELETE("/:id", h.Item.Delete)
		items.POST("/:id/adjust", h.Item.AdjustStock)
		items.GET("/:id/transactions", h.Item.ListItemTransactions)
	}

	protected.GET("/transactions", h.Item.ListTransactions)
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
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

func registerPurchaseOrderRoutes(protected *gin.RouterGroup, h *Handlers) {
	orders := protected.Group("/purchase-orders")
	{
		orders.GET("", h.PurchaseOrder.List)
		orders.POST("", h.PurchaseOrder.Create)
		orders.GET("/:id", h.PurchaseOrder.Get)
		orders.PUT("/:id", h.PurchaseOrder.Update)
		orders.DELETE("/:id", h.PurchaseOrder.Delete)
	}
}

func registerGoodsReceiptRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	receipts := protected.Group("/goods-receipts")
	{
		receipts.GET("", h.GoodsReceipt.List)
		// Receipt creation moves stock, so it uses idempotency middleware
		// to prevent duplicates on retry
		receipts.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.GoodsReceipt.Create)
		receipts.GET("/:id", h.GoodsReceipt.Get)
		receipts.PUT("/:id", h.GoodsReceipt.Update)
		receipts.DELETE("/:id", h.GoodsReceipt.Delete)
	}
}

func registerProformaInvoiceRoutes(protected *gin.RouterGroup, h *Handlers) {
	invoices := protected.Group("/proforma-invoices")
	{
		invoices.GET("", h.ProformaInvoice.List)
		invoices.POST("", h.ProformaInvoice.Create)
		invoices.GET("/:id", h.ProformaInvoice.Get)
		invoices.PUT("/:id", h.ProformaInvoice.Update)
		invoices.DELETE("/:id", h.ProformaInvoice.Delete)
	}
}

func registerPayrollRoutes(protected *gin.RouterGroup, h *Handlers) {
	employees := protected.Group("/employees")
	employees.Use(middleware.RequireAdmin())
	{
		employees.GET("", h.Payroll.ListEmployees)
		employees.POST("", h.Payroll.CreateEmployee)
		employees.GET("/:id", h.Payroll.GetEmployee)
		employees.PUT("/:id", h.Payroll.UpdateEmployee)
		employees.DELETE("/:id", h.Payroll.DeleteEmployee)
	}

	payroll := protected.Group("/payroll")
	payroll.Use(middleware.RequireAdmin())
	{
		payroll.GET("", h.Payroll.ListPayrollRecords)
		payroll.POST("", h.Payroll.CreatePayrollRecord)
		payroll.GET("/:id", h.Payroll.GetPayrollRecord)
		payroll.PUT("/:id", h.Payroll.UpdatePayrollRecord)
		payroll.POST("/:id/pay", h.Payroll.MarkPayrollPaid)
		payroll.DELETE("/:id", h.Payroll.DeletePayrollRecord)
	}
}
