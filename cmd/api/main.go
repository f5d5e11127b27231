package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/TheAdijagtap/erpx/internal/application/service"
	"github.com/TheAdijagtap/erpx/internal/config"
	"github.com/TheAdijagtap/erpx/internal/infrastructure/database"
	"github.com/TheAdijagtap/erpx/internal/infrastructure/repository"
	"github.com/TheAdijagtap/erpx/internal/mutation"
	"github.com/TheAdijagtap/erpx/internal/presentation/http/handler"
	"github.com/TheAdijagtap/erpx/internal/presentation/http/routes"
	"github.com/TheAdijagtap/erpx/internal/readmodel"
	"github.com/TheAdijagtap/erpx/pkg/oauth"
	"github.com/TheAdijagtap/erpx/pkg/utils"
	"github.com/gin-gonic/gin"
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

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	productRepo := repository.NewProductRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	purchaseOrderRepo := repository.NewPurchaseOrderRepository(db)
	goodsReceiptRepo := repository.NewGoodsReceiptRepository(db)
	proformaInvoiceRepo := repository.NewProformaInvoiceRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	payrollRepo := repository.NewPayrollRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize the in-memory read model and mutation pipeline
	store := readmodel.NewStore()
	loader := repository.NewSnapshotLoader(db)
	pipeline := mutation.NewPipeline(store, loader)

	// Block until the first snapshot is in memory so reads never
	// serve an empty store after startup
	loadCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	if err := pipeline.Reload(loadCtx); err != nil {
		cancel()
		log.Fatalf("Failed to load initial snapshot: %v", err)
	}
	cancel()

	monitor := readmodel.NewStalenessMonitor(cfg.Snapshot.StaleThreshold)

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(
		cfg.OAuth.GoogleClientID,
		cfg.OAuth.GoogleClientSecret,
		cfg.OAuth.GoogleRedirectURL,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, googleOAuthService)
	inventoryService := service.NewInventoryService(store, pipeline, itemRepo)
	productService := service.NewProductService(store, pipeline, productRepo)
	supplierService := service.NewSupplierService(store, pipeline, supplierRepo)
	customerService := service.NewCustomerService(store, pipeline, customerRepo)
	purchaseOrderService := service.NewPurchaseOrderService(store, pipeline, purchaseOrderRepo)
	goodsReceiptService := service.NewGoodsReceiptService(store, pipeline, goodsReceiptRepo)
	proformaInvoiceService := service.NewProformaInvoiceService(store, pipeline, proformaInvoiceRepo)
	payrollService := service.NewPayrollService(store, pipeline, employeeRepo, payrollRepo)
	dashboardService := service.NewDashboardService(store)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:            handler.NewAuthHandler(authService),
		Item:            handler.NewItemHandler(inventoryService),
		Product:         handler.NewProductHandler(productService),
		Supplier:        handler.NewSupplierHandler(supplierService),
		Customer:        handler.NewCustomerHandler(customerService),
		PurchaseOrder:   handler.NewPurchaseOrderHandler(purchaseOrderService),
		GoodsReceipt:    handler.NewGoodsReceiptHandler(goodsReceiptService),
		ProformaInvoice: handler.NewProformaInvoiceHandler(proformaInvoiceService),
		Payroll:         handler.NewPayrollHandler(payrollService),
		Dashboard:       handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		Store:           store,
		Pipeline:        pipeline,
		Monitor:         monitor,
	})

	// Start server
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s on port %s", cfg.App.Name, port)
	if err := router.Run(":" + port); err != nil {
		log.Printf("Server error: %v", err)
		os.Exit(1)
	}
}
