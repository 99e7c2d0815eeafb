// Package v1 provides HTTP API version 1.
package v1

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/auth"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/catalogs/product"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/documents/invoice"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/cost"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/ledgers/production"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/registers/stock"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/reports"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/infrastructure/export"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/infrastructure/http/v1/handlers"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/infrastructure/http/v1/middleware"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/infrastructure/storage/postgres"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/infrastructure/storage/postgres/catalog_repo"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/infrastructure/storage/postgres/document_repo"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/infrastructure/storage/postgres/ledger_repo"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/infrastructure/storage/postgres/report_repo"
	"github.com/SinaGanjii/industrial-company-website-sub000/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	Pool *postgres.Pool

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// AuthService for authentication endpoints
	AuthService *auth.Service

	// WorkshopName appears on exported documents.
	WorkshopName string
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// Shared infrastructure
	txm := postgres.NewTxManager(cfg.Pool)

	auditService, err := postgres.NewAuditService(txm)
	if err != nil {
		// zstd codec initialization only fails on bad options.
		logger.Warn(context.Background(), "audit service disabled", "error", err)
		auditService = nil
	}

	baseHandler := handlers.NewBaseHandler(auditService)

	// Repositories
	productRepo := catalog_repo.NewProductRepo(txm)
	productionRepo := ledger_repo.NewProductionRepo(txm)
	costRepo := ledger_repo.NewCostRepo(txm)
	saleRepo := ledger_repo.NewSaleRepo(txm)
	invoiceRepo := document_repo.NewInvoiceRepo(txm)
	snapshotRepo := report_repo.NewSnapshotRepo(txm, productRepo, productionRepo, invoiceRepo, saleRepo, costRepo)

	// Services
	productService := product.NewService(productRepo)
	productionService := production.NewService(productionRepo, productRepo)
	costService := cost.NewService(costRepo)
	invoiceService := invoice.NewService(invoiceRepo, saleRepo, txm)
	stockService := stock.NewService(report_repo.NewStockSnapshotRepo(snapshotRepo))
	reportsService := reports.NewService(snapshotRepo)

	// API v1
	apiV1 := router.Group("/api/v1")
	{
		registerAuthRoutes(apiV1, baseHandler, cfg)

		protected := apiV1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		registerCatalogRoutes(protected, baseHandler, productService)
		registerLedgerRoutes(protected, baseHandler, productionService, costService)
		registerDocumentRoutes(protected, baseHandler, invoiceService, productService)
		registerRegisterRoutes(protected, baseHandler, stockService)
		registerReportRoutes(protected, baseHandler, reportsService, invoiceService, cfg.WorkshopName)
	}

	return router
}

// registerAuthRoutes registers authentication endpoints.
func registerAuthRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	authHandler := handlers.NewAuthHandler(base, cfg.AuthService)

	public := rg.Group("/auth")
	public.POST("/login", authHandler.Login)

	protected := rg.Group("/auth")
	protected.Use(middleware.Auth(cfg.JWTValidator))
	protected.GET("/me", authHandler.Me)

	admin := protected.Group("")
	admin.Use(middleware.RequireAdmin())
	admin.POST("/users", authHandler.CreateUser)
}

// registerCatalogRoutes registers catalog endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, products *product.Service) {
	handler := handlers.NewProductHandler(base, products)

	group := rg.Group("/catalogs/products")
	group.GET("", handler.List)
	group.GET("/:id", handler.GetByID)

	admin := group.Group("")
	admin.Use(middleware.RequireAdmin())
	admin.POST("", handler.Create)
	admin.PUT("/:id", handler.Update)
	admin.DELETE("/:id", handler.Delete)
}

// registerLedgerRoutes registers production and cost ledger endpoints.
func registerLedgerRoutes(
	rg *gin.RouterGroup,
	base *handlers.BaseHandler,
	productions *production.Service,
	costs *cost.Service,
) {
	productionHandler := handlers.NewProductionHandler(base, productions)
	costHandler := handlers.NewCostHandler(base, costs)

	prodGroup := rg.Group("/ledgers/productions")
	prodGroup.GET("", productionHandler.List)

	prodAdmin := prodGroup.Group("")
	prodAdmin.Use(middleware.RequireAdmin())
	prodAdmin.POST("", productionHandler.Record)
	prodAdmin.DELETE("/:id", productionHandler.Delete)

	costGroup := rg.Group("/ledgers/costs")
	costGroup.GET("", costHandler.List)

	costAdmin := costGroup.Group("")
	costAdmin.Use(middleware.RequireAdmin())
	costAdmin.POST("", costHandler.Create)
	costAdmin.PUT("/:id", costHandler.Update)
	costAdmin.DELETE("/:id", costHandler.Delete)
}

// registerDocumentRoutes registers invoice endpoints.
func registerDocumentRoutes(
	rg *gin.RouterGroup,
	base *handlers.BaseHandler,
	invoices *invoice.Service,
	products *product.Service,
) {
	handler := handlers.NewInvoiceHandler(base, invoices, products)

	group := rg.Group("/documents/invoices")
	group.GET("", handler.List)
	group.GET("/:id", handler.GetByID)

	admin := group.Group("")
	admin.Use(middleware.RequireAdmin())
	admin.POST("", handler.Create)
	admin.PUT("/:id", handler.Update)
	admin.POST("/:id/approve", handler.Approve)
	admin.POST("/:id/pay", handler.MarkPaid)
}

// registerRegisterRoutes registers the stock register endpoints.
func registerRegisterRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, stocks *stock.Service) {
	handler := handlers.NewStockHandler(base, stocks)

	group := rg.Group("/registers/stock")
	group.GET("", handler.List)
	group.GET("/:id", handler.GetByProduct)
}

// registerReportRoutes registers reporting and export endpoints.
func registerReportRoutes(
	rg *gin.RouterGroup,
	base *handlers.BaseHandler,
	reportsSvc *reports.Service,
	invoices *invoice.Service,
	workshopName string,
) {
	reportsHandler := handlers.NewReportsHandler(base, reportsSvc)
	exportHandler := handlers.NewExportHandler(
		base,
		reportsSvc,
		invoices,
		export.NewExcelExporter(),
		export.NewPDFExporter(workshopName),
	)

	group := rg.Group("/reports")
	group.GET("/daily", reportsHandler.Daily)
	group.GET("/monthly", reportsHandler.Monthly)
	group.GET("/custom", reportsHandler.Custom)
	group.GET("/monthly/excel", exportHandler.MonthlyExcel)
	group.GET("/monthly/pdf", exportHandler.MonthlyPDF)
	group.GET("/custom/excel", exportHandler.CustomExcel)
	group.GET("/custom/pdf", exportHandler.CustomPDF)

	rg.GET("/documents/invoices/:id/pdf", exportHandler.InvoicePDF)
}
