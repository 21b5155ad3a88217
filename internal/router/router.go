// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/catalog-web/internal/config"
	"github.com/javajoker/catalog-web/internal/handlers"
	"github.com/javajoker/catalog-web/internal/middleware"
	"github.com/javajoker/catalog-web/internal/services"
	"github.com/javajoker/catalog-web/internal/views"
)

func Initialize(cfg *config.Config, source services.RowSource) (*gin.Engine, error) {
	// Initialize services
	catalogService := services.NewCatalogService(source)
	qrService := services.NewQRService()
	exportService := services.NewExportService()

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService, qrService, exportService, handlers.PageSettings{
		Title:      cfg.Catalog.Title,
		FooterYear: cfg.Catalog.FooterYear,
		QREnabled:  cfg.Catalog.QREnabled,
	})

	tmpl, err := views.Load()
	if err != nil {
		return nil, err
	}

	// Initialize Gin router
	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
		})
	})

	// Every other route fetches the spreadsheet.
	limited := r.Group("")
	limited.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	{
		limited.GET("/", catalogHandler.GetCatalogPage)
		limited.GET("/api/catalog", catalogHandler.GetCatalog)

		if cfg.Catalog.QREnabled {
			qr := limited.Group("/qr")
			{
				qr.GET("", catalogHandler.GetQRPage)
				qr.GET("/pdf", catalogHandler.DownloadPDF)
				qr.GET("/svg", catalogHandler.DownloadSVG)
				qr.GET("/png", catalogHandler.GetPNG)
			}
		}
	}

	return r, nil
}
