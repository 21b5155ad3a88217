// internal/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/catalog-web/internal/models"
	"github.com/javajoker/catalog-web/internal/services"
	"github.com/javajoker/catalog-web/internal/utils"
	"github.com/javajoker/catalog-web/internal/views"
)

// PageSettings is the static part of every rendered page.
type PageSettings struct {
	Title      string
	FooterYear int
	QREnabled  bool
}

type CatalogHandler struct {
	catalogService *services.CatalogService
	qrService      *services.QRService
	exportService  *services.ExportService
	settings       PageSettings
}

func NewCatalogHandler(catalogService *services.CatalogService, qrService *services.QRService, exportService *services.ExportService, settings PageSettings) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		qrService:      qrService,
		exportService:  exportService,
		settings:       settings,
	}
}

func (h *CatalogHandler) page(c *gin.Context, tab string) views.Page {
	return views.Page{
		Lang:      utils.GetLangFromContext(c),
		Title:     h.settings.Title,
		Year:      h.settings.FooterYear,
		QREnabled: h.settings.QREnabled,
		ActiveTab: tab,
	}
}

// GET /
func (h *CatalogHandler) GetCatalogPage(c *gin.Context) {
	nav := models.NavigationFromQuery(c.Request.URL.Query())

	_, view, err := h.catalogService.View(c.Request.Context(), nav)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, views.CatalogTemplate, views.CatalogPage{
		Page: h.page(c, views.TabCatalog),
		View: view,
	})
}

// GET /api/catalog
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	nav := models.NavigationFromQuery(c.Request.URL.Query())

	catalog, view, err := h.catalogService.View(c.Request.Context(), nav)
	if err != nil {
		h.jsonError(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, view, gin.H{
		"categories":    catalog.CategoryNames(),
		"product_count": len(catalog.Products),
		"shareable_url": view.ShareableURL(),
	})
}
