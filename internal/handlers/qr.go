// internal/handlers/qr.go
package handlers

import (
	"bytes"
	"encoding/base64"
	"html/template"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/catalog-web/internal/models"
	"github.com/javajoker/catalog-web/internal/services"
	"github.com/javajoker/catalog-web/internal/views"
)

const (
	svgContentType = "image/svg+xml"
	pdfContentType = "application/pdf"
	pngContentType = "image/png"
)

// GET /qr
func (h *CatalogHandler) GetQRPage(c *gin.Context) {
	catalog, err := h.catalogService.Load(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	entries, err := h.qrService.Entries(catalog)
	if err != nil {
		h.renderError(c, err)
		return
	}

	rows := make([]views.QRRow, 0, len(entries))
	for _, entry := range entries {
		png, err := entry.Symbol.PNG()
		if err != nil {
			h.renderError(c, err)
			return
		}
		rows = append(rows, views.QRRow{
			Product: entry.Product,
			PNG:     template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png)),
			SVGLink: "/qr/svg" + models.NavigationForProduct(entry.Product.ID).ShareableURL(),
		})
	}

	c.HTML(http.StatusOK, views.QRTemplate, views.QRPage{
		Page:    h.page(c, views.TabQR),
		Rows:    rows,
		PDFLink: "/qr/pdf",
	})
}

// GET /qr/svg?product=<id>
func (h *CatalogHandler) DownloadSVG(c *gin.Context) {
	entry, ok := h.entry(c)
	if !ok {
		return
	}

	c.Header("Content-Disposition", attachment(services.SVGFilename(entry.Product)))
	c.Data(http.StatusOK, svgContentType, entry.Symbol.SVG())
}

// GET /qr/png?product=<id>
func (h *CatalogHandler) GetPNG(c *gin.Context) {
	entry, ok := h.entry(c)
	if !ok {
		return
	}

	png, err := entry.Symbol.PNG()
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.Data(http.StatusOK, pngContentType, png)
}

// GET /qr/pdf
func (h *CatalogHandler) DownloadPDF(c *gin.Context) {
	catalog, err := h.catalogService.Load(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	entries, err := h.qrService.Entries(catalog)
	if err != nil {
		h.renderError(c, err)
		return
	}

	// Render fully before writing so a failure still gets the error page.
	var buf bytes.Buffer
	if err := h.exportService.PDF(&buf, h.settings.Title, entries); err != nil {
		h.renderError(c, err)
		return
	}

	c.Header("Content-Disposition", attachment(services.PDFFilename))
	c.Data(http.StatusOK, pdfContentType, buf.Bytes())
}

func (h *CatalogHandler) entry(c *gin.Context) (services.QREntry, bool) {
	catalog, err := h.catalogService.Load(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return services.QREntry{}, false
	}

	id, _ := models.NavigationFromQuery(c.Request.URL.Query()).ProductID()
	entry, err := h.qrService.EntryFor(catalog, id)
	if err != nil {
		h.renderError(c, err)
		return services.QREntry{}, false
	}
	return entry, true
}

func attachment(filename string) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": filename})
}
