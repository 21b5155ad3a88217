// internal/views/pages.go
package views

import (
	"html/template"

	"github.com/javajoker/catalog-web/internal/models"
)

const (
	TabCatalog = "catalog"
	TabQR      = "qr"
)

// Page holds the layout data shared by every template.
type Page struct {
	Lang      string
	Title     string
	Year      int
	QREnabled bool
	ActiveTab string
}

type CatalogPage struct {
	Page
	View models.CatalogView
}

func (p CatalogPage) Selected() *models.Product {
	return p.View.SelectedProduct()
}

type QRRow struct {
	Product models.Product
	// PNG is an inline data URI.
	PNG     template.URL
	SVGLink string
}

type QRPage struct {
	Page
	Rows    []QRRow
	PDFLink string
}

type ErrorPage struct {
	Page
	Message string
}
