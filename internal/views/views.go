// internal/views/views.go
package views

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/javajoker/catalog-web/internal/i18n"
	"github.com/javajoker/catalog-web/internal/models"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Template names accepted by gin's c.HTML.
const (
	CatalogTemplate = "catalog"
	QRTemplate      = "qr"
	ErrorTemplate   = "error"
)

func Load() (*template.Template, error) {
	funcMap := template.FuncMap{
		"t": i18n.T,
		"productLink": func(id string) string {
			return models.NavigationForProduct(id).ShareableURL()
		},
		// Descriptions come from the catalog owner and are rendered as HTML.
		"rawHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
	}

	t, err := template.New("_root").Funcs(funcMap).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return t, nil
}
