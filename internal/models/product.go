// internal/models/product.go
package models

import "strings"

type Product struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	ProductName string `json:"product_name"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
}

// HasURL reports whether the product gets a QR code and an export row.
func (p Product) HasURL() bool {
	return strings.TrimSpace(p.URL) != ""
}

type CategoryGroup struct {
	Name     string    `json:"name"`
	Products []Product `json:"products"`
}

// Catalog is one snapshot of the row source. Products keep source row order.
type Catalog struct {
	Products   []Product       `json:"products"`
	Categories []CategoryGroup `json:"categories"`
}

// FindByID returns the first product with the given id. Ids are assumed
// unique but not enforced, so later duplicates are never reachable.
func (c *Catalog) FindByID(id string) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (c *Catalog) CategoryNames() []string {
	names := make([]string, 0, len(c.Categories))
	for _, g := range c.Categories {
		names = append(names, g.Name)
	}
	return names
}

func (c *Catalog) IsEmpty() bool {
	return len(c.Products) == 0
}

// View resolves the navigation context against the catalog.
func (c *Catalog) View(nav NavigationContext) CatalogView {
	view := CatalogView{
		Categories: c.Categories,
		Navigation: nav,
	}

	id, ok := nav.ProductID()
	switch {
	case c.IsEmpty():
		view.Selection = Selection{Kind: SelectionEmptyCatalog}
	case !ok:
		view.Selection = Selection{Kind: SelectionNone}
	default:
		if p, found := c.FindByID(id); found {
			view.Selection = Selection{Kind: SelectionFound, Product: &p}
		} else {
			view.Selection = Selection{Kind: SelectionNotFound}
		}
	}
	return view
}
