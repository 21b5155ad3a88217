// internal/models/view.go
package models

type SelectionKind string

const (
	SelectionNone         SelectionKind = "none"
	SelectionFound        SelectionKind = "found"
	SelectionNotFound     SelectionKind = "not_found"
	SelectionEmptyCatalog SelectionKind = "empty_catalog"
)

type Selection struct {
	Kind    SelectionKind `json:"kind"`
	Product *Product      `json:"product,omitempty"`
}

func (s Selection) Found() bool {
	return s.Kind == SelectionFound && s.Product != nil
}

// CatalogView is built per request and discarded after rendering.
type CatalogView struct {
	Categories []CategoryGroup   `json:"categories"`
	Selection  Selection         `json:"selection"`
	Navigation NavigationContext `json:"-"`
}

// SelectedProduct is nil unless the navigation parameter matched a product.
func (v CatalogView) SelectedProduct() *Product {
	if v.Selection.Found() {
		return v.Selection.Product
	}
	return nil
}

func (v CatalogView) ShareableURL() string {
	return v.Navigation.ShareableURL()
}
