// internal/models/navigation.go
package models

import "net/url"

// ProductParam is the only navigation key the catalog understands.
const ProductParam = "product"

// NavigationContext carries the page's navigation parameter explicitly. The
// zero value means no product is selected.
type NavigationContext struct {
	productID string
}

func NavigationFromQuery(values url.Values) NavigationContext {
	return NavigationContext{productID: values.Get(ProductParam)}
}

func NavigationForProduct(id string) NavigationContext {
	return NavigationContext{productID: id}
}

// ProductID returns the selected id. An empty parameter counts as absent.
func (n NavigationContext) ProductID() (string, bool) {
	return n.productID, n.productID != ""
}

// Select overwrites the parameter; there is no history of earlier selections.
func (n NavigationContext) Select(id string) NavigationContext {
	n.productID = id
	return n
}

func (n NavigationContext) Clear() NavigationContext {
	n.productID = ""
	return n
}

// Query encodes the context as a query string without the leading "?".
func (n NavigationContext) Query() string {
	if n.productID == "" {
		return ""
	}
	return url.Values{ProductParam: {n.productID}}.Encode()
}

// ShareableURL is the relative link that reproduces this selection on a
// fresh load.
func (n NavigationContext) ShareableURL() string {
	if q := n.Query(); q != "" {
		return "?" + q
	}
	return "?"
}
