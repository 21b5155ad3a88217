// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Layout
	KeyMenuTitle = "menu.title"
	KeyFooter    = "footer.copyright"
	KeyTabMenu   = "tab.catalog"
	KeyTabQR     = "tab.qr"

	// Catalog
	KeyWelcome         = "catalog.welcome"
	KeyShareableURL    = "catalog.shareable_url"
	KeyViewProduct     = "catalog.view_product"
	KeyEmptyCatalog    = "catalog.empty"
	KeyProductNotFound = "catalog.product_not_found"

	// QR codes
	KeyQRTitle       = "qr.title"
	KeyQRNoProducts  = "qr.no_products"
	KeyQRDownloadSVG = "qr.download_svg"
	KeyQRDownloadPDF = "qr.download_pdf"
	KeyQRCategory    = "qr.column.category"
	KeyQRProduct     = "qr.column.product"
	KeyQRImage       = "qr.column.image"
	KeyQRURL         = "qr.column.url"

	// Errors
	KeyErrorTitle       = "error.title"
	KeyErrorDocumentURL = "error.document_url"
	KeyErrorNoData      = "error.no_data"
	KeyErrorGeneric     = "error.generic"
	KeyErrorRateLimit   = "error.rate_limit"
	KeyErrorNotFound    = "error.not_found"
)
