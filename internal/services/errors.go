// internal/services/errors.go
package services

import "errors"

var (
	// ErrInvalidDocumentURL means the configured document URL has no /d/<id> segment.
	ErrInvalidDocumentURL = errors.New("could not extract spreadsheet ID from the URL")
	// ErrNoData means the fetch succeeded but returned no rows, not even a header.
	ErrNoData = errors.New("no data found in the spreadsheet")
	// ErrMissingColumn means the header row lacks a required column.
	ErrMissingColumn = errors.New("missing required column")
	// ErrProductNotFound is only used by the per-product download routes.
	ErrProductNotFound = errors.New("product not found")
)
