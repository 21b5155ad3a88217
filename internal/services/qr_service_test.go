// internal/services/qr_service_test.go
package services

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/catalog-web/internal/models"
)

func TestQRSymbolBitmapIsDeterministic(t *testing.T) {
	service := NewQRService()

	a, err := service.Encode("https://example.com/products/p1")
	require.NoError(t, err)
	b, err := service.Encode("https://example.com/products/p1")
	require.NoError(t, err)

	bitmap := a.Bitmap()
	assert.Equal(t, bitmap, b.Bitmap())

	// Version v has 17+4v modules per side, plus four quiet modules each way.
	n := len(bitmap)
	assert.Equal(t, 0, (n-8-17)%4)
	for _, row := range bitmap {
		assert.Len(t, row, n)
	}

	// Quiet zone is light.
	for i := 0; i < n; i++ {
		assert.False(t, bitmap[0][i])
		assert.False(t, bitmap[i][0])
	}
}

func TestQRSymbolSVG(t *testing.T) {
	service := NewQRService()
	symbol, err := service.Encode("https://example.com/a")
	require.NoError(t, err)

	first := symbol.SVG()
	again, err := service.Encode("https://example.com/a")
	require.NoError(t, err)
	assert.Equal(t, first, again.SVG())

	dark := 0
	for _, row := range symbol.Bitmap() {
		for _, cell := range row {
			if cell {
				dark++
			}
		}
	}
	svgText := string(first)
	assert.Equal(t, dark+1, strings.Count(svgText, "<rect "))
	assert.Contains(t, svgText, "fill:white")
	assert.Equal(t, len(symbol.Bitmap())*DefaultModuleSize, symbol.Size())
}

func TestQRSymbolPNG(t *testing.T) {
	symbol, err := NewQRService().Encode("https://example.com/b")
	require.NoError(t, err)

	data, err := symbol.PNG()
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, symbol.Size(), img.Bounds().Dx())
	assert.Equal(t, symbol.Size(), img.Bounds().Dy())
}

func TestQRServiceEntriesSkipProductsWithoutURL(t *testing.T) {
	catalog := &models.Catalog{Products: []models.Product{
		{ID: "a", Category: "Wine", URL: "https://example.com/a"},
		{ID: "b", Category: "Wine"},
		{ID: "c", Category: "Cheese", URL: "https://example.com/c"},
	}}

	entries, err := NewQRService().Entries(catalog)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Product.ID)
	assert.Equal(t, "c", entries[1].Product.ID)
	assert.Equal(t, "https://example.com/c", entries[1].Symbol.Content)
}

func TestQRServiceEntryFor(t *testing.T) {
	catalog := &models.Catalog{Products: []models.Product{
		{ID: "a", URL: "https://example.com/a"},
		{ID: "b"},
	}}
	service := NewQRService()

	entry, err := service.EntryFor(catalog, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", entry.Product.ID)

	_, err = service.EntryFor(catalog, "b")
	assert.ErrorIs(t, err, ErrProductNotFound)
	_, err = service.EntryFor(catalog, "missing")
	assert.ErrorIs(t, err, ErrProductNotFound)

	blank := &models.Catalog{Products: []models.Product{{URL: "https://example.com/blank"}}}
	_, err = service.EntryFor(blank, "")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestSVGFilename(t *testing.T) {
	assert.Equal(t, "qr_p1.svg", SVGFilename(models.Product{ID: "p1"}))
}
