// internal/services/xlsx_source_test.go
package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestXLSXSourceFetchRows(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"category", "id", "product_name", "description", "url", "extra"},
		{"Cheese", "p1", "Comté", "Nutty", "https://example.com/p1", "ignored"},
		{"Wine", "p2", "Rhône", "Red"},
	})

	source, err := NewXLSXSource(path, "", "A:D")
	require.NoError(t, err)

	rows, err := source.FetchRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"category", "id", "product_name", "description"}, rows[0])
	assert.Equal(t, []string{"Cheese", "p1", "Comté", "Nutty"}, rows[1])

	catalog, err := BuildCatalog(rows)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cheese", "Wine"}, catalog.CategoryNames())
}

func TestXLSXSourceQRRange(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"category", "id", "product_name", "description", "url"},
		{"Cheese", "p1", "Comté", "Nutty", "https://example.com/p1"},
	})

	source, err := NewXLSXSource(path, "", "A:F")
	require.NoError(t, err)

	rows, err := source.FetchRows(context.Background())
	require.NoError(t, err)

	catalog, err := BuildCatalog(rows)
	require.NoError(t, err)
	require.Len(t, catalog.Products, 1)
	assert.Equal(t, "https://example.com/p1", catalog.Products[0].URL)
}

func TestXLSXSourceHonoursRowBounds(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"category", "id", "product_name", "description"},
		{"Cheese", "p1", "Comté", "Nutty"},
		{"Wine", "p2", "Rhône", "Red"},
		{"Wine", "p3", "Chablis", "White"},
	})

	source, err := NewXLSXSource(path, "", "A1:D3")
	require.NoError(t, err)

	rows, err := source.FetchRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "p2", rows[2][1])
}

func TestXLSXSourceEmptySheet(t *testing.T) {
	path := writeWorkbook(t, nil)

	source, err := NewXLSXSource(path, "", "A:D")
	require.NoError(t, err)

	_, err = source.FetchRows(context.Background())
	assert.ErrorIs(t, err, ErrNoData)
}

func TestXLSXSourceErrors(t *testing.T) {
	_, err := NewXLSXSource("catalog.xlsx", "", "bogus")
	assert.Error(t, err)

	source, err := NewXLSXSource(filepath.Join(t.TempDir(), "missing.xlsx"), "", "A:D")
	require.NoError(t, err)
	_, err = source.FetchRows(context.Background())
	assert.Error(t, err)

	path := writeWorkbook(t, [][]interface{}{{"category"}})
	source, err = NewXLSXSource(path, "NoSuchSheet", "A:D")
	require.NoError(t, err)
	_, err = source.FetchRows(context.Background())
	assert.Error(t, err)
}
