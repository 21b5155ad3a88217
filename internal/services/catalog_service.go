// internal/services/catalog_service.go
package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/catalog-web/internal/models"
)

const (
	ColumnCategory    = "category"
	ColumnID          = "id"
	ColumnProductName = "product_name"
	ColumnDescription = "description"
	ColumnURL         = "url"
)

var requiredColumns = []string{ColumnCategory, ColumnID, ColumnProductName, ColumnDescription}

type CatalogService struct {
	source RowSource
}

func NewCatalogService(source RowSource) *CatalogService {
	return &CatalogService{source: source}
}

// Load fetches a fresh snapshot and builds the catalog. Nothing is cached
// between calls.
func (s *CatalogService) Load(ctx context.Context) (*models.Catalog, error) {
	rows, err := s.source.FetchRows(ctx)
	if err != nil {
		return nil, err
	}
	return BuildCatalog(rows)
}

func (s *CatalogService) View(ctx context.Context, nav models.NavigationContext) (*models.Catalog, models.CatalogView, error) {
	catalog, err := s.Load(ctx)
	if err != nil {
		return nil, models.CatalogView{}, err
	}
	return catalog, catalog.View(nav), nil
}

// BuildCatalog turns raw rows into products grouped by category.
func BuildCatalog(rows [][]string) (*models.Catalog, error) {
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	columns := indexHeader(rows[0])
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	width := len(rows[0])
	catalog := &models.Catalog{}
	for _, row := range rows[1:] {
		if len(row) > width {
			row = row[:width]
		}
		if isBlankRow(row) {
			continue
		}

		cell := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return row[idx]
		}

		catalog.Products = append(catalog.Products, models.Product{
			ID:          strings.TrimSpace(cell(ColumnID)),
			Category:    strings.TrimSpace(cell(ColumnCategory)),
			ProductName: strings.TrimSpace(cell(ColumnProductName)),
			Description: cell(ColumnDescription),
			URL:         strings.TrimSpace(cell(ColumnURL)),
		})
	}

	catalog.Categories = groupByCategory(catalog.Products)

	logrus.WithFields(logrus.Fields{
		"rows":       len(rows) - 1,
		"products":   len(catalog.Products),
		"categories": len(catalog.Categories),
	}).Debug("Built catalog")

	return catalog, nil
}

// indexHeader maps normalized column names to positions. The first occurrence
// of a repeated header wins.
func indexHeader(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, seen := columns[key]; !seen {
			columns[key] = i
		}
	}
	return columns
}

func groupByCategory(products []models.Product) []models.CategoryGroup {
	buckets := make(map[string][]models.Product)
	var names []string
	for _, p := range products {
		if _, ok := buckets[p.Category]; !ok {
			names = append(names, p.Category)
		}
		buckets[p.Category] = append(buckets[p.Category], p)
	}
	sort.Strings(names)

	groups := make([]models.CategoryGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, models.CategoryGroup{Name: name, Products: buckets[name]})
	}
	return groups
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
