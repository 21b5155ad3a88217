// internal/services/row_source.go
package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// RowSource yields a rectangular block of cells. The first row is the header.
type RowSource interface {
	FetchRows(ctx context.Context) ([][]string, error)
}

// RowSourceFunc adapts a plain function to RowSource.
type RowSourceFunc func(ctx context.Context) ([][]string, error)

func (f RowSourceFunc) FetchRows(ctx context.Context) ([][]string, error) {
	return f(ctx)
}

var spreadsheetIDPattern = regexp.MustCompile(`/d/([a-zA-Z0-9_-]+)`)

// ExtractSpreadsheetID returns the identifier between "/d/" and the next path
// separator of a spreadsheet URL.
func ExtractSpreadsheetID(documentURL string) (string, error) {
	match := spreadsheetIDPattern.FindStringSubmatch(documentURL)
	if match == nil {
		return "", ErrInvalidDocumentURL
	}
	return match[1], nil
}

// cellSpan is an A1 range in zero-based columns and one-based rows. A zero
// row bound means the range is open on that side, as in "A:F".
type cellSpan struct {
	firstCol, lastCol int
	firstRow, lastRow int
}

// parseRange converts an A1 range such as "A:F", "A2:D200" or "Sheet1!A:D".
func parseRange(cellRange string) (cellSpan, error) {
	raw := cellRange
	if i := strings.LastIndex(cellRange, "!"); i >= 0 {
		cellRange = cellRange[i+1:]
	}
	parts := strings.Split(cellRange, ":")
	if len(parts) != 2 {
		return cellSpan{}, fmt.Errorf("invalid cell range %q", raw)
	}

	firstCol, firstRow, err := splitCell(parts[0])
	if err != nil {
		return cellSpan{}, fmt.Errorf("invalid cell range %q: %w", raw, err)
	}
	lastCol, lastRow, err := splitCell(parts[1])
	if err != nil {
		return cellSpan{}, fmt.Errorf("invalid cell range %q: %w", raw, err)
	}
	if lastCol < firstCol {
		return cellSpan{}, fmt.Errorf("invalid cell range %q: last column before first", raw)
	}
	if firstRow > 0 && lastRow > 0 && lastRow < firstRow {
		return cellSpan{}, fmt.Errorf("invalid cell range %q: last row before first", raw)
	}

	return cellSpan{
		firstCol: firstCol - 1,
		lastCol:  lastCol - 1,
		firstRow: firstRow,
		lastRow:  lastRow,
	}, nil
}

// splitCell splits "D200" into column 4 and row 200. A bare column has row 0.
func splitCell(cell string) (int, int, error) {
	name := strings.TrimRight(cell, "0123456789")
	col, err := excelize.ColumnNameToNumber(name)
	if err != nil {
		return 0, 0, err
	}
	if name == cell {
		return col, 0, nil
	}
	row, err := strconv.Atoi(cell[len(name):])
	if err != nil || row < 1 {
		return 0, 0, fmt.Errorf("invalid row in %q", cell)
	}
	return col, row, nil
}

// clip keeps the rows and columns inside the span.
func (s cellSpan) clip(rows [][]string) [][]string {
	start := 0
	if s.firstRow > 0 {
		start = s.firstRow - 1
	}
	if start >= len(rows) {
		return [][]string{}
	}
	end := len(rows)
	if s.lastRow > 0 && s.lastRow < end {
		end = s.lastRow
	}
	return clipColumns(rows[start:end], s.firstCol, s.lastCol)
}

// clipColumns keeps only the cells inside [first, last] of each row.
func clipColumns(rows [][]string, first, last int) [][]string {
	clipped := make([][]string, 0, len(rows))
	for _, row := range rows {
		if first >= len(row) {
			clipped = append(clipped, []string{})
			continue
		}
		end := last + 1
		if end > len(row) {
			end = len(row)
		}
		clipped = append(clipped, row[first:end])
	}
	return clipped
}
