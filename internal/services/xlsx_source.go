// internal/services/xlsx_source.go
package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// XLSXSource reads the same block of cells from a local workbook. The file is
// reopened on every fetch so edits show up on the next page view.
type XLSXSource struct {
	path      string
	sheet     string
	cellRange string
}

func NewXLSXSource(path, sheet, cellRange string) (*XLSXSource, error) {
	if _, err := parseRange(cellRange); err != nil {
		return nil, err
	}
	return &XLSXSource{path: path, sheet: sheet, cellRange: cellRange}, nil
}

func (s *XLSXSource) FetchRows(ctx context.Context) ([][]string, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	return readWorkbookRows(f, s.sheet, s.cellRange)
}

func readWorkbookRows(f *excelize.File, sheet, cellRange string) ([][]string, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("excel file has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	span, err := parseRange(cellRange)
	if err != nil {
		return nil, err
	}
	rows = span.clip(rows)

	// Trailing blank rows are not part of the block, matching the Sheets API.
	for len(rows) > 0 && isBlankRow(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	logrus.WithFields(logrus.Fields{
		"sheet": sheet,
		"range": cellRange,
		"rows":  len(rows),
	}).Debug("Read workbook rows")

	return rows, nil
}
