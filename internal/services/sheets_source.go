// internal/services/sheets_source.go
package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsSource reads catalog rows from a Google spreadsheet. The document
// URL is resolved on every fetch, so a bad URL surfaces as a page error and
// never reaches the API.
type SheetsSource struct {
	service     *sheets.Service
	documentURL string
	cellRange   string
}

// NewSheetsSource authenticates with a service account key restricted to the
// read-only spreadsheets scope.
func NewSheetsSource(ctx context.Context, documentURL, cellRange string, credentialsJSON []byte) (*SheetsSource, error) {
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	return NewSheetsSourceWithOptions(ctx, documentURL, cellRange, option.WithHTTPClient(jwtConfig.Client(ctx)))
}

func NewSheetsSourceWithOptions(ctx context.Context, documentURL, cellRange string, opts ...option.ClientOption) (*SheetsSource, error) {
	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &SheetsSource{
		service:     service,
		documentURL: documentURL,
		cellRange:   cellRange,
	}, nil
}

func (s *SheetsSource) FetchRows(ctx context.Context) ([][]string, error) {
	spreadsheetID, err := ExtractSpreadsheetID(s.documentURL)
	if err != nil {
		return nil, err
	}

	resp, err := s.service.Spreadsheets.Values.Get(spreadsheetID, s.cellRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet values: %w", err)
	}

	if len(resp.Values) == 0 {
		return nil, ErrNoData
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			if s, ok := cell.(string); ok {
				row[i] = s
			} else if cell != nil {
				row[i] = fmt.Sprint(cell)
			}
		}
		rows = append(rows, row)
	}

	logrus.WithFields(logrus.Fields{
		"spreadsheet_id": spreadsheetID,
		"range":          s.cellRange,
		"rows":           len(rows),
	}).Debug("Fetched spreadsheet rows")

	return rows, nil
}
