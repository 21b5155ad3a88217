// internal/services/qr_service.go
package services

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/javajoker/catalog-web/internal/models"
)

// DefaultModuleSize is the edge length of one QR cell, in pixels for PNG and
// user units for SVG.
const DefaultModuleSize = 10

type QRService struct {
	level      qrcode.RecoveryLevel
	moduleSize int
}

// QRSymbol is an encoded URL. Every rendering is derived from the same
// bitmap, so PNG, SVG and PDF always agree.
type QRSymbol struct {
	Content    string
	code       *qrcode.QRCode
	moduleSize int
}

type QREntry struct {
	Product models.Product
	Symbol  *QRSymbol
}

func NewQRService() *QRService {
	return NewQRServiceWithModuleSize(DefaultModuleSize)
}

func NewQRServiceWithModuleSize(moduleSize int) *QRService {
	if moduleSize <= 0 {
		moduleSize = DefaultModuleSize
	}
	return &QRService{level: qrcode.Low, moduleSize: moduleSize}
}

// Encode picks the smallest QR version that fits content at the low
// error-correction level.
func (s *QRService) Encode(content string) (*QRSymbol, error) {
	code, err := qrcode.New(content, s.level)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return &QRSymbol{Content: content, code: code, moduleSize: s.moduleSize}, nil
}

// Entries encodes every product that has a URL, in catalog order.
func (s *QRService) Entries(catalog *models.Catalog) ([]QREntry, error) {
	var entries []QREntry
	for _, p := range catalog.Products {
		if !p.HasURL() {
			continue
		}
		symbol, err := s.Encode(p.URL)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", p.ID, err)
		}
		entries = append(entries, QREntry{Product: p, Symbol: symbol})
	}
	return entries, nil
}

// EntryFor encodes the first product with the given id. An empty id and
// products without a URL are reported as not found.
func (s *QRService) EntryFor(catalog *models.Catalog, id string) (QREntry, error) {
	p, ok := catalog.FindByID(id)
	if id == "" || !ok || !p.HasURL() {
		return QREntry{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	symbol, err := s.Encode(p.URL)
	if err != nil {
		return QREntry{}, err
	}
	return QREntry{Product: p, Symbol: symbol}, nil
}

// Bitmap is the module matrix including the four-module quiet zone. True
// means a dark module.
func (q *QRSymbol) Bitmap() [][]bool {
	return q.code.Bitmap()
}

// Size is the canvas edge length in pixels or user units.
func (q *QRSymbol) Size() int {
	return len(q.Bitmap()) * q.moduleSize
}

func (q *QRSymbol) PNG() ([]byte, error) {
	data, err := q.code.PNG(-q.moduleSize)
	if err != nil {
		return nil, fmt.Errorf("failed to render QR PNG: %w", err)
	}
	return data, nil
}

// SVG draws a white background and one filled square per dark module.
func (q *QRSymbol) SVG() []byte {
	bitmap := q.Bitmap()
	size := len(bitmap) * q.moduleSize

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, "fill:white")
	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				canvas.Rect(x*q.moduleSize, y*q.moduleSize, q.moduleSize, q.moduleSize, "fill:black")
			}
		}
	}
	canvas.End()
	return buf.Bytes()
}

func SVGFilename(p models.Product) string {
	return "qr_" + p.ID + ".svg"
}
