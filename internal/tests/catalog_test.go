// internal/tests/catalog_test.go
package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/javajoker/catalog-web/internal/config"
	"github.com/javajoker/catalog-web/internal/i18n"
	"github.com/javajoker/catalog-web/internal/router"
	"github.com/javajoker/catalog-web/internal/services"
)

type CatalogTestSuite struct {
	suite.Suite
	router  *gin.Engine
	rows    [][]string
	err     error
	fetches int
}

func (suite *CatalogTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(i18n.Initialize("en"))

	cfg := &config.Config{
		Environment: "test",
		Catalog: config.CatalogConfig{
			Title:      "Test Catalog",
			Source:     config.SourceXLSX,
			QREnabled:  true,
			FooterYear: 2025,
		},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"*"}},
		RateLimit: config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
		I18n:      config.I18nConfig{DefaultLocale: "en"},
	}

	source := services.RowSourceFunc(func(ctx context.Context) ([][]string, error) {
		suite.fetches++
		return suite.rows, suite.err
	})

	r, err := router.Initialize(cfg, source)
	suite.Require().NoError(err)
	suite.router = r
}

func (suite *CatalogTestSuite) SetupTest() {
	suite.fetches = 0
	suite.err = nil
	suite.rows = [][]string{
		{"category", "id", "product_name", "description", "url"},
		{"Cheese", "p1", "Comté", "Nutty, firm", "https://example.com/p1"},
		{"Wine", "p2", "Côtes du Rhône", "Fruity red", "https://example.com/p2"},
		{"Wine", "p3", "Table wine", "No link", ""},
	}
}

func (suite *CatalogTestSuite) get(target string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", target, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *CatalogTestSuite) TestSelectedProduct() {
	w := suite.get("/?product=p2")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	body := w.Body.String()
	cheese := strings.Index(body, "Cheese")
	wine := strings.Index(body, "Wine")
	assert.True(suite.T(), cheese >= 0 && wine > cheese, "categories are listed in order")
	assert.Contains(suite.T(), body, "Côtes du Rhône")
	assert.Contains(suite.T(), body, "Fruity red")
	assert.Contains(suite.T(), body, `href="?product=p2"`)
	assert.Contains(suite.T(), body, "product-link active")
	assert.NotContains(suite.T(), body, "Please select a product")
	assert.Equal(suite.T(), 1, suite.fetches)
}

func (suite *CatalogTestSuite) TestWelcomeWithoutSelection() {
	w := suite.get("/")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(suite.T(), body, "Welcome to Test Catalog! Please select a product from the menu.")
	assert.Contains(suite.T(), body, `href="?product=p1"`)
	assert.NotContains(suite.T(), body, "product-link active")
}

func (suite *CatalogTestSuite) TestUnknownProductShowsWelcome() {
	w := suite.get("/?product=p9")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Please select a product from the menu.")
}

func (suite *CatalogTestSuite) TestEmptyCatalog() {
	suite.rows = suite.rows[:1]
	w := suite.get("/?product=p1")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "The catalog has no products yet.")
}

func (suite *CatalogTestSuite) TestFetchErrors() {
	tests := []struct {
		err     error
		message string
	}{
		{services.ErrInvalidDocumentURL, "Could not extract spreadsheet ID from the URL"},
		{services.ErrNoData, "No data found in the spreadsheet."},
		{errors.New("quota exceeded"), "An error occurred: quota exceeded"},
	}

	for _, tt := range tests {
		suite.err = tt.err
		w := suite.get("/?product=p1")

		assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
		assert.Contains(suite.T(), w.Body.String(), tt.message)
		assert.NotContains(suite.T(), w.Body.String(), "Comté")
	}
}

func (suite *CatalogTestSuite) TestLanguageFromQuery() {
	w := suite.get("/?lang=lt")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `<html lang="lt">`)
}

func (suite *CatalogTestSuite) TestQRPageSkipsProductsWithoutURL() {
	w := suite.get("/qr")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(suite.T(), 2, strings.Count(body, `class="svg-download"`))
	assert.Contains(suite.T(), body, `href="/qr/svg?product=p1"`)
	assert.Contains(suite.T(), body, `href="/qr/svg?product=p2"`)
	assert.NotContains(suite.T(), body, "/qr/svg?product=p3")
	assert.Contains(suite.T(), body, "data:image/png;base64,")
	assert.Contains(suite.T(), body, `href="/qr/pdf"`)
}

func (suite *CatalogTestSuite) TestDownloadSVG() {
	w := suite.get("/qr/svg?product=p1")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "image/svg+xml", w.Header().Get("Content-Type"))
	assert.Contains(suite.T(), w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(suite.T(), w.Header().Get("Content-Disposition"), "qr_p1.svg")
	assert.Contains(suite.T(), w.Body.String(), "<svg")

	again := suite.get("/qr/svg?product=p1")
	assert.Equal(suite.T(), w.Body.String(), again.Body.String())
}

func (suite *CatalogTestSuite) TestDownloadSVGWithoutURL() {
	w := suite.get("/qr/svg?product=p3")
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	w = suite.get("/qr/svg?product=missing")
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *CatalogTestSuite) TestDownloadSVGWithReservedCharacters() {
	suite.rows = [][]string{
		{"category", "id", "product_name", "description", "url"},
		{"Wine", "a", "Plain", "", "https://example.com/a"},
		{"Wine", "a?b", "Question", "", "https://example.com/a-b"},
		{"Wine", "w/1", "Slash", "", "https://example.com/w-1"},
	}

	page := suite.get("/qr").Body.String()
	assert.Contains(suite.T(), page, `href="/qr/svg?product=a%3Fb"`)
	assert.Contains(suite.T(), page, `href="/qr/svg?product=w%2F1"`)

	plain := suite.get("/qr/svg?product=a")
	question := suite.get("/qr/svg?product=a%3Fb")
	slash := suite.get("/qr/svg?product=w%2F1")

	assert.Equal(suite.T(), http.StatusOK, question.Code)
	assert.Equal(suite.T(), http.StatusOK, slash.Code)
	assert.Contains(suite.T(), question.Header().Get("Content-Disposition"), "qr_a?b.svg")
	assert.NotEqual(suite.T(), plain.Body.String(), question.Body.String())

	expected, err := services.NewQRService().Encode("https://example.com/w-1")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), string(expected.SVG()), slash.Body.String())
}

func (suite *CatalogTestSuite) TestQRDownloadWithoutProduct() {
	w := suite.get("/qr/svg")
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *CatalogTestSuite) TestPNG() {
	w := suite.get("/qr/png?product=p2")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "image/png", w.Header().Get("Content-Type"))
	assert.True(suite.T(), strings.HasPrefix(w.Body.String(), "\x89PNG"))
}

func (suite *CatalogTestSuite) TestDownloadPDF() {
	w := suite.get("/qr/pdf")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(suite.T(), w.Header().Get("Content-Disposition"), "product_qr_codes.pdf")
	assert.True(suite.T(), strings.HasPrefix(w.Body.String(), "%PDF-"))
}

func (suite *CatalogTestSuite) TestCatalogAPI() {
	w := suite.get("/api/catalog?product=p1")

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			Categories []struct {
				Name string `json:"name"`
			} `json:"categories"`
			Selection struct {
				Kind    string `json:"kind"`
				Product struct {
					ID string `json:"id"`
				} `json:"product"`
			} `json:"selection"`
		} `json:"data"`
		Meta struct {
			ProductCount int    `json:"product_count"`
			ShareableURL string `json:"shareable_url"`
		} `json:"meta"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), response.Success)
	assert.Len(suite.T(), response.Data.Categories, 2)
	assert.Equal(suite.T(), "found", response.Data.Selection.Kind)
	assert.Equal(suite.T(), "p1", response.Data.Selection.Product.ID)
	assert.Equal(suite.T(), 3, response.Meta.ProductCount)
	assert.Equal(suite.T(), "?product=p1", response.Meta.ShareableURL)
}

func (suite *CatalogTestSuite) TestCatalogAPIError() {
	suite.err = services.ErrNoData
	w := suite.get("/api/catalog")

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), response["success"].(bool))
	assert.Equal(suite.T(), "NO_DATA", response["error"].(map[string]interface{})["code"])
}

func (suite *CatalogTestSuite) TestHealth() {
	w := suite.get("/health")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), 0, suite.fetches)
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}
