// Project Structure Overview
/*
catalog-web/
├── cmd/
│   └── server/
│       └── main.go
├── internal/
│   ├── config/
│   │   ├── config.go
│   │   └── logging.go
│   ├── models/
│   │   ├── product.go
│   │   ├── navigation.go
│   │   └── view.go
│   ├── handlers/
│   │   ├── catalog.go
│   │   ├── qr.go
│   │   └── errors.go
│   ├── services/
│   │   ├── row_source.go
│   │   ├── sheets_source.go
│   │   ├── xlsx_source.go
│   │   ├── catalog_service.go
│   │   ├── qr_service.go
│   │   ├── export_service.go
│   │   └── errors.go
│   ├── middleware/
│   │   ├── cors.go
│   │   ├── rate_limit.go
│   │   ├── i18n.go
│   │   └── logging.go
│   ├── i18n/
│   │   ├── i18n.go
│   │   ├── locales/
│   │   │   ├── en.json
│   │   │   └── lt.json
│   │   └── keys.go
│   ├── views/
│   │   ├── views.go
│   │   ├── pages.go
│   │   └── templates/
│   ├── utils/
│   │   ├── validator.go
│   │   └── response.go
│   ├── router/
│   │   └── router.go
│   └── tests/
├── go.mod
└── go.sum
*/

// Package catalogweb serves a product catalog read from a spreadsheet.
// The server entry point lives in cmd/server.
package catalogweb
