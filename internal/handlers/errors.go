// internal/handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/catalog-web/internal/i18n"
	"github.com/javajoker/catalog-web/internal/services"
	"github.com/javajoker/catalog-web/internal/utils"
	"github.com/javajoker/catalog-web/internal/views"
)

// errorCode classifies a failure for the JSON envelope. Pages only ever show
// the message.
func errorCode(err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidDocumentURL):
		return "CONFIG_ERROR"
	case errors.Is(err, services.ErrNoData):
		return "NO_DATA"
	case errors.Is(err, services.ErrProductNotFound):
		return "NOT_FOUND"
	default:
		return "INTERNAL_ERROR"
	}
}

func errorMessage(lang string, err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidDocumentURL):
		return i18n.T(lang, i18n.KeyErrorDocumentURL)
	case errors.Is(err, services.ErrNoData):
		return i18n.T(lang, i18n.KeyErrorNoData)
	case errors.Is(err, services.ErrProductNotFound):
		return i18n.T(lang, i18n.KeyProductNotFound)
	default:
		return i18n.T(lang, i18n.KeyErrorGeneric, err.Error())
	}
}

func errorStatus(err error) int {
	if errors.Is(err, services.ErrProductNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// renderError shows the message and stops; nothing else is rendered for the
// request.
func (h *CatalogHandler) renderError(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)
	_ = c.Error(err)

	logrus.WithError(err).WithFields(logrus.Fields{
		"path":       c.Request.URL.Path,
		"request_id": utils.GetRequestIDFromContext(c),
	}).Warn("Catalog request failed")

	c.HTML(errorStatus(err), views.ErrorTemplate, views.ErrorPage{
		Page:    h.page(c, ""),
		Message: errorMessage(lang, err),
	})
}

func (h *CatalogHandler) jsonError(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)
	_ = c.Error(err)

	if errors.Is(err, services.ErrProductNotFound) {
		utils.NotFoundResponse(c, errorMessage(lang, err))
		return
	}
	utils.InternalErrorResponse(c, errorCode(err), errorMessage(lang, err))
}
