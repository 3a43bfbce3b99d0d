// internal/handlers/errors.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/luminadeco/boutique-backend/internal/services"
	"github.com/luminadeco/boutique-backend/internal/utils"
)

// handleServiceError maps the service error taxonomy to HTTP responses:
// ValidationError → 400 with the field list, ErrNotFound → 404 with the
// given message key, ErrForbidden → 403, ErrUnauthorized → 401,
// everything else → 500 with the cause logged and hidden.
func handleServiceError(c *gin.Context, err error, notFoundKey string) {
	if ve, ok := services.IsValidation(err); ok {
		utils.BadRequest(c, "", ve.Fields)
		return
	}
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFound(c, notFoundKey)
	case errors.Is(err, services.ErrForbidden):
		utils.Forbidden(c)
	case errors.Is(err, services.ErrUnauthorized):
		utils.Unauthorized(c)
	default:
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
		utils.InternalError(c)
	}
}
