// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travelcalc/internal/http/middleware"
	"travelcalc/internal/modules/pricing"
)

type errorResponse struct {
	Error string `json:"error"`
}

type validationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeValidationErrors(c *gin.Context, errs map[string]string) {
	writeJSON(c, http.StatusBadRequest, validationErrorResponse{Errors: errs})
}

func writeCalculateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pricing.ErrPaymentAfterTravelStart):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		middleware.LoggerFromContext(c.Request.Context()).Error("price calculation failed", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "price calculation failed")
	}
}
