package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

type errorMapping struct {
	target  error
	status  int
	code    dto.ErrorCode
	message string
}

// errorMappings are checked in order; the first match wins.
var errorMappings = []errorMapping{
	{apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"},
	{apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"},
	{apperrors.ErrConflict, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists, "Resource already exists"},
	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
	{apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeInvalidRequest, "Invalid request"},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired"},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"},
	{apperrors.ErrInvalidFormat, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token format"},
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}

		message := m.message
		if msg, ok := apperrors.Message(err); ok {
			message = msg
		}
		errorDetail := dto.NewErrorDetail(m.code, message)

		var ce *apperrors.CustomError
		if errors.As(err, &ce) && len(ce.Details) > 0 {
			errorDetail.WithDetails(ce.Details)
		}
		if m.status < http.StatusInternalServerError {
			errorDetail.WithSeverity(dto.ErrorSeverityWarning)
		}

		_ = c.Error(err)
		c.AbortWithStatusJSON(m.status, dto.NewErrorResponse(errorDetail))
		return
	}

	logger.Error().Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("Unexpected error while handling request")

	errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
		WithSeverity(dto.ErrorSeverityCritical).
		WithDetails(err.Error())
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
}
