package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"healthtrack/internal/domain/health"
	"healthtrack/internal/domain/profile"
	"healthtrack/internal/domain/record"
)

type JsonErrorModel struct {
	Message string `json:"message"`
}

func JsonError(c echo.Context, status int, content any) error {
	data := &JsonErrorModel{Message: fmt.Sprintf("%v", content)}
	return c.JSON(status, data)
}

// DomainError maps domain sentinels onto HTTP statuses so every handler
// reports failures the same way. Unknown errors stay opaque 500s.
func DomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, health.ErrInvalidInput):
		return JsonError(c, http.StatusUnprocessableEntity, err)
	case errors.Is(err, health.ErrInsufficientData):
		return JsonError(c, http.StatusUnprocessableEntity, err)
	case errors.Is(err, health.ErrDegenerateProjection):
		return JsonError(c, http.StatusUnprocessableEntity, err)
	case errors.Is(err, profile.ErrProfileNotFound),
		errors.Is(err, record.ErrNotFound),
		errors.Is(err, record.ErrMealNotFound):
		return JsonError(c, http.StatusNotFound, err)
	case errors.Is(err, profile.ErrProfileExists):
		return JsonError(c, http.StatusConflict, err)
	default:
		return JsonError(c, http.StatusInternalServerError, err)
	}
}
