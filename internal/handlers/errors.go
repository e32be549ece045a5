package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/golder/bank_statements_api/internal/apperrors"
	"github.com/golder/bank_statements_api/internal/dto"
	"github.com/gin-gonic/gin"
)

// unexpectedErrorMessage is the only detail a client sees for server-side failures.
const unexpectedErrorMessage = "An unexpected error occurred"

func respondNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.ErrorResponse{Status: dto.StatusNotFound, Error: dto.StatusNotFound})
}

// respondError maps service errors to the JSON envelope. Unexpected errors are logged in full.
func respondError(c *gin.Context, logger *slog.Logger, err error, msg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		respondNotFound(c)
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Status: dto.StatusError, Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.ErrorResponse{Status: dto.StatusError, Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Status: dto.StatusError, Error: "Unauthorized"})
	default:
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Status: dto.StatusError, Error: unexpectedErrorMessage})
	}
}

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
