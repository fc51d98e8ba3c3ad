package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/myerp_ledger/internal/apperrors"
	"github.com/SscSPs/myerp_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// respondError writes err with the status matching its kind.
// Technical failures are logged and their cause is not exposed.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	var appErr *apperrors.AppError
	code := ""
	if errors.As(err, &appErr) {
		code = appErr.Code
	}

	switch apperrors.KindOf(err) {
	case apperrors.Functional:
		logger.Warn(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error:   messageOf(err),
			Code:    code,
			Details: apperrors.DetailsOf(err),
		})
	case apperrors.NotFound:
		logger.Warn(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error(), Code: code})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fallbackMsg, Code: code})
	}
}

// badRequest answers a request that could not be bound or parsed.
func badRequest(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Invalid request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
}

func messageOf(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// isDateError reports an unparsable date, which is the caller's input and not a server fault.
func isDateError(err error) bool {
	var appErr *apperrors.AppError
	return errors.As(err, &appErr) && appErr.Code == apperrors.CodeInvalidDate
}
