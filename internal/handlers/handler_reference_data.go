package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/myerp_ledger/internal/core/ports/services"
	"github.com/SscSPs/myerp_ledger/internal/dto"
	"github.com/SscSPs/myerp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// referenceDataHandler serves the chart of accounts and the journals.
type referenceDataHandler struct {
	ledgerService portssvc.LedgerReaderSvc
}

func newReferenceDataHandler(ls portssvc.LedgerReaderSvc) *referenceDataHandler {
	return &referenceDataHandler{ledgerService: ls}
}

func registerReferenceDataRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerReaderSvc) {
	h := newReferenceDataHandler(ledgerService)

	rg.GET("/accounts", h.listAccounts)
	rg.GET("/journals", h.listJournals)
}

// listAccounts godoc
// @Summary List the chart of accounts
// @Tags reference-data
// @Produce  json
// @Success 200 {array} dto.AccountResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list accounts"
// @Security BearerAuth
// @Router /accounts [get]
func (h *referenceDataHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accounts, err := h.ledgerService.ListAccounts(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}

// listJournals godoc
// @Summary List the journals
// @Tags reference-data
// @Produce  json
// @Success 200 {array} dto.JournalResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list journals"
// @Security BearerAuth
// @Router /journals [get]
func (h *referenceDataHandler) listJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journals, err := h.ledgerService.ListJournals(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list journals")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponses(journals))
}
