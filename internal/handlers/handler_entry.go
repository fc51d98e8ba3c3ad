package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/myerp_ledger/internal/core/ports/events"
	portssvc "github.com/SscSPs/myerp_ledger/internal/core/ports/services"
	"github.com/SscSPs/myerp_ledger/internal/dto"
	"github.com/SscSPs/myerp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// entryHandler handles HTTP requests related to ledger entries.
type entryHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newEntryHandler creates a new entryHandler.
func newEntryHandler(ls portssvc.LedgerSvcFacade) *entryHandler {
	return &entryHandler{
		ledgerService: ls,
	}
}

// registerEntryRoutes registers routes related to entries.
func registerEntryRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newEntryHandler(ledgerService)

	entries := rg.Group("/entries")
	{
		entries.GET("", h.listEntries)
		entries.POST("", h.createEntry)
		entries.POST("/validate", h.validateEntry)
		entries.POST("/reference", h.referenceEntry)
		entries.GET("/:id", h.getEntry)
		entries.PUT("/:id", h.updateEntry)
		entries.DELETE("/:id", h.deleteEntry)
	}
}

// listEntries godoc
// @Summary List entries
// @Description Lists all entries, or those dated within [start, end] when both are given (YYYY-MM-DD or DD/MM/YYYY)
// @Tags entries
// @Produce  json
// @Param   start query string false "Start date"
// @Param   end query string false "End date"
// @Success 200 {array} dto.EntryResponse
// @Failure 400 {object} dto.ErrorResponse "Unparsable date"
// @Failure 404 {object} dto.ErrorResponse "No entries in the window"
// @Failure 422 {object} dto.ErrorResponse "Start after end"
// @Failure 500 {object} dto.ErrorResponse "Failed to list entries"
// @Security BearerAuth
// @Router /entries [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, err)
		return
	}

	if params.Start == "" && params.End == "" {
		entries, err := h.ledgerService.ListEntries(c.Request.Context())
		if err != nil {
			respondError(c, logger, err, "Failed to list entries")
			return
		}
		c.JSON(http.StatusOK, dto.ToEntryResponses(entries))
		return
	}

	logger = logger.With(slog.String("start", params.Start), slog.String("end", params.End))
	entries, err := h.ledgerService.ListEntriesByDate(c.Request.Context(), params.Start, params.End)
	if err != nil {
		if isDateError(err) {
			badRequest(c, logger, err)
			return
		}
		respondError(c, logger, err, "Failed to list entries by date")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponses(entries))
}

// getEntry godoc
// @Summary Get an entry by ID
// @Tags entries
// @Produce  json
// @Param   id path int true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve entry"
// @Security BearerAuth
// @Router /entries/{id} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := entryIDParam(c, logger)
	if !ok {
		return
	}

	entry, err := h.ledgerService.GetEntry(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(*entry))
}

// createEntry godoc
// @Summary Record a new entry
// @Description Validates the entry, attaches the next reference of its journal and year, and saves it
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.EntryRequest true "Entry"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format"
// @Failure 422 {object} dto.ErrorResponse "Bookkeeping rules violated"
// @Failure 500 {object} dto.ErrorResponse "Failed to record entry"
// @Security BearerAuth
// @Router /entries [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}
	entry, err := req.ToDomain()
	if err != nil {
		badRequest(c, logger, err)
		return
	}

	logger.Info("Received request to record entry", slog.String("journal_code", entry.JournalCode), slog.Int("lines", len(entry.Lines)))

	if err := h.ledgerService.InsertEntry(actorContext(c), &entry); err != nil {
		respondError(c, logger, err, "Failed to record entry")
		return
	}

	logger.Info("Entry recorded", slog.Int64("entry_id", entry.ID), slog.String("reference", entry.Reference))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// updateEntry godoc
// @Summary Update an entry
// @Description Replaces the header and lines of an entry. The reference must be the stored one.
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   id path int true "Entry ID"
// @Param   entry body dto.EntryRequest true "Entry"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 422 {object} dto.ErrorResponse "Bookkeeping rules violated"
// @Failure 500 {object} dto.ErrorResponse "Failed to update entry"
// @Security BearerAuth
// @Router /entries/{id} [put]
func (h *entryHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := entryIDParam(c, logger)
	if !ok {
		return
	}

	var req dto.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}
	entry, err := req.ToDomain()
	if err != nil {
		badRequest(c, logger, err)
		return
	}
	entry.ID = id

	if err := h.ledgerService.UpdateEntry(actorContext(c), &entry); err != nil {
		respondError(c, logger, err, "Failed to update entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete an entry
// @Tags entries
// @Param   id path int true "Entry ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete entry"
// @Security BearerAuth
// @Router /entries/{id} [delete]
func (h *entryHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := entryIDParam(c, logger)
	if !ok {
		return
	}

	if err := h.ledgerService.DeleteEntry(actorContext(c), id); err != nil {
		respondError(c, logger, err, "Failed to delete entry")
		return
	}

	logger.Info("Entry deleted", slog.Int64("entry_id", id))
	c.Status(http.StatusNoContent)
}

// validateEntry godoc
// @Summary Check an entry against the bookkeeping rules
// @Description Dry run: nothing is saved and no reference is consumed
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.EntryRequest true "Entry"
// @Success 200 {object} dto.ValidationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format"
// @Failure 422 {object} dto.ErrorResponse "Bookkeeping rules violated"
// @Security BearerAuth
// @Router /entries/validate [post]
func (h *entryHandler) validateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}
	entry, err := req.ToDomain()
	if err != nil {
		badRequest(c, logger, err)
		return
	}

	if err := h.ledgerService.CheckEntry(c.Request.Context(), &entry); err != nil {
		respondError(c, logger, err, "Failed to validate entry")
		return
	}
	c.JSON(http.StatusOK, dto.ValidationResponse{Valid: true})
}

// referenceEntry godoc
// @Summary Attach a reference to an unsaved entry
// @Description Consumes the next value of the journal counter for the entry year. The entry is not saved.
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.EntryRequest true "Entry"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format"
// @Failure 422 {object} dto.ErrorResponse "Missing journal or date"
// @Failure 500 {object} dto.ErrorResponse "Failed to build reference"
// @Security BearerAuth
// @Router /entries/reference [post]
func (h *entryHandler) referenceEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}
	entry, err := req.ToDomain()
	if err != nil {
		badRequest(c, logger, err)
		return
	}

	if err := h.ledgerService.AddReference(c.Request.Context(), &entry); err != nil {
		respondError(c, logger, err, "Failed to build reference")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

func entryIDParam(c *gin.Context, logger *slog.Logger) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		logger.Warn("Invalid entry ID in path", slog.String("id", c.Param("id")))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid entry ID"})
		return 0, false
	}
	return id, true
}

// actorContext tags the request context with the authenticated caller so entry events name them.
func actorContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		ctx = events.WithActor(ctx, userID)
	}
	return ctx
}
