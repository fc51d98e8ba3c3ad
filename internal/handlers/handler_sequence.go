package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	portssvc "github.com/SscSPs/myerp_ledger/internal/core/ports/services"
	"github.com/SscSPs/myerp_ledger/internal/dto"
	"github.com/SscSPs/myerp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// sequenceHandler exposes the journal reference counters for administration.
type sequenceHandler struct {
	referenceService portssvc.ReferenceGeneratorSvc
}

func newSequenceHandler(rs portssvc.ReferenceGeneratorSvc) *sequenceHandler {
	return &sequenceHandler{referenceService: rs}
}

func registerSequenceRoutes(rg *gin.RouterGroup, referenceService portssvc.ReferenceGeneratorSvc) {
	h := newSequenceHandler(referenceService)

	sequences := rg.Group("/sequences/:journal/:year")
	{
		sequences.GET("", h.getSequence)
		sequences.PUT("", h.upsertSequence)
	}
}

// getSequence godoc
// @Summary Get a journal counter
// @Description Returns the last sequence value used for the journal and year
// @Tags sequences
// @Produce  json
// @Param   journal path string true "Journal code"
// @Param   year path int true "Year"
// @Success 200 {object} dto.SequenceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid year"
// @Failure 404 {object} dto.ErrorResponse "No counter for this journal and year"
// @Failure 500 {object} dto.ErrorResponse "Failed to read sequence"
// @Security BearerAuth
// @Router /sequences/{journal}/{year} [get]
func (h *sequenceHandler) getSequence(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journal, year, ok := sequenceParams(c, logger)
	if !ok {
		return
	}

	value, err := h.referenceService.GetSequenceValue(c.Request.Context(), journal, year)
	if err != nil {
		respondError(c, logger, err, "Failed to read sequence")
		return
	}
	c.JSON(http.StatusOK, dto.SequenceResponse{JournalCode: journal, Year: year, LastValue: value})
}

// upsertSequence godoc
// @Summary Override a journal counter
// @Description Sets the last sequence value used for the journal and year, creating the counter if needed
// @Tags sequences
// @Accept  json
// @Produce  json
// @Param   journal path string true "Journal code"
// @Param   year path int true "Year"
// @Param   sequence body dto.UpsertSequenceRequest true "New value"
// @Success 200 {object} dto.SequenceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format"
// @Failure 404 {object} dto.ErrorResponse "Journal not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update sequence"
// @Security BearerAuth
// @Router /sequences/{journal}/{year} [put]
func (h *sequenceHandler) upsertSequence(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journal, year, ok := sequenceParams(c, logger)
	if !ok {
		return
	}

	var req dto.UpsertSequenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}

	if err := h.referenceService.UpsertSequenceValue(c.Request.Context(), journal, year, *req.Value); err != nil {
		respondError(c, logger, err, "Failed to update sequence")
		return
	}

	logger.Info("Sequence overridden", slog.String("journal_code", journal), slog.Int("year", year), slog.Int("value", *req.Value))
	c.JSON(http.StatusOK, dto.SequenceResponse{JournalCode: journal, Year: year, LastValue: *req.Value})
}

func sequenceParams(c *gin.Context, logger *slog.Logger) (string, int, bool) {
	journal := strings.ToUpper(c.Param("journal"))
	if !journalCodePattern.MatchString(journal) {
		logger.Warn("Invalid journal code in path", slog.String("journal", c.Param("journal")))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid journal code"})
		return "", 0, false
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 || year > 9999 {
		logger.Warn("Invalid year in path", slog.String("year", c.Param("year")))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid year"})
		return "", 0, false
	}
	return journal, year, true
}
