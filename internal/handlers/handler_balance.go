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

type balanceHandler struct {
	balanceService portssvc.BalanceCalculatorSvc
}

func newBalanceHandler(bs portssvc.BalanceCalculatorSvc) *balanceHandler {
	return &balanceHandler{balanceService: bs}
}

// registerBalanceRoutes registers the account balance queries.
func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceCalculatorSvc) {
	h := newBalanceHandler(balanceService)

	rg.GET("/accounts/:code/balance", h.getAccountBalance)
	rg.GET("/balances", h.getAccountBalances)
}

// getAccountBalance godoc
// @Summary Get the balance of an account
// @Description Sums the debit and credit lines of the account, optionally over entries dated within [start, end]
// @Tags balances
// @Produce  json
// @Param   code path int true "Account code"
// @Param   start query string false "Start date"
// @Param   end query string false "End date"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid account code or date"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 422 {object} dto.ErrorResponse "Start after end"
// @Failure 500 {object} dto.ErrorResponse "Failed to compute balance"
// @Security BearerAuth
// @Router /accounts/{code}/balance [get]
func (h *balanceHandler) getAccountBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil || code <= 0 {
		logger.Warn("Invalid account code in path", slog.String("code", c.Param("code")))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid account code"})
		return
	}

	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, err)
		return
	}

	logger = logger.With(slog.Int("account_code", code))
	if params.Start == "" && params.End == "" {
		balance, err := h.balanceService.GetAccountBalance(c.Request.Context(), code)
		if err != nil {
			respondError(c, logger, err, "Failed to compute balance")
			return
		}
		c.JSON(http.StatusOK, dto.ToAccountBalanceResponse(*balance))
		return
	}

	balance, err := h.balanceService.GetAccountBalanceByDate(c.Request.Context(), code, params.Start, params.End)
	if err != nil {
		if isDateError(err) {
			badRequest(c, logger, err)
			return
		}
		respondError(c, logger, err, "Failed to compute balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountBalanceResponse(*balance))
}

// getAccountBalances godoc
// @Summary Get the balances of several accounts
// @Tags balances
// @Produce  json
// @Param   codes query string true "Comma separated account codes"
// @Success 200 {array} dto.AccountBalanceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid account codes"
// @Failure 500 {object} dto.ErrorResponse "Failed to compute balances"
// @Security BearerAuth
// @Router /balances [get]
func (h *balanceHandler) getAccountBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var codes []int
	for _, raw := range strings.Split(c.Query("codes"), ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		code, err := strconv.Atoi(raw)
		if err != nil {
			logger.Warn("Invalid account code in query", slog.String("code", raw))
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid account code: " + raw})
			return
		}
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "At least one account code is required"})
		return
	}

	balances, err := h.balanceService.GetAccountBalances(c.Request.Context(), codes)
	if err != nil {
		respondError(c, logger, err, "Failed to compute balances")
		return
	}

	resp := make([]dto.AccountBalanceResponse, len(balances))
	for i, b := range balances {
		resp[i] = dto.ToAccountBalanceResponse(b)
	}
	c.JSON(http.StatusOK, resp)
}
