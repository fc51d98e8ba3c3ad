package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/myerp_ledger/internal/apperrors"
	"github.com/SscSPs/myerp_ledger/internal/core/domain"
	"github.com/SscSPs/myerp_ledger/internal/core/ports/events"
	portssvc "github.com/SscSPs/myerp_ledger/internal/core/ports/services"
	"github.com/SscSPs/myerp_ledger/internal/dto"
	"github.com/SscSPs/myerp_ledger/internal/handlers"
	"github.com/SscSPs/myerp_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type EntryHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockLedger *MockLedgerService
	jwtSecret  string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *EntryHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "ledger-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *EntryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockLedger = new(MockLedgerService)

	cfg := &config.Config{IsProduction: true, JWTSecret: suite.jwtSecret}
	container := &portssvc.ServiceContainer{
		Ledger:    suite.mockLedger,
		Reference: suite.mockLedger,
		Validator: suite.mockLedger,
		Balance:   suite.mockLedger,
	}
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, cfg, container))
}

func (suite *EntryHandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func validRequest() dto.EntryRequest {
	return dto.EntryRequest{
		JournalCode: "BQ",
		Date:        "2016-12-31",
		Label:       "Payment",
		Lines: []dto.EntryLineRequest{
			{AccountCode: 512, Type: "DEBIT", Amount: decimal.RequireFromString("100.00")},
			{AccountCode: 411, Type: "CREDIT", Amount: decimal.RequireFromString("100.00")},
		},
	}
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_Success() {
	suite.mockLedger.On("InsertEntry", mock.Anything, mock.AnythingOfType("*domain.Entry")).
		Run(func(args mock.Arguments) {
			e := args.Get(1).(*domain.Entry)
			e.ID = 7
			e.Reference = "BQ-2016/00001"
		}).
		Return(nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/entries", validRequest())

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.EntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(7), resp.ID)
	suite.Equal("BQ-2016/00001", resp.Reference)
	suite.Equal("2016-12-31", resp.Date)
	suite.True(resp.TotalDebit.Equal(decimal.NewFromInt(100)))
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_RuleViolationsAre422() {
	violation := apperrors.NewFunctional(apperrors.CodeEntryValidation, "entry violates bookkeeping rules",
		apperrors.Detail{Rule: "RG_Compta_5", Field: "lines", Message: "entry is not balanced"})
	suite.mockLedger.On("InsertEntry", mock.Anything, mock.Anything).Return(violation).Once()

	w := suite.do(http.MethodPost, "/api/v1/entries", validRequest())

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(apperrors.CodeEntryValidation, resp.Code)
	suite.Require().Len(resp.Details, 1)
	suite.Equal("RG_Compta_5", resp.Details[0].Rule)
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_BadInput() {
	tests := []struct {
		name string
		body any
	}{
		{name: "not an object", body: "nope"},
		{name: "journal code too long", body: func() dto.EntryRequest { r := validRequest(); r.JournalCode = "TOOLONG"; return r }()},
		{name: "missing date", body: func() dto.EntryRequest { r := validRequest(); r.Date = ""; return r }()},
		{name: "unparsable date", body: func() dto.EntryRequest { r := validRequest(); r.Date = "2016/12/31"; return r }()},
		{name: "unknown line type", body: func() dto.EntryRequest { r := validRequest(); r.Lines[0].Type = "BOTH"; return r }()},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.do(http.MethodPost, "/api/v1/entries", tt.body)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.mockLedger.AssertNotCalled(suite.T(), "InsertEntry", mock.Anything, mock.Anything)
}

func (suite *EntryHandlerTestSuite) TestListEntries_TechnicalErrorHidesCause() {
	suite.mockLedger.On("ListEntries", mock.Anything).
		Return(nil, apperrors.NewTechnical(apperrors.CodePersistence, "failed to list entries", errors.New("connection refused"))).Once()

	w := suite.do(http.MethodGet, "/api/v1/entries", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "connection refused")
}

func (suite *EntryHandlerTestSuite) TestListEntries_ByDate() {
	entries := []domain.Entry{{ID: 1, JournalCode: "BQ", Date: time.Date(2016, 3, 1, 0, 0, 0, 0, time.UTC)}}
	suite.mockLedger.On("ListEntriesByDate", mock.Anything, "2016-01-01", "2016-12-31").Return(entries, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/entries?start=2016-01-01&end=2016-12-31", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.EntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
}

func (suite *EntryHandlerTestSuite) TestListEntries_InvalidRange() {
	suite.mockLedger.On("ListEntriesByDate", mock.Anything, "2016-12-31", "2016-01-01").
		Return(nil, apperrors.NewFunctional(apperrors.CodeInvalidDateRange, "start is after end")).Once()
	suite.mockLedger.On("ListEntriesByDate", mock.Anything, "bad", "2016-01-01").
		Return(nil, apperrors.NewTechnical(apperrors.CodeInvalidDate, "invalid date", errors.New("parse"))).Once()

	w := suite.do(http.MethodGet, "/api/v1/entries?start=2016-12-31&end=2016-01-01", nil)
	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/entries?start=bad&end=2016-01-01", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *EntryHandlerTestSuite) TestGetEntry() {
	suite.mockLedger.On("GetEntry", mock.Anything, int64(3)).Return(nil, apperrors.NewNotFound("entry %d not found", 3)).Once()

	w := suite.do(http.MethodGet, "/api/v1/entries/3", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/entries/abc", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *EntryHandlerTestSuite) TestUpdateEntry_UsesPathID() {
	suite.mockLedger.On("UpdateEntry", mock.Anything, mock.MatchedBy(func(e *domain.Entry) bool {
		return e.ID == 9 && e.Reference == "BQ-2016/00001"
	})).Return(nil).Once()

	req := validRequest()
	req.Reference = "BQ-2016/00001"
	w := suite.do(http.MethodPut, "/api/v1/entries/9", req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestDeleteEntry() {
	suite.mockLedger.On("DeleteEntry", mock.Anything, int64(4)).Return(nil).Once()
	suite.mockLedger.On("DeleteEntry", mock.Anything, int64(5)).Return(apperrors.NewNotFound("entry %d not found", 5)).Once()

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/entries/4", nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodDelete, "/api/v1/entries/5", nil).Code)
}

func (suite *EntryHandlerTestSuite) TestWriteHandlers_PassCallerAsActor() {
	byCaller := mock.MatchedBy(func(ctx context.Context) bool {
		return events.ActorFromContext(ctx) == "user-1"
	})
	suite.mockLedger.On("InsertEntry", byCaller, mock.Anything).Return(nil).Once()
	suite.mockLedger.On("DeleteEntry", byCaller, int64(4)).Return(nil).Once()

	suite.Equal(http.StatusCreated, suite.do(http.MethodPost, "/api/v1/entries", validRequest()).Code)
	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/entries/4", nil).Code)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestValidateEntry() {
	suite.mockLedger.On("CheckEntry", mock.Anything, mock.Anything).Return(nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/entries/validate", validRequest())

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"valid":true}`, w.Body.String())
	suite.mockLedger.AssertNotCalled(suite.T(), "InsertEntry", mock.Anything, mock.Anything)
}

func (suite *EntryHandlerTestSuite) TestBalances() {
	balance := domain.NewAccountBalance(512, nil, nil, []domain.EntryLine{domain.NewDebitLine(512, decimal.NewFromInt(30), "")})
	suite.mockLedger.On("GetAccountBalance", mock.Anything, 512).Return(&balance, nil).Once()
	suite.mockLedger.On("GetAccountBalances", mock.Anything, []int{512, 411}).Return([]domain.AccountBalance{balance, {AccountCode: 411}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/512/balance", nil)
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Net.Equal(decimal.NewFromInt(30)))

	w = suite.do(http.MethodGet, "/api/v1/balances?codes=512,411", nil)
	suite.Equal(http.StatusOK, w.Code)

	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/balances?codes=512,abc", nil).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/balances", nil).Code)
}

func (suite *EntryHandlerTestSuite) TestSequences() {
	suite.mockLedger.On("GetSequenceValue", mock.Anything, "BQ", 2016).Return(41, nil).Once()
	suite.mockLedger.On("UpsertSequenceValue", mock.Anything, "BQ", 2016, 50).Return(nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/sequences/bq/2016", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"journalCode":"BQ","year":2016,"lastValue":41}`, w.Body.String())

	w = suite.do(http.MethodPut, "/api/v1/sequences/BQ/2016", map[string]int{"value": 50})
	suite.Equal(http.StatusOK, w.Code)

	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPut, "/api/v1/sequences/BQ/2016", map[string]int{"value": -1}).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/sequences/BQ/year", nil).Code)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestRequiresToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/entries", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestEntryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EntryHandlerTestSuite))
}
