package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/aldayn/dayn_backend/internal/apperrors"
	"github.com/aldayn/dayn_backend/internal/core/domain"
	portssvc "github.com/aldayn/dayn_backend/internal/core/ports/services"
	"github.com/aldayn/dayn_backend/internal/dto"
	"github.com/aldayn/dayn_backend/internal/handlers"
	"github.com/aldayn/dayn_backend/internal/middleware"
	"github.com/aldayn/dayn_backend/internal/platform/config"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CreatePerson(ctx context.Context, req dto.CreatePersonRequest) (*domain.Person, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}
func (m *MockLedgerService) DeletePerson(ctx context.Context, personID string) error {
	args := m.Called(ctx, personID)
	return args.Error(0)
}
func (m *MockLedgerService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}
func (m *MockLedgerService) GetPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}
func (m *MockLedgerService) FindPersonByName(ctx context.Context, name string) (*domain.Person, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}
func (m *MockLedgerService) ListPersons(ctx context.Context) ([]domain.Person, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Person), args.Error(1)
}
func (m *MockLedgerService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) ListTransactionsByPerson(ctx context.Context, personID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Overview(ctx context.Context, currency domain.Currency) (*domain.OverviewReport, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OverviewReport), args.Error(1)
}
func (m *MockReportingService) PersonSummary(ctx context.Context, personID string) ([]domain.CurrencySummary, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencySummary), args.Error(1)
}
func (m *MockReportingService) PersonBalances(ctx context.Context, currency domain.Currency) ([]domain.PersonBalance, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PersonBalance), args.Error(1)
}

var _ portssvc.ReportingSvc = (*MockReportingService)(nil)

// --- Mock SettingsService ---
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetSettings(ctx context.Context) (domain.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Settings), args.Error(1)
}
func (m *MockSettingsService) GetUpdateCursor(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockSettingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.Settings, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}
func (m *MockSettingsService) SaveUpdateCursor(ctx context.Context, updateID int64) error {
	args := m.Called(ctx, updateID)
	return args.Error(0)
}

var _ portssvc.SettingsSvcFacade = (*MockSettingsService)(nil)

// --- Mock AdvisorService ---
type MockAdvisorService struct {
	mock.Mock
}

func (m *MockAdvisorService) Ask(ctx context.Context, question string) (string, error) {
	args := m.Called(ctx, question)
	return args.String(0), args.Error(1)
}

var _ portssvc.AdvisorSvc = (*MockAdvisorService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

var _ portssvc.AuthSvc = (*MockAuthService)(nil)

// --- Test Suite ---
type PersonHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockLedger    *MockLedgerService
	mockReporting *MockReportingService
	mockSettings  *MockSettingsService
	jwtSecret     string
}

// generateTestToken creates an owner session JWT for requests.
func (suite *PersonHandlerTestSuite) generateTestToken() string {
	claims := jwt.RegisteredClaims{
		Issuer:    "dayn-test",
		Subject:   middleware.OwnerSubject,
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

func (suite *PersonHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockLedger = new(MockLedgerService)
	suite.mockReporting = new(MockReportingService)
	suite.mockSettings = new(MockSettingsService)

	cfg := &config.Config{JWTSecret: suite.jwtSecret, AdvisorRateLimit: "10-M"}
	container := &portssvc.ServiceContainer{
		Ledger:    suite.mockLedger,
		Reporting: suite.mockReporting,
		Settings:  suite.mockSettings,
		Advisor:   new(MockAdvisorService),
		Auth:      new(MockAuthService),
	}

	rate, err := limiter.NewRateFromFormatted(cfg.AdvisorRateLimit)
	suite.Require().NoError(err)
	handlers.RegisterRoutes(suite.router, cfg, container, limiter.New(limitermemory.NewStore(), rate))
}

func (suite *PersonHandlerTestSuite) doRequest(method, path string, body []byte, withToken bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if withToken {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *PersonHandlerTestSuite) TestCreatePerson_Success() {
	person := &domain.Person{PersonID: uuid.NewString(), Name: "Ahmad", CreatedAt: time.Now()}
	suite.mockLedger.On("CreatePerson", mock.Anything, dto.CreatePersonRequest{Name: "Ahmad"}).Return(person, nil).Once()

	body, _ := json.Marshal(gin.H{"name": "Ahmad"})
	w := suite.doRequest(http.MethodPost, "/api/v1/people", body, true)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.PersonResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(person.PersonID, resp.PersonID)
	suite.Equal("Ahmad", resp.Name)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *PersonHandlerTestSuite) TestCreatePerson_MissingName() {
	body, _ := json.Marshal(gin.H{"phone": "0501234567"})
	w := suite.doRequest(http.MethodPost, "/api/v1/people", body, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedger.AssertNotCalled(suite.T(), "CreatePerson", mock.Anything, mock.Anything)
}

func (suite *PersonHandlerTestSuite) TestCreatePerson_Unauthorized() {
	body, _ := json.Marshal(gin.H{"name": "Ahmad"})
	w := suite.doRequest(http.MethodPost, "/api/v1/people", body, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *PersonHandlerTestSuite) TestListPeople_UsesDefaultCurrency() {
	stored := domain.DefaultSettings()
	balances := []domain.PersonBalance{
		{
			Person:   domain.Person{PersonID: uuid.NewString(), Name: "Ahmad"},
			Currency: domain.CurrencySAR,
			Balance:  decimal.RequireFromString("60"),
			Status:   domain.StatusCreditor,
		},
	}

	suite.mockSettings.On("GetSettings", mock.Anything).Return(stored, nil).Once()
	suite.mockReporting.On("PersonBalances", mock.Anything, domain.CurrencySAR).Return(balances, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/people", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.PersonBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("creditor", resp[0].Status)
	suite.mockReporting.AssertExpectations(suite.T())
}

func (suite *PersonHandlerTestSuite) TestListPeople_ExplicitCurrency() {
	suite.mockReporting.On("PersonBalances", mock.Anything, domain.CurrencyUSD).Return([]domain.PersonBalance{}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/people?currency=USD", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	// The stored default is never consulted when the query names a currency.
	suite.mockSettings.AssertNotCalled(suite.T(), "GetSettings", mock.Anything)
}

func (suite *PersonHandlerTestSuite) TestListPeople_BadCurrency() {
	w := suite.doRequest(http.MethodGet, "/api/v1/people?currency=EUR", nil, true)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *PersonHandlerTestSuite) TestGetPerson_NotFound() {
	personID := uuid.NewString()
	suite.mockLedger.On("GetPersonByID", mock.Anything, personID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/people/"+personID, nil, true)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *PersonHandlerTestSuite) TestGetPerson_Detail() {
	person := &domain.Person{PersonID: uuid.NewString(), Name: "Ahmad", CreatedAt: time.Now()}
	summaries := []domain.CurrencySummary{
		{Currency: domain.CurrencyUSD, Give: decimal.RequireFromString("100"), Take: decimal.RequireFromString("40"), Balance: decimal.RequireFromString("60")},
	}
	txns := []domain.Transaction{
		{TransactionID: uuid.NewString(), PersonID: person.PersonID, Amount: decimal.RequireFromString("100"), Type: domain.Give, Currency: domain.CurrencyUSD, Date: time.Now()},
	}

	suite.mockLedger.On("GetPersonByID", mock.Anything, person.PersonID).Return(person, nil).Once()
	suite.mockReporting.On("PersonSummary", mock.Anything, person.PersonID).Return(summaries, nil).Once()
	suite.mockLedger.On("ListTransactionsByPerson", mock.Anything, person.PersonID).Return(txns, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/people/"+person.PersonID, nil, true)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PersonDetailResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(person.PersonID, resp.PersonID)
	suite.Require().Len(resp.Summaries, 1)
	suite.Equal("USD", resp.Summaries[0].Currency)
	suite.Require().Len(resp.Transactions, 1)
}

func (suite *PersonHandlerTestSuite) TestDeletePerson() {
	personID := uuid.NewString()
	suite.mockLedger.On("DeletePerson", mock.Anything, personID).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/people/"+personID, nil, true)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockLedger.AssertExpectations(suite.T())
}

func TestPersonHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PersonHandlerTestSuite))
}
