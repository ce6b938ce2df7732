package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/aldayn/dayn_backend/internal/apperrors"
	"github.com/aldayn/dayn_backend/internal/core/domain"
	portssvc "github.com/aldayn/dayn_backend/internal/core/ports/services"
	"github.com/aldayn/dayn_backend/internal/core/services"
)

// MockInterpreterClient is a mock type for the EntryInterpreterClient interface
type MockInterpreterClient struct {
	mock.Mock
}

func (m *MockInterpreterClient) InterpretEntry(ctx context.Context, text string, language domain.Language) (*domain.EntryCommand, error) {
	args := m.Called(ctx, text, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EntryCommand), args.Error(1)
}

type RemoteEntryServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo   *MockLedgerRepository
	mockSettingsRepo *MockSettingsRepository
	mockInterpreter  *MockInterpreterClient
	service          portssvc.RemoteEntrySvc
}

func (suite *RemoteEntryServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.mockInterpreter = new(MockInterpreterClient)

	settings := services.NewSettingsService(suite.mockSettingsRepo)
	ledger := services.NewLedgerService(suite.mockLedgerRepo, settings)
	suite.service = services.NewRemoteEntryService(ledger, settings, suite.mockInterpreter)
}

func (suite *RemoteEntryServiceTestSuite) allowSender(chatID string) domain.Settings {
	stored := domain.DefaultSettings()
	stored.BotToken = "token"
	stored.AllowedChatID = chatID
	suite.mockSettingsRepo.On("GetSettings", mock.Anything).Return(stored, nil)
	return stored
}

func (suite *RemoteEntryServiceTestSuite) TestHandleMessage_RejectsUnknownSender() {
	ctx := context.Background()
	suite.allowSender("12345")

	_, err := suite.service.HandleMessage(ctx, "99999", "record 50 for Ahmad")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrSenderNotAllowed)
	suite.mockInterpreter.AssertNotCalled(suite.T(), "InterpretEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RemoteEntryServiceTestSuite) TestHandleMessage_RejectsWhenNoSenderConfigured() {
	ctx := context.Background()
	suite.allowSender("")

	_, err := suite.service.HandleMessage(ctx, "12345", "record 50 for Ahmad")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrSenderNotAllowed)
}

func (suite *RemoteEntryServiceTestSuite) TestHandleMessage_InterpretFailureYieldsParseReply() {
	ctx := context.Background()
	suite.allowSender("12345")
	suite.mockInterpreter.On("InterpretEntry", ctx, "gibberish", domain.LanguageAr).Return(nil, fmt.Errorf("no entry found")).Once()

	reply, err := suite.service.HandleMessage(ctx, "12345", "gibberish")

	suite.Require().NoError(err)
	suite.Contains(reply, "لم أفهم")
}

func (suite *RemoteEntryServiceTestSuite) TestHandleMessage_ExistingPerson() {
	ctx := context.Background()
	suite.allowSender("12345")
	person := &domain.Person{PersonID: uuid.NewString(), Name: "Ahmad", CreatedAt: time.Now()}

	suite.mockInterpreter.On("InterpretEntry", ctx, "record 50 riyal for Ahmad", domain.LanguageAr).Return(&domain.EntryCommand{
		PersonName: "Ahmad",
		Amount:     decimal.RequireFromString("50"),
		Type:       domain.Give,
		Currency:   domain.CurrencySAR,
	}, nil).Once()
	suite.mockLedgerRepo.On("FindPersonByName", ctx, "Ahmad").Return(person, nil).Once()
	suite.mockLedgerRepo.On("FindPersonByID", ctx, person.PersonID).Return(person, nil).Once()
	suite.mockLedgerRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	reply, err := suite.service.HandleMessage(ctx, "12345", "record 50 riyal for Ahmad")

	suite.Require().NoError(err)
	suite.Contains(reply, "Ahmad")
	suite.Contains(reply, "✅")
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *RemoteEntryServiceTestSuite) TestHandleMessage_RegistersUnknownPerson() {
	ctx := context.Background()
	suite.allowSender("12345")

	suite.mockInterpreter.On("InterpretEntry", ctx, "borrowed 20 dollars from Sara", domain.LanguageAr).Return(&domain.EntryCommand{
		PersonName: "Sara",
		Amount:     decimal.RequireFromString("20"),
		Type:       domain.Take,
		Currency:   domain.CurrencyUSD,
	}, nil).Once()
	suite.mockLedgerRepo.On("FindPersonByName", ctx, "Sara").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockLedgerRepo.On("SavePerson", ctx, mock.AnythingOfType("domain.Person")).Return(nil).Once()
	suite.mockLedgerRepo.On("FindPersonByID", ctx, mock.AnythingOfType("string")).Return(&domain.Person{PersonID: uuid.NewString(), Name: "Sara"}, nil).Once()
	suite.mockLedgerRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	reply, err := suite.service.HandleMessage(ctx, "12345", "borrowed 20 dollars from Sara")

	suite.Require().NoError(err)
	suite.Contains(reply, "✅")
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *RemoteEntryServiceTestSuite) TestHandleMessage_InvalidEntryYieldsRejectedReply() {
	ctx := context.Background()
	suite.allowSender("12345")
	person := &domain.Person{PersonID: uuid.NewString(), Name: "Ahmad"}

	// A zero amount passes interpretation but fails the mutation API.
	suite.mockInterpreter.On("InterpretEntry", ctx, "record nothing for Ahmad", domain.LanguageAr).Return(&domain.EntryCommand{
		PersonName: "Ahmad",
		Amount:     decimal.Zero,
		Type:       domain.Give,
		Currency:   domain.CurrencySAR,
	}, nil).Once()
	suite.mockLedgerRepo.On("FindPersonByName", ctx, "Ahmad").Return(person, nil).Once()

	reply, err := suite.service.HandleMessage(ctx, "12345", "record nothing for Ahmad")

	suite.Require().NoError(err)
	suite.Contains(reply, "تعذر")
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func TestRemoteEntryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RemoteEntryServiceTestSuite))
}
