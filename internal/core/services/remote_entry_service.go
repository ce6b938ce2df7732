package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aldayn/dayn_backend/internal/apperrors"
	"github.com/aldayn/dayn_backend/internal/core/domain"
	portssvc "github.com/aldayn/dayn_backend/internal/core/ports/services"
	"github.com/aldayn/dayn_backend/internal/dto"
	"github.com/aldayn/dayn_backend/internal/utils"
)

// ErrSenderNotAllowed marks messages from any sender other than the
// configured allowed chat id. Such messages are dropped without a reply.
var ErrSenderNotAllowed = errors.New("sender is not the configured allowed chat id")

var remoteParseFailureReply = map[domain.Language]string{
	domain.LanguageAr: "لم أفهم الرسالة. جرّب مثلاً: سجل 50 ريال لمحمد",
	domain.LanguageEn: "I could not understand that. Try for example: record 50 riyal for Mohammed",
}

var remoteRejectedReply = map[domain.Language]string{
	domain.LanguageAr: "تعذر تسجيل العملية: البيانات غير صالحة.",
	domain.LanguageEn: "Could not record the entry: the data is invalid.",
}

type remoteEntryService struct {
	BaseService
	ledgerSvc   portssvc.LedgerSvcFacade
	settingsSvc portssvc.SettingsReaderSvc
	interpreter portssvc.EntryInterpreterClient
}

// NewRemoteEntryService creates a new RemoteEntryService.
func NewRemoteEntryService(ledgerSvc portssvc.LedgerSvcFacade, settingsSvc portssvc.SettingsReaderSvc, interpreter portssvc.EntryInterpreterClient) portssvc.RemoteEntrySvc {
	return &remoteEntryService{
		ledgerSvc:   ledgerSvc,
		settingsSvc: settingsSvc,
		interpreter: interpreter,
	}
}

// Ensure remoteEntryService implements the RemoteEntrySvc interface
var _ portssvc.RemoteEntrySvc = (*remoteEntryService)(nil)

// HandleMessage processes one remote message end to end: sender check,
// interpretation, person resolution, then the mutation API. The returned
// string is the localized reply for the sender.
func (s *remoteEntryService) HandleMessage(ctx context.Context, senderID, text string) (string, error) {
	settings, err := s.settingsSvc.GetSettings(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get settings for remote entry: %w", err)
	}

	if settings.AllowedChatID == "" || senderID != settings.AllowedChatID {
		return "", ErrSenderNotAllowed
	}

	if s.interpreter == nil {
		s.LogInfo(ctx, "No interpreter client configured, cannot parse remote message")
		return remoteParseFailureReply[settings.Language], nil
	}

	cmd, err := s.interpreter.InterpretEntry(ctx, text, settings.Language)
	if err != nil {
		s.LogError(ctx, err, "Failed to interpret remote message")
		return remoteParseFailureReply[settings.Language], nil
	}

	person, err := s.resolvePerson(ctx, cmd.PersonName)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve person from remote message", slog.String("person_name", cmd.PersonName))
		return remoteRejectedReply[settings.Language], nil
	}

	txn, err := s.ledgerSvc.CreateTransaction(ctx, dto.CreateTransactionRequest{
		PersonID: person.PersonID,
		Amount:   cmd.Amount,
		Type:     string(cmd.Type),
		Currency: string(cmd.Currency),
		Note:     cmd.Note,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			s.LogInfo(ctx, "Remote entry rejected by mutation API", slog.String("error", err.Error()))
			return remoteRejectedReply[settings.Language], nil
		}
		return "", fmt.Errorf("failed to record remote entry: %w", err)
	}

	s.LogInfo(ctx, "Remote entry recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("person_id", person.PersonID))
	return confirmationReply(settings.Language, person.Name, txn), nil
}

// resolvePerson finds the named person or registers them on first mention.
func (s *remoteEntryService) resolvePerson(ctx context.Context, name string) (*domain.Person, error) {
	person, err := s.ledgerSvc.FindPersonByName(ctx, name)
	if err == nil {
		return person, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	return s.ledgerSvc.CreatePerson(ctx, dto.CreatePersonRequest{Name: name})
}

func confirmationReply(language domain.Language, personName string, txn *domain.Transaction) string {
	amount := utils.FormatAmountWithSymbol(txn.Amount, txn.Currency)
	if language == domain.LanguageAr {
		if txn.Type == domain.Give {
			return fmt.Sprintf("تم تسجيل %s لك عند %s ✅", amount, personName)
		}
		return fmt.Sprintf("تم تسجيل %s عليك لـ %s ✅", amount, personName)
	}
	if txn.Type == domain.Give {
		return fmt.Sprintf("Recorded %s owed to you by %s ✅", amount, personName)
	}
	return fmt.Sprintf("Recorded %s you owe to %s ✅", amount, personName)
}
