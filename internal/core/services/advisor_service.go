package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/aldayn/dayn_backend/internal/core/domain"
	portssvc "github.com/aldayn/dayn_backend/internal/core/ports/services"
)

// Fixed fallback strings per interface language. The advisor never surfaces
// a backend failure to the caller; it substitutes these instead.
var (
	advisorErrorFallback = map[domain.Language]string{
		domain.LanguageAr: "حدث خطأ. يرجى المحاولة لاحقاً.",
		domain.LanguageEn: "An error occurred. Please try again later.",
	}
	advisorEmptyFallback = map[domain.Language]string{
		domain.LanguageAr: "عذراً، لم أستطع معالجة طلبك.",
		domain.LanguageEn: "Sorry, I could not process your request.",
	}
)

type advisorService struct {
	BaseService
	reportingSvc portssvc.ReportingSvc
	settingsSvc  portssvc.SettingsReaderSvc
	client       portssvc.TextCompletionClient
}

// NewAdvisorService creates a new AdvisorService.
func NewAdvisorService(reportingSvc portssvc.ReportingSvc, settingsSvc portssvc.SettingsReaderSvc, client portssvc.TextCompletionClient) portssvc.AdvisorSvc {
	return &advisorService{
		reportingSvc: reportingSvc,
		settingsSvc:  settingsSvc,
		client:       client,
	}
}

// Ensure advisorService implements the AdvisorSvc interface
var _ portssvc.AdvisorSvc = (*advisorService)(nil)

// Ask answers a free-text question from the overview snapshot in the
// currently selected display currency.
func (s *advisorService) Ask(ctx context.Context, question string) (string, error) {
	settings, err := s.settingsSvc.GetSettings(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get settings for advisor: %w", err)
	}

	overview, err := s.reportingSvc.Overview(ctx, settings.DefaultCurrency)
	if err != nil {
		return "", fmt.Errorf("failed to compute overview for advisor: %w", err)
	}

	// Without a configured model client the advisor still answers, with the
	// fixed fallback text.
	if s.client == nil {
		s.LogInfo(ctx, "No completion client configured, returning fallback")
		return advisorErrorFallback[settings.Language], nil
	}

	prompt := buildAdvisorPrompt(overview, settings.Language, question)

	answer, err := s.client.GenerateText(ctx, prompt)
	if err != nil {
		s.LogError(ctx, err, "Advisory completion failed, returning fallback")
		return advisorErrorFallback[settings.Language], nil
	}
	if strings.TrimSpace(answer) == "" {
		s.LogInfo(ctx, "Advisory completion returned empty text, returning fallback")
		return advisorEmptyFallback[settings.Language], nil
	}
	return answer, nil
}

// buildAdvisorPrompt renders the fixed advisory prompt around the aggregate
// snapshot. The model sees totals only, never individual records.
func buildAdvisorPrompt(overview *domain.OverviewReport, language domain.Language, question string) string {
	cfg, _ := overview.Summary.Currency.Config()

	languageName := "English"
	if language == domain.LanguageAr {
		languageName = "Arabic"
	}

	var b strings.Builder
	b.WriteString("You are an expert financial advisor.\n")
	fmt.Fprintf(&b, "Current language: %s.\n", languageName)
	fmt.Fprintf(&b, "Current currency: %s (%s).\n", cfg.Label(language), cfg.Symbol)
	b.WriteString("User Data (in current currency):\n")
	fmt.Fprintf(&b, "- Total Owed to User: %s %s\n", overview.Summary.ToMe.String(), cfg.Symbol)
	fmt.Fprintf(&b, "- Total Owed by User: %s %s\n", overview.Summary.OnMe.String(), cfg.Symbol)
	fmt.Fprintf(&b, "- Number of people: %d\n\n", overview.PersonCount)
	fmt.Fprintf(&b, "User Question: %q\n\n", question)
	b.WriteString("Instructions:\n")
	fmt.Fprintf(&b, "1. Answer in the current language (%s).\n", string(language))
	b.WriteString("2. Be professional and supportive.\n")
	fmt.Fprintf(&b, "3. Use the currency symbol (%s) in your response.\n", cfg.Symbol)
	b.WriteString("4. Provide financial advice based on the numbers provided.\n")
	return b.String()
}
