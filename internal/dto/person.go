package dto

import (
	"time"

	"github.com/aldayn/dayn_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePersonRequest defines the data needed to register a new person.
type CreatePersonRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

// PersonResponse defines the data returned for a person.
type PersonResponse struct {
	PersonID  string    `json:"personID"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// PersonBalanceResponse is the list-view shape: a person plus their balance
// and creditor/debtor status in the requested display currency.
type PersonBalanceResponse struct {
	PersonResponse
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
	Status   string          `json:"status"`
}

// PersonDetailResponse is the detail-view shape: the person, their
// per-currency summaries and their transactions.
type PersonDetailResponse struct {
	PersonResponse
	Summaries    []CurrencySummaryResponse `json:"summaries"`
	Transactions []TransactionResponse     `json:"transactions"`
}

// ToPersonResponse converts a domain.Person to PersonResponse DTO
func ToPersonResponse(p *domain.Person) PersonResponse {
	return PersonResponse{
		PersonID:  p.PersonID,
		Name:      p.Name,
		Phone:     p.Phone,
		CreatedAt: p.CreatedAt,
	}
}

// ToPersonBalanceResponse converts a domain.PersonBalance to its DTO.
func ToPersonBalanceResponse(pb domain.PersonBalance) PersonBalanceResponse {
	return PersonBalanceResponse{
		PersonResponse: ToPersonResponse(&pb.Person),
		Currency:       string(pb.Currency),
		Balance:        pb.Balance,
		Status:         string(pb.Status),
	}
}

// ToListPersonBalanceResponse converts a slice of domain.PersonBalance.
func ToListPersonBalanceResponse(balances []domain.PersonBalance) []PersonBalanceResponse {
	res := make([]PersonBalanceResponse, len(balances))
	for i, pb := range balances {
		res[i] = ToPersonBalanceResponse(pb)
	}
	return res
}
