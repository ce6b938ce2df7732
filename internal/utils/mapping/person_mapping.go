package mapping

import (
	"github.com/aldayn/dayn_backend/internal/core/domain"
	"github.com/aldayn/dayn_backend/internal/models"
)

// ToModelPerson converts a domain Person to its persisted shape.
func ToModelPerson(p domain.Person) models.Person {
	return models.Person{
		ID:        p.PersonID,
		Name:      p.Name,
		Phone:     p.Phone,
		CreatedAt: p.CreatedAt,
	}
}

// ToDomainPerson converts a persisted Person record to the domain shape.
func ToDomainPerson(m models.Person) domain.Person {
	return domain.Person{
		PersonID:  m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
	}
}

// ToModelPersons converts a slice of domain Persons.
func ToModelPersons(people []domain.Person) []models.Person {
	out := make([]models.Person, len(people))
	for i, p := range people {
		out[i] = ToModelPerson(p)
	}
	return out
}

// ToDomainPersons converts a slice of persisted Person records.
func ToDomainPersons(records []models.Person) []domain.Person {
	out := make([]domain.Person, len(records))
	for i, m := range records {
		out[i] = ToDomainPerson(m)
	}
	return out
}
