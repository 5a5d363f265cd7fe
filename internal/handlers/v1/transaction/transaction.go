package transaction

import (
	"github.com/weverton790458597/DashBoard/internal/ledger"
)

// Expense is the API response model for an expense.
type Expense struct {
	ID          string `json:"id" doc:"Expense UUID"`
	Date        string `json:"date" doc:"Calendar date, YYYY-MM-DD"`
	Description string `json:"description" doc:"Description"`
	Value       string `json:"value" doc:"Decimal value in the home currency"`
	Category    string `json:"category" doc:"Expense category"`
	Status      string `json:"status" doc:"Pago or Pendente"`
}

// Income is the API response model for an income entry.
type Income struct {
	ID          string `json:"id" doc:"Income UUID"`
	Date        string `json:"date" doc:"Calendar date, YYYY-MM-DD"`
	Description string `json:"description" doc:"Description"`
	Value       string `json:"value" doc:"Decimal value in the home currency"`
	Source      string `json:"source" doc:"Income source"`
	Type        string `json:"type" doc:"Income type"`
}

func NewExpense(e ledger.Expense) Expense {
	return Expense{
		ID:          e.ID.String(),
		Date:        e.Date.String(),
		Description: e.Description,
		Value:       e.Value.String(),
		Category:    e.Category,
		Status:      string(e.Status),
	}
}

func NewIncome(i ledger.Income) Income {
	return Income{
		ID:          i.ID.String(),
		Date:        i.Date.String(),
		Description: i.Description,
		Value:       i.Value.String(),
		Source:      i.Source,
		Type:        string(i.Type),
	}
}

// UpsertResponse is the response body of both upsert endpoints.
type UpsertResponse struct {
	ID              string `json:"id" doc:"Transaction UUID"`
	Created         bool   `json:"created" doc:"True when a new transaction was appended"`
	VocabularyAdded bool   `json:"vocabularyAdded" doc:"True when the category or source was new"`
}

// UpsertOutput is the Huma output of both upsert endpoints.
type UpsertOutput struct {
	Status int
	Body   UpsertResponse
}

func newUpsertOutput(result ledger.UpsertResult) *UpsertOutput {
	status := 200
	if result.Created {
		status = 201
	}
	return &UpsertOutput{
		Status: status,
		Body: UpsertResponse{
			ID:              result.ID.String(),
			Created:         result.Created,
			VocabularyAdded: result.VocabularyAdded,
		},
	}
}
