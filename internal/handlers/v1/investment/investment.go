package investment

import (
	"github.com/weverton790458597/DashBoard/internal/service"
)

// Investment is the API response model for an investment account.
type Investment struct {
	ID        string `json:"id" doc:"Account UUID"`
	Name      string `json:"name" doc:"Broker or account name"`
	Value     string `json:"value" doc:"Balance in the account currency"`
	Currency  string `json:"currency" enum:"BRL,USD" doc:"Account currency"`
	HomeValue string `json:"homeValue" doc:"Balance converted to the home currency"`
}

// NewInvestment converts a service investment into its API model.
func NewInvestment(inv service.Investment) Investment {
	return Investment{
		ID:        inv.ID.String(),
		Name:      inv.Name,
		Value:     inv.Value.String(),
		Currency:  string(inv.Currency),
		HomeValue: inv.HomeValue.String(),
	}
}

// NewInvestments converts a slice, never returning nil.
func NewInvestments(invs []service.Investment) []Investment {
	out := make([]Investment, 0, len(invs))
	for _, inv := range invs {
		out = append(out, NewInvestment(inv))
	}
	return out
}
