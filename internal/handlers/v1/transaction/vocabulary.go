package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/weverton790458597/DashBoard/internal/service"
)

// VocabularyResponse lists the labels offered when entering transactions.
type VocabularyResponse struct {
	Categories  []string `json:"categories" doc:"Known expense categories"`
	Sources     []string `json:"sources" doc:"Known income sources"`
	IncomeTypes []string `json:"incomeTypes" doc:"Income types"`
}

// VocabularyOutput is the Huma output for the vocabulary endpoint.
type VocabularyOutput struct {
	Body VocabularyResponse
}

type vocabularyReader interface {
	Vocabulary(ctx context.Context) (*service.Vocabulary, error)
}

// VocabularyHandler handles GET /v1/transaction/vocabulary.
type VocabularyHandler struct {
	TransactionService vocabularyReader
}

func NewVocabularyHandler(svc vocabularyReader) *VocabularyHandler {
	return &VocabularyHandler{TransactionService: svc}
}

func (h *VocabularyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-vocabulary",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/vocabulary",
		Summary:     "List categories and sources",
		Description: "Returns the expense categories, income sources and income types known to the session.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *VocabularyHandler) handle(ctx context.Context, _ *struct{}) (*VocabularyOutput, error) {
	vocabulary, err := h.TransactionService.Vocabulary(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to load vocabulary", err)
	}
	return &VocabularyOutput{Body: VocabularyResponse{
		Categories:  nonNil(vocabulary.Categories),
		Sources:     nonNil(vocabulary.Sources),
		IncomeTypes: nonNil(vocabulary.IncomeTypes),
	}}, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
