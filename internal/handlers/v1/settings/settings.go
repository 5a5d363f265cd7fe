package settings

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/weverton790458597/DashBoard/internal/handlers/v1"
	"github.com/weverton790458597/DashBoard/internal/operator/actions"
	"github.com/weverton790458597/DashBoard/internal/service"
)

// Settings is the API model of the session settings.
type Settings struct {
	InitialBalance string `json:"initialBalance" doc:"Bank balance before any recorded transaction"`
	ExchangeRate   string `json:"exchangeRate" doc:"Home currency units per foreign unit"`
}

func NewSettings(s service.Settings) Settings {
	return Settings{
		InitialBalance: s.InitialBalance.String(),
		ExchangeRate:   s.ExchangeRate.String(),
	}
}

type GetSettingsOutput struct {
	Body Settings
}

type SetValueBody struct {
	Value string `json:"value" required:"true" doc:"Decimal value"`
}

type SetValueInput struct {
	Body SetValueBody
}

type SetValueOutput struct{}

type settingsReader interface {
	GetSettings(ctx context.Context) (*service.Settings, error)
}

// Handler serves /v1/settings and its setters.
type Handler struct {
	InvestmentService settingsReader
	Operator          v1.ActionProcessor
}

func NewHandler(svc settingsReader, op v1.ActionProcessor) *Handler {
	return &Handler{InvestmentService: svc, Operator: op}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-settings",
		Method:      http.MethodGet,
		Path:        "/v1/settings",
		Summary:     "Get settings",
		Tags:        []string{"Settings"},
	}, h.handleGet)

	huma.Register(api, huma.Operation{
		OperationID:   "set-initial-balance",
		Method:        http.MethodPut,
		Path:          "/v1/settings/initial-balance",
		Summary:       "Set the initial bank balance",
		Tags:          []string{"Settings"},
		DefaultStatus: http.StatusNoContent,
	}, h.handleInitialBalance)

	huma.Register(api, huma.Operation{
		OperationID:   "set-exchange-rate",
		Method:        http.MethodPut,
		Path:          "/v1/settings/exchange-rate",
		Summary:       "Set the exchange rate",
		Description:   "The rate must be a positive decimal.",
		Tags:          []string{"Settings"},
		DefaultStatus: http.StatusNoContent,
	}, h.handleExchangeRate)
}

func (h *Handler) handleGet(ctx context.Context, _ *struct{}) (*GetSettingsOutput, error) {
	settings, err := h.InvestmentService.GetSettings(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to load settings", err)
	}
	return &GetSettingsOutput{Body: NewSettings(*settings)}, nil
}

func (h *Handler) handleInitialBalance(ctx context.Context, input *SetValueInput) (*SetValueOutput, error) {
	action := &actions.SetInitialBalance{Value: input.Body.Value}
	if err := v1.Process(ctx, h.Operator, action, "failed to set initial balance"); err != nil {
		return nil, err
	}
	return &SetValueOutput{}, nil
}

func (h *Handler) handleExchangeRate(ctx context.Context, input *SetValueInput) (*SetValueOutput, error) {
	action := &actions.SetExchangeRate{Value: input.Body.Value}
	if err := v1.Process(ctx, h.Operator, action, "failed to set exchange rate"); err != nil {
		return nil, err
	}
	return &SetValueOutput{}, nil
}
