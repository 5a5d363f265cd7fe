package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/weverton790458597/DashBoard/internal/handlers/v1/dashboard"
	"github.com/weverton790458597/DashBoard/internal/handlers/v1/investment"
	"github.com/weverton790458597/DashBoard/internal/handlers/v1/settings"
	"github.com/weverton790458597/DashBoard/internal/handlers/v1/status"
	"github.com/weverton790458597/DashBoard/internal/handlers/v1/transaction"
	"github.com/weverton790458597/DashBoard/internal/logging"
	"github.com/weverton790458597/DashBoard/internal/operator"
	"github.com/weverton790458597/DashBoard/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
	// Now is the clock used to default transaction dates; nil means time.Now.
	Now func() time.Time
}

// Handler builds the router with every v1 operation and /status.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Operator)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("FinanceFlow API", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	dashboard.NewOverviewHandler(r.Service.Dashboard).Register(api)
	dashboard.NewExpensesHandler(r.Service.Dashboard).Register(api)
	dashboard.NewIncomeHandler(r.Service.Dashboard).Register(api)

	transaction.NewUpsertHandler(r.Operator, r.Now).Register(api)
	transaction.NewGetTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewDeleteTransactionHandler(r.Operator).Register(api)
	transaction.NewVocabularyHandler(r.Service.Transaction).Register(api)

	investment.NewListInvestmentsHandler(r.Service.Investment).Register(api)
	investment.NewCreateInvestmentHandler(r.Operator).Register(api)
	investment.NewModifyInvestmentHandler(r.Operator).Register(api)

	settings.NewHandler(r.Service.Investment, r.Operator).Register(api)

	return mux
}

// Serve listens until ctx is done, then shuts the server down gracefully.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
