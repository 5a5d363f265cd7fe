package main

import (
	"context"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/weverton790458597/DashBoard/api"
	"github.com/weverton790458597/DashBoard/internal/config"
	"github.com/weverton790458597/DashBoard/internal/logging"
	"github.com/weverton790458597/DashBoard/internal/operator"
	"github.com/weverton790458597/DashBoard/internal/service"
	"github.com/weverton790458597/DashBoard/internal/storage"
)

func serveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.SetupLogging()
			logger.SetLevel(a.cfg.LogLevel)
			logger.WithField("seed", a.cfg.SeedMockData).Info("financeflow starting")

			store := storage.NewStorage(a.cfg)
			svc := service.NewService(store, a.now)

			op := operator.NewOperatorDelegator(store, logger, a.cfg.OperatorWorkers, a.cfg.QueueSize)
			op.Start()

			err := runServer(cmd.Context(), &api.Rest{
				Logger:   logger,
				Port:     a.cfg.Port,
				Service:  svc,
				Operator: op,
				Now:      a.now,
			}, op)
			logger.Info("financeflow stopped")
			return err
		},
	}

	cmd.Flags().String("port", "9446", "HTTP listen port")
	_ = a.v.BindPFlag(config.KeyPort, cmd.Flags().Lookup("port"))

	return cmd
}

// runServer runs the HTTP server and the operator side by side. Whichever
// ends first cancels the other; the operator drains its queue on the way out.
func runServer(ctx context.Context, rest *api.Rest, op *operator.OperatorDelegator) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return rest.Serve(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		op.Stop()
		return nil
	})
	return g.Wait()
}
