package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/weverton790458597/DashBoard/internal/config"
	"github.com/weverton790458597/DashBoard/internal/ledger"
	"github.com/weverton790458597/DashBoard/internal/service"
	"github.com/weverton790458597/DashBoard/internal/storage"
)

// app carries what every command needs once flags are parsed.
type app struct {
	v   *viper.Viper
	cfg *config.Config
	now func() time.Time
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), now: time.Now}

	rootCmd := &cobra.Command{
		Use:   "financeflow",
		Short: "Personal finance dashboard server",
		Long: `FinanceFlow keeps a session of expenses, income and investment accounts and
serves dashboard analytics over them: net worth, monthly comparison and
category and source breakdowns.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.ProcessEnvironmentVariables(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("seed", true, "start the session with demo data")
	_ = a.v.BindPFlag(config.KeyConfigFile, rootCmd.PersistentFlags().Lookup("config"))
	_ = a.v.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeySeedMockData, rootCmd.PersistentFlags().Lookup("seed"))

	rootCmd.AddCommand(serveCmd(a))
	rootCmd.AddCommand(summaryCmd(a))
	rootCmd.AddCommand(exportCmd(a))

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// dashboard is the three dashboard views for one filter.
type dashboard struct {
	overview *service.Overview
	expenses *service.ExpenseAnalysis
	income   *service.IncomeAnalysis
}

// loadDashboard builds a fresh session from the configuration and computes
// every view for the given date range.
func (a *app) loadDashboard(ctx context.Context, rawRange string) (*dashboard, error) {
	dateRange, err := ledger.ParseDateRange(rawRange)
	if err != nil {
		return nil, err
	}
	filter := ledger.Filter{DateRange: dateRange}

	svc := service.NewService(storage.NewStorage(a.cfg), a.now)

	overview, err := svc.Dashboard.Overview(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("overview: %w", err)
	}
	expenses, err := svc.Dashboard.ExpenseAnalysis(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("expense analysis: %w", err)
	}
	income, err := svc.Dashboard.IncomeAnalysis(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("income analysis: %w", err)
	}
	return &dashboard{overview: overview, expenses: expenses, income: income}, nil
}

func rangeFlag(cmd *cobra.Command) *string {
	return cmd.Flags().String("range", string(ledger.RangeAll),
		fmt.Sprintf("date range (%s, %s, %s, %s)",
			ledger.RangeAll, ledger.RangeLast30Days, ledger.RangeCurrentMonth, ledger.RangeCurrentYear))
}
