package main

import (
	"github.com/spf13/cobra"

	"github.com/weverton790458597/DashBoard/internal/report"
)

func summaryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the dashboard to the terminal",
		Args:  cobra.NoArgs,
	}
	dateRange := rangeFlag(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		d, err := a.loadDashboard(cmd.Context(), *dateRange)
		if err != nil {
			return err
		}
		money, err := report.NewMoney(a.cfg.Locale)
		if err != nil {
			return err
		}
		return report.NewRenderer(money, report.DefaultStyles()).Render(cmd.OutOrStdout(), report.Data{
			Overview: d.overview,
			Expenses: d.expenses,
			Income:   d.income,
		})
	}

	return cmd
}
