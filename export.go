package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/weverton790458597/DashBoard/internal/export"
)

func exportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the dashboard to an XLSX workbook",
		Args:  cobra.NoArgs,
	}
	dateRange := rangeFlag(cmd)
	out := cmd.Flags().String("out", "financeflow.xlsx", "output file")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		d, err := a.loadDashboard(cmd.Context(), *dateRange)
		if err != nil {
			return err
		}
		raw, err := export.WorkbookXLSX(export.Data{
			Overview: d.overview,
			Expenses: d.expenses,
			Income:   d.income,
		})
		if err != nil {
			return err
		}
		if err := os.WriteFile(*out, raw, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", *out, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", *out)
		return nil
	}

	return cmd
}
