package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/weverton790458597/DashBoard/internal/export"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := newRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	rootCmd := newRootCmd()
	assert.Equal(t, "financeflow", rootCmd.Use)
	assert.Contains(t, rootCmd.Long, "FinanceFlow")

	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"serve", "summary", "export"})
}

func TestSummary_SeededSession(t *testing.T) {
	out, err := runCmd(t, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "FinanceFlow (all)")
	assert.Contains(t, out, "Net worth:")
	assert.Contains(t, out, "IQ Option")
	assert.Contains(t, out, "R$")
}

func TestSummary_EmptySession(t *testing.T) {
	out, err := runCmd(t, "summary", "--seed=false", "--range", "currentMonth")
	require.NoError(t, err)
	assert.Contains(t, out, "no transactions")
	assert.Contains(t, out, "no accounts")
}

func TestSummary_InvalidRange(t *testing.T) {
	_, err := runCmd(t, "summary", "--range", "week")
	assert.Error(t, err)
}

func TestSummary_InvalidLogLevel(t *testing.T) {
	_, err := runCmd(t, "summary", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestExport_WritesWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.xlsx")

	out, err := runCmd(t, "export", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), export.SheetOverview)
	assert.Contains(t, f.GetSheetList(), export.SheetExpenses)
}
