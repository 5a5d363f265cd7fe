// Package export writes the dashboard views to an XLSX workbook.
package export

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/weverton790458597/DashBoard/internal/analytics"
	"github.com/weverton790458597/DashBoard/internal/service"
)

const (
	SheetOverview = "Overview"
	SheetMonthly  = "Monthly"
	SheetExpenses = "Expenses"
	SheetIncome   = "Income"
)

var ErrNoOverview = errors.New("export: overview is required")

type Data struct {
	Overview *service.Overview
	Expenses *service.ExpenseAnalysis
	Income   *service.IncomeAnalysis
}

// WorkbookXLSX renders data as an XLSX file.
func WorkbookXLSX(data Data) ([]byte, error) {
	if data.Overview == nil {
		return nil, ErrNoOverview
	}

	xlsx := excelize.NewFile()
	defer xlsx.Close()

	if err := xlsx.SetAppProps(&excelize.AppProperties{
		Application: "FinanceFlow",
		DocSecurity: 2,
	}); err != nil {
		return nil, err
	}

	sheet := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	if err := xlsx.SetSheetName(sheet, SheetOverview); err != nil {
		return nil, err
	}
	if err := writeOverview(xlsx, SheetOverview, data.Overview); err != nil {
		return nil, err
	}

	if _, err := xlsx.NewSheet(SheetMonthly); err != nil {
		return nil, err
	}
	if err := writeMonthly(xlsx, SheetMonthly, data.Overview.Monthly); err != nil {
		return nil, err
	}

	if data.Expenses != nil {
		if _, err := xlsx.NewSheet(SheetExpenses); err != nil {
			return nil, err
		}
		if err := writeDistribution(xlsx, SheetExpenses, "Category", data.Expenses.ByCategory, data.Expenses.Total); err != nil {
			return nil, err
		}
	}

	if data.Income != nil {
		if _, err := xlsx.NewSheet(SheetIncome); err != nil {
			return nil, err
		}
		if err := writeDistribution(xlsx, SheetIncome, "Source", data.Income.BySource, data.Income.Total); err != nil {
			return nil, err
		}
	}

	xlsx.SetActiveSheet(0)

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeOverview(xlsx *excelize.File, sheet string, o *service.Overview) error {
	rows := []struct {
		label string
		value decimal.Decimal
	}{
		{"Total income", o.NetWorth.TotalIncome},
		{"Total expenses", o.NetWorth.TotalExpenses},
		{"Initial balance", o.InitialBalance},
		{"Bank balance", o.NetWorth.BankBalance},
		{"Invested", o.NetWorth.InvestedTotal},
		{"Net worth", o.NetWorth.NetWorth},
		{"Exchange rate", o.ExchangeRate},
	}

	if err := xlsxHeader(xlsx, sheet, 1, []string{"Date range", string(o.Filter.DateRange)}); err != nil {
		return err
	}
	for i, r := range rows {
		row := i + 2
		if err := xlsx.SetCellValue(sheet, cell(1, row), r.label); err != nil {
			return err
		}
		if err := setAmount(xlsx, sheet, cell(2, row), r.value); err != nil {
			return err
		}
	}

	// Investment accounts below the totals, one line each.
	row := len(rows) + 3
	if err := xlsxHeader(xlsx, sheet, row, []string{"Account", "Currency", "Value", "Home value"}); err != nil {
		return err
	}
	for _, inv := range o.Investments {
		row++
		if err := xlsx.SetCellValue(sheet, cell(1, row), inv.Name); err != nil {
			return err
		}
		if err := xlsx.SetCellValue(sheet, cell(2, row), string(inv.Currency)); err != nil {
			return err
		}
		if err := setAmount(xlsx, sheet, cell(3, row), inv.Value); err != nil {
			return err
		}
		if err := setAmount(xlsx, sheet, cell(4, row), inv.HomeValue); err != nil {
			return err
		}
	}

	return xlsx.SetColWidth(sheet, "A", "D", 18)
}

func writeMonthly(xlsx *excelize.File, sheet string, months []analytics.MonthlyTotals) error {
	if err := xlsxHeader(xlsx, sheet, 1, []string{"Month", "Income", "Expense"}); err != nil {
		return err
	}
	for i, m := range months {
		row := i + 2
		if err := xlsx.SetCellValue(sheet, cell(1, row), m.Month); err != nil {
			return err
		}
		if err := setAmount(xlsx, sheet, cell(2, row), m.Income); err != nil {
			return err
		}
		if err := setAmount(xlsx, sheet, cell(3, row), m.Expense); err != nil {
			return err
		}
	}
	if err := xlsx.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}
	return xlsx.SetColWidth(sheet, "A", "C", 14)
}

func writeDistribution(xlsx *excelize.File, sheet, label string, values []analytics.NamedValue, total decimal.Decimal) error {
	if err := xlsxHeader(xlsx, sheet, 1, []string{label, "Value"}); err != nil {
		return err
	}
	row := 1
	for _, v := range values {
		row++
		if err := xlsx.SetCellValue(sheet, cell(1, row), v.Name); err != nil {
			return err
		}
		if err := setAmount(xlsx, sheet, cell(2, row), v.Value); err != nil {
			return err
		}
	}
	row++
	if err := xlsx.SetCellValue(sheet, cell(1, row), "Total"); err != nil {
		return err
	}
	if err := setAmount(xlsx, sheet, cell(2, row), total); err != nil {
		return err
	}
	style, err := xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), amountFormat(), thickBorder("top")))
	if err != nil {
		return err
	}
	if err := xlsx.SetCellStyle(sheet, cell(1, row), cell(2, row), style); err != nil {
		return err
	}
	return xlsx.SetColWidth(sheet, "A", "B", 24)
}

func xlsxHeader(xlsx *excelize.File, sheet string, row int, titles []string) error {
	for i, title := range titles {
		if err := xlsx.SetCellValue(sheet, cell(i+1, row), title); err != nil {
			return err
		}
	}
	style, err := xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), thinBorder("bottom")))
	if err != nil {
		return err
	}
	return xlsx.SetCellStyle(sheet, cell(1, row), cell(len(titles), row), style)
}

// setAmount stores value as a number so spreadsheet formulas work on it.
func setAmount(xlsx *excelize.File, sheet, axis string, value decimal.Decimal) error {
	if err := xlsx.SetCellValue(sheet, axis, value.InexactFloat64()); err != nil {
		return err
	}
	style, err := xlsx.NewStyle(mergeStyles(defaultStyle(), amountFormat()))
	if err != nil {
		return err
	}
	return xlsx.SetCellStyle(sheet, axis, axis, style)
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
