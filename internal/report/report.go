// Package report renders the dashboard as text for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/weverton790458597/DashBoard/internal/analytics"
	"github.com/weverton790458597/DashBoard/internal/service"
)

// Data is everything the summary shows.
type Data struct {
	Overview *service.Overview
	Expenses *service.ExpenseAnalysis
	Income   *service.IncomeAnalysis
}

// Styles is the set of lipgloss styles used by the summary.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Positive lipgloss.Style
	Negative lipgloss.Style
	Muted    lipgloss.Style
	Box      lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6")).MarginTop(1),
		Normal:   lipgloss.NewStyle(),
		Positive: lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
		Negative: lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7C3AED")).
			Padding(0, 1),
	}
}

// Renderer writes a Data summary.
type Renderer struct {
	money  *Money
	styles Styles
}

func NewRenderer(money *Money, styles Styles) *Renderer {
	return &Renderer{money: money, styles: styles}
}

// Render writes the summary of data to w.
func (r *Renderer) Render(w io.Writer, data Data) error {
	if data.Overview == nil {
		return fmt.Errorf("report: overview is required")
	}

	sections := []string{
		r.styles.Title.Render(fmt.Sprintf("FinanceFlow (%s)", data.Overview.Filter.DateRange)),
		r.renderNetWorth(data.Overview),
		r.renderMonthly(data.Overview.Monthly),
	}
	if data.Expenses != nil {
		sections = append(sections, r.renderDistribution("Expenses by category", data.Expenses.ByCategory, data.Expenses.Total))
	}
	if data.Income != nil {
		sections = append(sections, r.renderDistribution("Income by source", data.Income.BySource, data.Income.Total))
	}
	sections = append(sections, r.renderInvestments(data.Overview))

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, sections...))
	return err
}

func (r *Renderer) signed(value decimal.Decimal) string {
	text := r.money.Home(value)
	if value.IsNegative() {
		return r.styles.Negative.Render(text)
	}
	return r.styles.Positive.Render(text)
}

func (r *Renderer) renderNetWorth(o *service.Overview) string {
	lines := []string{
		fmt.Sprintf("%-16s %s", "Income:", r.money.Home(o.NetWorth.TotalIncome)),
		fmt.Sprintf("%-16s %s", "Expenses:", r.money.Home(o.NetWorth.TotalExpenses)),
		fmt.Sprintf("%-16s %s", "Bank balance:", r.signed(o.NetWorth.BankBalance)),
		fmt.Sprintf("%-16s %s", "Invested:", r.money.Home(o.NetWorth.InvestedTotal)),
		fmt.Sprintf("%-16s %s", "Net worth:", r.signed(o.NetWorth.NetWorth)),
	}
	return r.styles.Box.Render(strings.Join(lines, "\n"))
}

func (r *Renderer) renderMonthly(months []analytics.MonthlyTotals) string {
	title := r.styles.Subtitle.Render("Monthly")
	if len(months) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, r.styles.Muted.Render("no transactions"))
	}

	lines := make([]string, 0, len(months))
	for _, m := range months {
		lines = append(lines, fmt.Sprintf("%-7s in %s  out %s",
			m.Month, r.money.Home(m.Income), r.money.Home(m.Expense)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, r.styles.Normal.Render(strings.Join(lines, "\n")))
}

func (r *Renderer) renderDistribution(name string, values []analytics.NamedValue, total decimal.Decimal) string {
	title := r.styles.Subtitle.Render(name)
	if len(values) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, r.styles.Muted.Render("nothing in range"))
	}

	lines := make([]string, 0, len(values)+1)
	for _, v := range values {
		share := ""
		if total.IsPositive() {
			share = r.styles.Muted.Render(fmt.Sprintf(" (%s%%)", v.Value.Div(total).Mul(decimal.NewFromInt(100)).StringFixed(0)))
		}
		lines = append(lines, fmt.Sprintf("%-24s %s%s", v.Name, r.money.Home(v.Value), share))
	}
	lines = append(lines, fmt.Sprintf("%-24s %s", "Total", r.money.Home(total)))
	return lipgloss.JoinVertical(lipgloss.Left, title, r.styles.Normal.Render(strings.Join(lines, "\n")))
}

func (r *Renderer) renderInvestments(o *service.Overview) string {
	title := r.styles.Subtitle.Render(fmt.Sprintf("Investments (rate %s)", r.money.Rate(o.ExchangeRate)))
	if len(o.Investments) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, r.styles.Muted.Render("no accounts"))
	}

	lines := make([]string, 0, len(o.Investments))
	for _, inv := range o.Investments {
		lines = append(lines, fmt.Sprintf("%-16s %s = %s",
			inv.Name, r.money.Format(inv.Value, inv.Currency), r.money.Home(inv.HomeValue)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, r.styles.Normal.Render(strings.Join(lines, "\n")))
}
