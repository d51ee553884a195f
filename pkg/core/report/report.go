// Package report renders calculated farm models as Markdown summaries.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"farmmate/pkg/core/engine"
)

// AnnualSummary renders the annual statements and headline KPIs as a
// Markdown document. The model must have been calculated.
func AnnualSummary(m *engine.FarmModel) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s — Financial Projection\n\n", m.General.FarmName)
	fmt.Fprintf(&b, "%d months from %s, FY ending month %d.\n\n",
		m.General.NumMonths, m.General.StartDate.Format("Jan 2006"), m.General.FYEndMonth)

	b.WriteString("## Key Indicators (latest FY)\n\n")
	b.WriteString("| Indicator | Value |\n|---|---|\n")
	kpis := m.KPIs()
	for _, key := range sortedKeys(kpis) {
		fmt.Fprintf(&b, "| %s | %s |\n", kpiLabel(key), formatAmount(key, kpis[key]))
	}
	b.WriteString("\n")

	b.WriteString("## Annual Profit & Loss\n\n")
	b.WriteString("| FY | Income | Direct Costs | EBITDA | Depreciation | EBIT | Net Profit |\n")
	b.WriteString("|---|---|---|---|---|---|---|\n")
	for _, row := range m.AnnualPL {
		fmt.Fprintf(&b, "| FY%d | %.0f | %.0f | %.0f | %.0f | %.0f | %.0f |\n",
			row.FY, row.TotalIncome, row.TotalDirectCosts, row.EBITDA,
			row.Depreciation, row.EBIT, row.NetProfit)
	}
	b.WriteString("\n")

	b.WriteString("## Annual Cash Flow\n\n")
	b.WriteString("| FY | Operating | Investing | Financing | Net | Closing Cash |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, row := range m.AnnualCF {
		fmt.Fprintf(&b, "| FY%d | %.0f | %.0f | %.0f | %.0f | %.0f |\n",
			row.FY, row.OperatingCF, row.InvestingCF, row.FinancingCF,
			row.NetCashFlow, row.ClosingCash)
	}
	b.WriteString("\n")

	b.WriteString("## Year-End Balance Sheet\n\n")
	b.WriteString("| FY | Total Assets | Total Liabilities | Equity | Check |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, row := range m.AnnualBS {
		fmt.Fprintf(&b, "| FY%d | %.0f | %.0f | %.0f | %.2f |\n",
			row.FY, row.TotalAssets, row.TotalLiabilities, row.TotalEquity, row.BalanceCheck)
	}

	if len(m.StockRecon) > 0 {
		b.WriteString("\n## Stock Reconciliation\n")
		for _, name := range sortedReconNames(m) {
			fmt.Fprintf(&b, "\n### %s\n\n", name)
			b.WriteString("| Month | Opening | Purchases | Births | Deaths | Sales | Closing |\n")
			b.WriteString("|---|---|---|---|---|---|---|\n")
			for _, row := range m.StockRecon[name] {
				fmt.Fprintf(&b, "| %d | %d | %d | %d | %d | %d | %d |\n",
					row.Month, row.Opening, row.Purchases, row.Births,
					row.Deaths, row.Sales, row.Closing)
			}
		}
	}

	return b.String()
}

// Validate checks that the rendered report parses as Markdown.
func Validate(markdown string) bool {
	parser := goldmark.DefaultParser()
	doc := parser.Parse(text.NewReader([]byte(markdown)))
	return doc != nil
}

// RenderHTML converts the Markdown report to HTML with table support.
func RenderHTML(markdown string) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.String(), nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedReconNames(m *engine.FarmModel) []string {
	names := make([]string, 0, len(m.StockRecon))
	for name := range m.StockRecon {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func kpiLabel(key string) string {
	switch key {
	case "ebitda":
		return "EBITDA"
	case "net_profit":
		return "Net Profit"
	case "closing_cash":
		return "Closing Cash"
	case "total_debt":
		return "Total Debt"
	case "net_assets":
		return "Net Assets"
	case "roa":
		return "Return on Assets"
	default:
		return key
	}
}

func formatAmount(key string, value float64) string {
	if key == "roa" {
		return fmt.Sprintf("%.1f%%", value)
	}
	return fmt.Sprintf("$%.0f", value)
}
