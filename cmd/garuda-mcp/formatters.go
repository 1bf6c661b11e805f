package main

import (
	"fmt"
	"strings"

	"github.com/bayurmdn/garuda-saham-insight/internal/models"
	"github.com/bayurmdn/garuda-saham-insight/internal/screener"
)

// formatStockTable formats screened stocks as a markdown table.
func formatStockTable(title string, rows []stockRow) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", title))
	sb.WriteString(fmt.Sprintf("**Results:** %d\n\n", len(rows)))

	if len(rows) == 0 {
		sb.WriteString("No stocks matched the criteria.\n")
		return sb.String()
	}

	sb.WriteString("| Ticker | Name | Sector | Price | Change | P/E | ROE | Fundamental | Valuation |\n")
	sb.WriteString("|--------|------|--------|-------|--------|-----|-----|-------------|-----------|\n")

	for _, r := range rows {
		change := r.Change
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s | %s | %d (%s) | %d (%s) |\n",
			r.Ticker,
			r.Name,
			r.Sector,
			screener.FormatPrice(r.Price),
			screener.FormatPercentage(&change),
			screener.FormatNumber(r.PE),
			screener.FormatNumber(r.ROE),
			r.FundamentalScore, r.FundamentalCategory.Label,
			r.ValuationScore, r.ValuationCategory.Label,
		))
	}

	return sb.String()
}

// formatStockDetail formats one stock with metrics and history as markdown.
func formatStockDetail(r stockRow, history []models.FinancialHistory) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s — %s\n\n", r.Ticker, r.Name))
	sb.WriteString(fmt.Sprintf("**Sector:** %s\n", r.Sector))
	change := r.Change
	marketCap := r.MarketCap
	sb.WriteString(fmt.Sprintf("**Price:** %s (%s)\n", screener.FormatPrice(r.Price), screener.FormatPercentage(&change)))
	sb.WriteString(fmt.Sprintf("**Market Cap:** %s\n", screener.FormatNumber(&marketCap)))
	sb.WriteString(fmt.Sprintf("**Fundamental Score:** %d (%s)\n", r.FundamentalScore, r.FundamentalCategory.Label))
	sb.WriteString(fmt.Sprintf("**Valuation Score:** %d (%s)\n\n", r.ValuationScore, r.ValuationCategory.Label))

	sb.WriteString("## Metrics\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| P/E | %s |\n", screener.FormatNumber(r.PE)))
	sb.WriteString(fmt.Sprintf("| P/BV | %s |\n", screener.FormatNumber(r.PBV)))
	sb.WriteString(fmt.Sprintf("| EPS | %s |\n", screener.FormatNumber(r.EPS)))
	sb.WriteString(fmt.Sprintf("| EPS Growth | %s |\n", formatOptionalPct(r.EPSGrowth)))
	sb.WriteString(fmt.Sprintf("| Revenue | %s |\n", screener.FormatNumber(r.Revenue)))
	sb.WriteString(fmt.Sprintf("| Revenue Growth | %s |\n", formatOptionalPct(r.RevenueGrowth)))
	sb.WriteString(fmt.Sprintf("| ROE | %s |\n", formatOptionalPct(r.ROE)))
	sb.WriteString(fmt.Sprintf("| ROA | %s |\n", formatOptionalPct(r.ROA)))
	sb.WriteString(fmt.Sprintf("| D/E Ratio | %s |\n", screener.FormatNumber(r.DebtToEquity)))
	sb.WriteString(fmt.Sprintf("| Dividend Yield | %s |\n", formatOptionalPct(r.DividendYield)))
	sb.WriteString(fmt.Sprintf("| Fair Value | %s |\n", screener.FormatNumber(r.FairValue)))

	if len(history) > 0 {
		sb.WriteString("\n## Financial History\n\n")
		sb.WriteString("| Period | EPS | Revenue | ROE | ROA | D/E |\n")
		sb.WriteString("|--------|-----|---------|-----|-----|-----|\n")
		for _, h := range history {
			revenue := h.Revenue
			sb.WriteString(fmt.Sprintf("| %d Q%d | %.2f | %s | %.1f%% | %.1f%% | %.2f |\n",
				h.Year, h.Quarter, h.EPS, screener.FormatNumber(&revenue), h.ROE, h.ROA, h.DebtToEquity))
		}
	}

	if r.InWatchlist {
		sb.WriteString("\n_On watchlist._\n")
	}

	return sb.String()
}

// formatSectorOverview formats sector aggregates as markdown.
func formatSectorOverview(stats []models.SectorStat) string {
	var sb strings.Builder

	sb.WriteString("# Sector Overview\n\n")

	if len(stats) == 0 {
		sb.WriteString("No sector data available.\n")
		return sb.String()
	}

	sb.WriteString("| Sector | Avg ROE | Avg EPS Growth | Stocks |\n")
	sb.WriteString("|--------|---------|----------------|--------|\n")
	for _, s := range stats {
		sb.WriteString(fmt.Sprintf("| %s | %.1f%% | %.1f%% | %d |\n",
			s.Sector, s.AvgROE, s.AvgEPSGrowth, s.StockCount))
	}

	return sb.String()
}

// formatOptionalPct renders an optional percentage metric.
func formatOptionalPct(v *float64) string {
	if v == nil {
		return screener.NotAvailable
	}
	return screener.FormatPercentage(v)
}
