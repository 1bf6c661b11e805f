package main

import (
	"strings"
	"testing"

	"github.com/bayurmdn/garuda-saham-insight/internal/models"
)

func sampleRow() stockRow {
	row := stockRow{
		Stock: models.Stock{
			ID:        "bbca",
			Ticker:    "BBCA",
			Name:      "Bank Central Asia",
			Sector:    "Financials",
			Price:     9800,
			Change:    1.25,
			MarketCap: 1.2e15,
			PE:        models.Float(22.5),
			PBV:       models.Float(4.8),
			EPS:       models.Float(435.5),
			ROE:       models.Float(21.3),
			FairValue: models.Float(11000),
		},
		FundamentalScore: 85,
		ValuationScore:   40,
	}
	row.FundamentalCategory.Label = "Excellent"
	row.ValuationCategory.Label = "Fair"
	return row
}

func TestFormatStockTable(t *testing.T) {
	output := formatStockTable("Stock Screen", []stockRow{sampleRow()})

	if !strings.Contains(output, "# Stock Screen") {
		t.Error("Output missing title")
	}
	if !strings.Contains(output, "**Results:** 1") {
		t.Error("Output missing result count")
	}
	if !strings.Contains(output, "| Ticker | Name | Sector | Price | Change | P/E | ROE | Fundamental | Valuation |") {
		t.Error("Output missing table header")
	}
	if !strings.Contains(output, "| BBCA | Bank Central Asia | Financials |") {
		t.Error("Output missing identity columns")
	}
	if !strings.Contains(output, "| 9.800 |") {
		t.Error("Price should use dot-grouped formatting")
	}
	if !strings.Contains(output, "| +1.25% |") {
		t.Error("Change should be a signed percentage")
	}
	if !strings.Contains(output, "| 85 (Excellent) |") {
		t.Error("Output missing fundamental score cell")
	}
	if !strings.Contains(output, "| 40 (Fair) |") {
		t.Error("Output missing valuation score cell")
	}
}

func TestFormatStockTable_Empty(t *testing.T) {
	output := formatStockTable("Watchlist", nil)

	if !strings.Contains(output, "No stocks matched the criteria.") {
		t.Error("Empty table should say no stocks matched")
	}
	if strings.Contains(output, "| Ticker |") {
		t.Error("Empty table should not render a header row")
	}
}

func TestFormatStockDetail(t *testing.T) {
	row := sampleRow()
	row.InWatchlist = true
	history := []models.FinancialHistory{
		{Year: 2025, Quarter: 1, EPS: 138.2, Revenue: 2.4e13, ROE: 20.9, ROA: 3.1, DebtToEquity: 0.87},
		{Year: 2025, Quarter: 2, EPS: 142.5, Revenue: 2.5e13, ROE: 21.3, ROA: 3.2, DebtToEquity: 0.85},
	}

	output := formatStockDetail(row, history)

	if !strings.Contains(output, "# BBCA — Bank Central Asia") {
		t.Error("Output missing title")
	}
	if !strings.Contains(output, "**Price:** 9.800 (+1.25%)") {
		t.Error("Output missing formatted price line")
	}
	if !strings.Contains(output, "| P/E | 22.50 |") {
		t.Error("Output missing P/E metric row")
	}
	if !strings.Contains(output, "| ROE | +21.30% |") {
		t.Error("ROE should render as a signed percentage")
	}
	if !strings.Contains(output, "| ROA | N/A |") {
		t.Error("Absent metrics should render as N/A")
	}
	if !strings.Contains(output, "## Financial History") {
		t.Error("Output missing history section")
	}
	if !strings.Contains(output, "| 2025 Q2 | 142.50 |") {
		t.Error("Output missing history row")
	}
	if !strings.Contains(output, "_On watchlist._") {
		t.Error("Output missing watchlist footer")
	}
}

func TestFormatStockDetail_NoHistoryNoWatchlist(t *testing.T) {
	output := formatStockDetail(sampleRow(), nil)

	if strings.Contains(output, "## Financial History") {
		t.Error("History section should be omitted without history points")
	}
	if strings.Contains(output, "_On watchlist._") {
		t.Error("Watchlist footer should be omitted")
	}
}

func TestFormatSectorOverview(t *testing.T) {
	stats := []models.SectorStat{
		{Sector: "Financials", AvgROE: 18.5, AvgEPSGrowth: 9.2, StockCount: 12},
		{Sector: "Energy", AvgROE: 11.0, AvgEPSGrowth: -2.4, StockCount: 8},
	}

	output := formatSectorOverview(stats)

	if !strings.Contains(output, "# Sector Overview") {
		t.Error("Output missing title")
	}
	if !strings.Contains(output, "| Financials | 18.5% | 9.2% | 12 |") {
		t.Error("Output missing Financials row")
	}
	if !strings.Contains(output, "| Energy | 11.0% | -2.4% | 8 |") {
		t.Error("Output missing Energy row")
	}
}

func TestFormatSectorOverview_Empty(t *testing.T) {
	output := formatSectorOverview(nil)

	if !strings.Contains(output, "No sector data available.") {
		t.Error("Empty overview should report no data")
	}
}
