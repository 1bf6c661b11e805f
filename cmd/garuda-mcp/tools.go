package main

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerTools registers all MCP tools on the server, wiring each to a handler
// that calls the portal REST API via the proxy.
func registerTools(s *server.MCPServer, p *PortalProxy) {
	s.AddTool(createGetVersionTool(), handleGetVersion(p))
	s.AddTool(createScreenStocksTool(), handleScreenStocks(p))
	s.AddTool(createGetStockTool(), handleGetStock(p))
	s.AddTool(createGetWatchlistTool(), handleGetWatchlist(p))
	s.AddTool(createAddWatchlistTool(), handleAddWatchlist(p))
	s.AddTool(createRemoveWatchlistTool(), handleRemoveWatchlist(p))
	s.AddTool(createGetSectorsTool(), handleGetSectors(p))
	s.AddTool(createExportCSVTool(), handleExportCSV(p))
}

func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the Garuda portal version and status. Use this to verify connectivity."),
	)
}

func createScreenStocksTool() mcp.Tool {
	return mcp.NewTool("screen_stocks",
		mcp.WithDescription("Screen Indonesia-listed stocks by fundamental and valuation criteria. Returns matching stocks with fundamental and valuation scores. All filters are optional; a stock missing a metric under an active threshold is excluded."),
		mcp.WithString("search", mcp.Description("Case-insensitive substring match on ticker or company name (e.g., 'bank', 'TLKM')")),
		mcp.WithString("sectors", mcp.Description("Comma-separated sector names (e.g., 'Financials,Technology')")),
		mcp.WithNumber("min_roe", mcp.Description("Minimum return on equity, percent")),
		mcp.WithNumber("max_debt_to_equity", mcp.Description("Maximum debt-to-equity ratio")),
		mcp.WithNumber("min_eps_growth", mcp.Description("Minimum EPS growth, percent")),
		mcp.WithNumber("max_pe", mcp.Description("Maximum price-to-earnings ratio")),
		mcp.WithNumber("max_pbv", mcp.Description("Maximum price-to-book ratio")),
		mcp.WithNumber("min_dividend_yield", mcp.Description("Minimum dividend yield, percent")),
		mcp.WithBoolean("watchlist_only", mcp.Description("Only stocks on the watchlist (default: false)")),
		mcp.WithBoolean("undervalued_only", mcp.Description("Only stocks trading below their fair value estimate (default: false)")),
		mcp.WithString("sort_by", mcp.Description("Sort field: ticker, name, sector, price, change, market_cap, pe, pbv, eps, eps_growth, revenue, revenue_growth, roe, roa, debt_to_equity, dividend_yield, fair_value")),
		mcp.WithString("sort_dir", mcp.Description("Sort direction: asc or desc (default: asc). Stocks missing the sort field always rank last.")),
	)
}

func createGetStockTool() mcp.Tool {
	return mcp.NewTool("get_stock",
		mcp.WithDescription("Get one stock with its full metrics, scores, and quarterly financial history."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Stock identifier (e.g., 'bbca')")),
	)
}

func createGetWatchlistTool() mcp.Tool {
	return mcp.NewTool("get_watchlist",
		mcp.WithDescription("List the stocks currently on the watchlist with their scores."),
	)
}

func createAddWatchlistTool() mcp.Tool {
	return mcp.NewTool("add_watchlist",
		mcp.WithDescription("Add a stock to the watchlist."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Stock identifier (e.g., 'bbca')")),
	)
}

func createRemoveWatchlistTool() mcp.Tool {
	return mcp.NewTool("remove_watchlist",
		mcp.WithDescription("Remove a stock from the watchlist."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Stock identifier (e.g., 'bbca')")),
	)
}

func createGetSectorsTool() mcp.Tool {
	return mcp.NewTool("get_sectors",
		mcp.WithDescription("Get the sector overview: average ROE, average EPS growth, and stock count per sector, ranked by average ROE."),
	)
}

func createExportCSVTool() mcp.Tool {
	return mcp.NewTool("export_csv",
		mcp.WithDescription("Export screened stocks as CSV. Accepts the same filter and sort parameters as screen_stocks and returns the raw CSV text."),
		mcp.WithString("search", mcp.Description("Case-insensitive substring match on ticker or company name")),
		mcp.WithString("sectors", mcp.Description("Comma-separated sector names")),
		mcp.WithNumber("min_roe", mcp.Description("Minimum return on equity, percent")),
		mcp.WithNumber("max_debt_to_equity", mcp.Description("Maximum debt-to-equity ratio")),
		mcp.WithNumber("min_eps_growth", mcp.Description("Minimum EPS growth, percent")),
		mcp.WithNumber("max_pe", mcp.Description("Maximum price-to-earnings ratio")),
		mcp.WithNumber("max_pbv", mcp.Description("Maximum price-to-book ratio")),
		mcp.WithNumber("min_dividend_yield", mcp.Description("Minimum dividend yield, percent")),
		mcp.WithBoolean("watchlist_only", mcp.Description("Only stocks on the watchlist (default: false)")),
		mcp.WithBoolean("undervalued_only", mcp.Description("Only stocks trading below their fair value estimate (default: false)")),
		mcp.WithString("sort_by", mcp.Description("Sort field, same values as screen_stocks")),
		mcp.WithString("sort_dir", mcp.Description("Sort direction: asc or desc (default: asc)")),
	)
}
