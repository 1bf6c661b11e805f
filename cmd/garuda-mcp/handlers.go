package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bayurmdn/garuda-saham-insight/internal/models"
)

// --- Helpers ---

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// screenQuery builds the portal query string shared by screen_stocks and
// export_csv from the tool request.
func screenQuery(request mcp.CallToolRequest) string {
	q := url.Values{}

	setString := func(key string) {
		if v := request.GetString(key, ""); v != "" {
			q.Set(key, v)
		}
	}
	setFloat := func(key string) {
		if v := request.GetFloat(key, 0); v != 0 {
			q.Set(key, strconv.FormatFloat(v, 'f', -1, 64))
		}
	}
	setBool := func(key string) {
		if request.GetBool(key, false) {
			q.Set(key, "true")
		}
	}

	setString("search")
	setString("sectors")
	setFloat("min_roe")
	setFloat("max_debt_to_equity")
	setFloat("min_eps_growth")
	setFloat("max_pe")
	setFloat("max_pbv")
	setFloat("min_dividend_yield")
	setBool("watchlist_only")
	setBool("undervalued_only")
	setString("sort_by")
	setString("sort_dir")

	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// stockRow mirrors the portal's screened-stock JSON rows.
type stockRow struct {
	models.Stock

	FundamentalScore int `json:"fundamental_score"`
	ValuationScore   int `json:"valuation_score"`

	FundamentalCategory struct {
		Label string `json:"label"`
	} `json:"fundamental_category"`
	ValuationCategory struct {
		Label string `json:"label"`
	} `json:"valuation_category"`
}

type stockListResponse struct {
	Stocks []stockRow `json:"stocks"`
	Count  int        `json:"count"`
}

// --- Handlers ---

func handleGetVersion(p *PortalProxy) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		body, err := p.get("/api/version")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		var resp struct {
			Version   string `json:"version"`
			Build     string `json:"build"`
			GitCommit string `json:"git_commit"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		result := fmt.Sprintf("Garuda Portal\nVersion: %s\nBuild: %s\nCommit: %s\nStatus: OK",
			resp.Version, resp.Build, resp.GitCommit)
		return textResult(result), nil
	}
}

func handleScreenStocks(p *PortalProxy) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		body, err := p.get("/api/stocks" + screenQuery(request))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		var resp stockListResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		return textResult(formatStockTable("Stock Screen", resp.Stocks)), nil
	}
}

func handleGetStock(p *PortalProxy) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return errorResult("Error: id parameter is required"), nil
		}

		body, err := p.get("/api/stocks/" + url.PathEscape(id))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		var resp struct {
			Stock   stockRow                  `json:"stock"`
			History []models.FinancialHistory `json:"history"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		return textResult(formatStockDetail(resp.Stock, resp.History)), nil
	}
}

func handleGetWatchlist(p *PortalProxy) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		body, err := p.get("/api/watchlist")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		var resp stockListResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		if resp.Count == 0 {
			return textResult("The watchlist is empty."), nil
		}
		return textResult(formatStockTable("Watchlist", resp.Stocks)), nil
	}
}

func handleAddWatchlist(p *PortalProxy) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return errorResult("Error: id parameter is required"), nil
		}

		if _, err := p.put("/api/watchlist/" + url.PathEscape(id)); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		return textResult(fmt.Sprintf("Added %s to the watchlist.", id)), nil
	}
}

func handleRemoveWatchlist(p *PortalProxy) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return errorResult("Error: id parameter is required"), nil
		}

		if _, err := p.delete("/api/watchlist/" + url.PathEscape(id)); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		return textResult(fmt.Sprintf("Removed %s from the watchlist.", id)), nil
	}
}

func handleGetSectors(p *PortalProxy) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		body, err := p.get("/api/sectors")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		var resp struct {
			Sectors []models.SectorStat `json:"sectors"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		return textResult(formatSectorOverview(resp.Sectors)), nil
	}
}

func handleExportCSV(p *PortalProxy) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		body, err := p.get("/api/stocks/export" + screenQuery(request))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		return textResult(string(body)), nil
	}
}
