// Package models defines data structures for Garuda Saham Insight.
package models

// Stock holds one Indonesia-listed equity with its fundamental and valuation
// metrics. Every optional metric is a pointer: nil means "not available" and
// is never coerced to zero — scoring skips absent metrics, threshold filters
// fail closed on them.
type Stock struct {
	ID     string `json:"id" validate:"required"`
	Ticker string `json:"ticker" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Sector string `json:"sector" validate:"required"`

	Price     float64 `json:"price"`
	Change    float64 `json:"change"` // day change, percent
	MarketCap float64 `json:"market_cap"`

	PE            *float64 `json:"pe,omitempty"`
	PBV           *float64 `json:"pbv,omitempty"`
	EPS           *float64 `json:"eps,omitempty"`
	EPSGrowth     *float64 `json:"eps_growth,omitempty"`
	Revenue       *float64 `json:"revenue,omitempty"`
	RevenueGrowth *float64 `json:"revenue_growth,omitempty"`
	ROE           *float64 `json:"roe,omitempty"`
	ROA           *float64 `json:"roa,omitempty"`
	DebtToEquity  *float64 `json:"debt_to_equity,omitempty"`
	DividendYield *float64 `json:"dividend_yield,omitempty"`
	FairValue     *float64 `json:"fair_value,omitempty"`

	InWatchlist bool `json:"in_watchlist"`
}

// FinancialHistory is one reported (year, quarter) point for a stock,
// used by charting clients. Points are stored chronologically.
type FinancialHistory struct {
	Year         int     `json:"year"`
	Quarter      int     `json:"quarter"`
	EPS          float64 `json:"eps"`
	Revenue      float64 `json:"revenue"`
	ROE          float64 `json:"roe"`
	ROA          float64 `json:"roa"`
	DebtToEquity float64 `json:"debt_to_equity"`
}

// StockWithHistory combines a stock with its financial history for the
// detail endpoint.
type StockWithHistory struct {
	Stock
	History []FinancialHistory `json:"history"`
}

// Float returns a pointer to v. Convenience for building optional metrics.
func Float(v float64) *float64 {
	return &v
}
