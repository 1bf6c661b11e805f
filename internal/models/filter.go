package models

// FilterState holds one screening configuration. The zero value applies no
// restriction. Threshold pointers follow the same convention as Stock metrics:
// nil means the threshold is unset. Instances are value objects — handlers
// build a fresh FilterState per request and the screener never mutates one.
type FilterState struct {
	Search  string   `json:"search"`
	Sectors []string `json:"sectors"`

	MinROE           *float64 `json:"min_roe,omitempty"`
	MaxDebtToEquity  *float64 `json:"max_debt_to_equity,omitempty"`
	MinEPSGrowth     *float64 `json:"min_eps_growth,omitempty"`
	MaxPE            *float64 `json:"max_pe,omitempty"`
	MaxPBV           *float64 `json:"max_pbv,omitempty"`
	MinDividendYield *float64 `json:"min_dividend_yield,omitempty"`

	OnlyWatchlist   bool `json:"only_watchlist"`
	OnlyUndervalued bool `json:"only_undervalued"`
}

// SortDirection is the sort order for a screen.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortState selects the field and direction for ordering screen results.
type SortState struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// Toggle returns the sort state after selecting field: reselecting the
// current field flips direction, a new field resets to ascending.
func (s SortState) Toggle(field SortField) SortState {
	if s.Field == field {
		if s.Direction == SortAsc {
			return SortState{Field: field, Direction: SortDesc}
		}
		return SortState{Field: field, Direction: SortAsc}
	}
	return SortState{Field: field, Direction: SortAsc}
}

// SortField names a sortable Stock attribute.
type SortField string

const (
	SortByID            SortField = "id"
	SortByTicker        SortField = "ticker"
	SortByName          SortField = "name"
	SortBySector        SortField = "sector"
	SortByPrice         SortField = "price"
	SortByChange        SortField = "change"
	SortByMarketCap     SortField = "market_cap"
	SortByPE            SortField = "pe"
	SortByPBV           SortField = "pbv"
	SortByEPS           SortField = "eps"
	SortByEPSGrowth     SortField = "eps_growth"
	SortByRevenue       SortField = "revenue"
	SortByRevenueGrowth SortField = "revenue_growth"
	SortByROE           SortField = "roe"
	SortByROA           SortField = "roa"
	SortByDebtToEquity  SortField = "debt_to_equity"
	SortByDividendYield SortField = "dividend_yield"
	SortByFairValue     SortField = "fair_value"
	SortByInWatchlist   SortField = "in_watchlist"
)
