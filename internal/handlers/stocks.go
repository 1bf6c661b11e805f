package handlers

import (
	"net/http"
	"strings"

	"github.com/bayurmdn/garuda-saham-insight/internal/common"
	"github.com/bayurmdn/garuda-saham-insight/internal/interfaces"
	"github.com/bayurmdn/garuda-saham-insight/internal/models"
	"github.com/bayurmdn/garuda-saham-insight/internal/screener"
)

// StocksHandler serves the screening endpoints.
type StocksHandler struct {
	service interfaces.StockService
	logger  *common.Logger
}

// NewStocksHandler creates a new stocks handler.
func NewStocksHandler(service interfaces.StockService, logger *common.Logger) *StocksHandler {
	return &StocksHandler{service: service, logger: logger}
}

// StockRow is one screened stock enriched with scores, categories and
// display strings for table rendering.
type StockRow struct {
	models.Stock

	FundamentalScore    int                    `json:"fundamental_score"`
	ValuationScore      int                    `json:"valuation_score"`
	FundamentalCategory screener.ScoreCategory `json:"fundamental_category"`
	ValuationCategory   screener.ScoreCategory `json:"valuation_category"`

	PriceDisplay     string `json:"price_display"`
	ChangeDisplay    string `json:"change_display"`
	MarketCapDisplay string `json:"market_cap_display"`
	RevenueDisplay   string `json:"revenue_display"`
}

// buildRow derives the scored row for one stock.
func buildRow(s models.Stock) StockRow {
	fundamental := screener.FundamentalScore(&s)
	valuation := screener.ValuationScore(&s)
	marketCap := s.MarketCap
	return StockRow{
		Stock:               s,
		FundamentalScore:    fundamental,
		ValuationScore:      valuation,
		FundamentalCategory: screener.Categorize(fundamental),
		ValuationCategory:   screener.Categorize(valuation),
		PriceDisplay:        screener.FormatPrice(s.Price),
		ChangeDisplay:       screener.FormatPercentage(&s.Change),
		MarketCapDisplay:    screener.FormatNumber(&marketCap),
		RevenueDisplay:      screener.FormatNumber(s.Revenue),
	}
}

func buildRows(stocks []models.Stock) []StockRow {
	rows := make([]StockRow, len(stocks))
	for i, s := range stocks {
		rows[i] = buildRow(s)
	}
	return rows
}

// filterFromQuery maps screening query parameters onto a FilterState.
// A threshold that does not parse to a finite number errors, so the
// caller can reject the request instead of screening with a state the
// client never meant.
func filterFromQuery(r *http.Request) (models.FilterState, error) {
	f := models.FilterState{
		Search:          strings.TrimSpace(r.URL.Query().Get("search")),
		Sectors:         queryList(r, "sectors"),
		OnlyWatchlist:   queryBool(r, "watchlist_only"),
		OnlyUndervalued: queryBool(r, "undervalued_only"),
	}

	thresholds := []struct {
		name string
		dst  **float64
	}{
		{"min_roe", &f.MinROE},
		{"max_debt_to_equity", &f.MaxDebtToEquity},
		{"min_eps_growth", &f.MinEPSGrowth},
		{"max_pe", &f.MaxPE},
		{"max_pbv", &f.MaxPBV},
		{"min_dividend_yield", &f.MinDividendYield},
	}
	for _, th := range thresholds {
		v, err := queryFloat(r, th.name)
		if err != nil {
			return models.FilterState{}, err
		}
		*th.dst = v
	}

	return f, nil
}

// sortFromQuery maps sort query parameters onto a SortState. An unknown
// field yields the zero state, which leaves screen order untouched.
func sortFromQuery(r *http.Request) models.SortState {
	field := models.SortField(r.URL.Query().Get("sort_by"))
	if field == "" || !screener.ValidSortField(field) {
		return models.SortState{}
	}
	dir := models.SortAsc
	if r.URL.Query().Get("sort_dir") == string(models.SortDesc) {
		dir = models.SortDesc
	}
	return models.SortState{Field: field, Direction: dir}
}

// HandleList serves GET /api/stocks.
func (h *StocksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	sortState := sortFromQuery(r)

	stocks, err := h.service.Screen(r.Context(), filter, sortState)
	if err != nil {
		h.logger.Error().Str("error", err.Error()).Msg("failed to screen stocks")
		WriteError(w, http.StatusInternalServerError, "failed to screen stocks")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"stocks": buildRows(stocks),
		"count":  len(stocks),
	})
}

// HandleDetail serves GET /api/stocks/{id}.
func (h *StocksHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	id := pathSuffix(r, "/api/stocks")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "missing stock id")
		return
	}

	stock, err := h.service.Get(r.Context(), id)
	if err != nil {
		WriteError(w, http.StatusNotFound, "stock not found")
		return
	}

	row := buildRow(stock.Stock)
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"stock":      row,
		"history":    stock.History,
		"indicators": h.sectorIndicators(r, stock.Stock),
	})
}

// sectorIndicators classifies the stock's ROE and EPS growth against its
// sector averages for color coding. Absent on aggregate failure.
func (h *StocksHandler) sectorIndicators(r *http.Request, s models.Stock) map[string]string {
	stats, err := h.service.SectorOverview(r.Context())
	if err != nil {
		h.logger.Warn().Str("error", err.Error()).Msg("failed to load sector aggregates")
		return nil
	}

	for _, stat := range stats {
		if stat.Sector != s.Sector {
			continue
		}
		return map[string]string{
			"roe":        screener.ValueIndicator(s.ROE, stat.AvgROE, true),
			"eps_growth": screener.ValueIndicator(s.EPSGrowth, stat.AvgEPSGrowth, true),
		}
	}
	return nil
}
