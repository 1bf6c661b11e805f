package screener

import (
	"strings"

	"github.com/bayurmdn/garuda-saham-insight/internal/models"
)

// Filter returns the stocks matching every active condition in f, preserving
// input order. Threshold conditions fail closed: a stock missing the metric
// under an active min/max filter is excluded as unknown. This is the opposite
// of the scoring policy, which skips absent metrics — the two are intentionally
// different and must stay that way.
func Filter(stocks []models.Stock, f models.FilterState) []models.Stock {
	out := make([]models.Stock, 0, len(stocks))
	for _, s := range stocks {
		if matches(&s, &f) {
			out = append(out, s)
		}
	}
	return out
}

func matches(s *models.Stock, f *models.FilterState) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(s.Ticker), q) &&
			!strings.Contains(strings.ToLower(s.Name), q) {
			return false
		}
	}

	if len(f.Sectors) > 0 && !containsString(f.Sectors, s.Sector) {
		return false
	}

	if f.MinROE != nil && (s.ROE == nil || *s.ROE < *f.MinROE) {
		return false
	}
	if f.MaxDebtToEquity != nil && (s.DebtToEquity == nil || *s.DebtToEquity > *f.MaxDebtToEquity) {
		return false
	}
	if f.MinEPSGrowth != nil && (s.EPSGrowth == nil || *s.EPSGrowth < *f.MinEPSGrowth) {
		return false
	}
	if f.MaxPE != nil && (s.PE == nil || *s.PE > *f.MaxPE) {
		return false
	}
	if f.MaxPBV != nil && (s.PBV == nil || *s.PBV > *f.MaxPBV) {
		return false
	}
	if f.MinDividendYield != nil && (s.DividendYield == nil || *s.DividendYield < *f.MinDividendYield) {
		return false
	}

	if f.OnlyWatchlist && !s.InWatchlist {
		return false
	}
	if f.OnlyUndervalued && (s.FairValue == nil || s.Price >= *s.FairValue) {
		return false
	}

	return true
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
