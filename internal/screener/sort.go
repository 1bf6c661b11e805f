package screener

import (
	"sort"

	"github.com/bayurmdn/garuda-saham-insight/internal/models"
)

// fieldExtractor pulls a sortable value from a stock. ok is false when the
// field is unavailable for that stock (an absent optional metric).
type fieldExtractor func(s *models.Stock) (value interface{}, ok bool)

func floatField(get func(s *models.Stock) float64) fieldExtractor {
	return func(s *models.Stock) (interface{}, bool) {
		return get(s), true
	}
}

func optionalField(get func(s *models.Stock) *float64) fieldExtractor {
	return func(s *models.Stock) (interface{}, bool) {
		p := get(s)
		if p == nil {
			return nil, false
		}
		return *p, true
	}
}

func stringField(get func(s *models.Stock) string) fieldExtractor {
	return func(s *models.Stock) (interface{}, bool) {
		return get(s), true
	}
}

var sortFields = map[models.SortField]fieldExtractor{
	models.SortByID:        stringField(func(s *models.Stock) string { return s.ID }),
	models.SortByTicker:    stringField(func(s *models.Stock) string { return s.Ticker }),
	models.SortByName:      stringField(func(s *models.Stock) string { return s.Name }),
	models.SortBySector:    stringField(func(s *models.Stock) string { return s.Sector }),
	models.SortByPrice:     floatField(func(s *models.Stock) float64 { return s.Price }),
	models.SortByChange:    floatField(func(s *models.Stock) float64 { return s.Change }),
	models.SortByMarketCap: floatField(func(s *models.Stock) float64 { return s.MarketCap }),

	models.SortByPE:            optionalField(func(s *models.Stock) *float64 { return s.PE }),
	models.SortByPBV:           optionalField(func(s *models.Stock) *float64 { return s.PBV }),
	models.SortByEPS:           optionalField(func(s *models.Stock) *float64 { return s.EPS }),
	models.SortByEPSGrowth:     optionalField(func(s *models.Stock) *float64 { return s.EPSGrowth }),
	models.SortByRevenue:       optionalField(func(s *models.Stock) *float64 { return s.Revenue }),
	models.SortByRevenueGrowth: optionalField(func(s *models.Stock) *float64 { return s.RevenueGrowth }),
	models.SortByROE:           optionalField(func(s *models.Stock) *float64 { return s.ROE }),
	models.SortByROA:           optionalField(func(s *models.Stock) *float64 { return s.ROA }),
	models.SortByDebtToEquity:  optionalField(func(s *models.Stock) *float64 { return s.DebtToEquity }),
	models.SortByDividendYield: optionalField(func(s *models.Stock) *float64 { return s.DividendYield }),
	models.SortByFairValue:     optionalField(func(s *models.Stock) *float64 { return s.FairValue }),

	models.SortByInWatchlist: func(s *models.Stock) (interface{}, bool) {
		if s.InWatchlist {
			return 1.0, true
		}
		return 0.0, true
	},
}

// ValidSortField reports whether field names a sortable stock attribute.
func ValidSortField(field models.SortField) bool {
	_, ok := sortFields[field]
	return ok
}

// Sort returns a new slice ordered by st. The sort is stable: ties keep their
// input order. Stocks missing the sort field always sort last — direction
// flips only the relative order of present values, never the null placement.
func Sort(stocks []models.Stock, st models.SortState) []models.Stock {
	out := append([]models.Stock(nil), stocks...)

	extract, ok := sortFields[st.Field]
	if !ok {
		return out
	}
	desc := st.Direction == models.SortDesc

	sort.SliceStable(out, func(i, j int) bool {
		av, aok := extract(&out[i])
		bv, bok := extract(&out[j])

		if !aok && !bok {
			return false
		}
		if !aok {
			return false // a's value absent: a sorts after b
		}
		if !bok {
			return true
		}

		c := compareValues(av, bv)
		if desc {
			return c > 0
		}
		return c < 0
	})

	return out
}

// compareValues orders two non-nil extracted values of the same field.
func compareValues(a, b interface{}) int {
	switch av := a.(type) {
	case string:
		bv := b.(string)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
	case float64:
		bv := b.(float64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
	}
	return 0
}
