package screener

import (
	"math"

	"github.com/bayurmdn/garuda-saham-insight/internal/models"
)

// Per-metric score weights. Each metric contributes a capped term; the final
// score is the average of the terms whose metric is present, so the weight
// table stays auditable in one place.
const (
	roeCap = 25

	epsGrowthWeight = 2
	epsGrowthCap    = 20

	revenueGrowthWeight = 1.5
	revenueGrowthCap    = 15

	debtToEquityBase   = 15
	debtToEquityWeight = 3

	roaWeight = 1.5
	roaCap    = 15

	dividendYieldWeight = 2
	dividendYieldCap    = 10

	peBase = 40

	pbvBase   = 30
	pbvWeight = 10

	fairValueUpsideCap = 30
)

// scoreTerm computes one metric's contribution to a composite score.
// ok is false when the metric is absent, in which case the stock is not
// penalized: the term is simply left out of the average.
type scoreTerm struct {
	metric string
	term   func(s *models.Stock) (value float64, ok bool)
}

var fundamentalTerms = []scoreTerm{
	{"roe", func(s *models.Stock) (float64, bool) {
		if s.ROE == nil {
			return 0, false
		}
		return math.Min(*s.ROE, roeCap), true
	}},
	{"eps_growth", func(s *models.Stock) (float64, bool) {
		if s.EPSGrowth == nil {
			return 0, false
		}
		return math.Min(*s.EPSGrowth*epsGrowthWeight, epsGrowthCap), true
	}},
	{"revenue_growth", func(s *models.Stock) (float64, bool) {
		if s.RevenueGrowth == nil {
			return 0, false
		}
		return math.Min(*s.RevenueGrowth*revenueGrowthWeight, revenueGrowthCap), true
	}},
	{"debt_to_equity", func(s *models.Stock) (float64, bool) {
		if s.DebtToEquity == nil {
			return 0, false
		}
		return math.Max(debtToEquityBase-*s.DebtToEquity*debtToEquityWeight, 0), true
	}},
	{"roa", func(s *models.Stock) (float64, bool) {
		if s.ROA == nil {
			return 0, false
		}
		return math.Min(*s.ROA*roaWeight, roaCap), true
	}},
	{"dividend_yield", func(s *models.Stock) (float64, bool) {
		if s.DividendYield == nil {
			return 0, false
		}
		return math.Min(*s.DividendYield*dividendYieldWeight, dividendYieldCap), true
	}},
}

var valuationTerms = []scoreTerm{
	{"pe", func(s *models.Stock) (float64, bool) {
		if s.PE == nil {
			return 0, false
		}
		return math.Max(peBase-*s.PE, 0), true
	}},
	{"pbv", func(s *models.Stock) (float64, bool) {
		if s.PBV == nil {
			return 0, false
		}
		return math.Max(pbvBase-*s.PBV*pbvWeight, 0), true
	}},
	{"fair_value", func(s *models.Stock) (float64, bool) {
		if s.FairValue == nil || s.Price == 0 {
			return 0, false
		}
		upside := (*s.FairValue - s.Price) / s.Price * 100
		return math.Min(math.Max(upside, 0), fairValueUpsideCap), true
	}},
}

// FundamentalScore rates profitability, growth, and balance-sheet quality.
// Averaging over present metrics only means a stock with a single strong
// metric can score as high as one with all six — a deliberate tolerance for
// sparse data, not a bug.
func FundamentalScore(s *models.Stock) int {
	return average(s, fundamentalTerms)
}

// ValuationScore rates cheapness: low P/E, low P/BV, and upside to fair value.
func ValuationScore(s *models.Stock) int {
	return average(s, valuationTerms)
}

func average(s *models.Stock, terms []scoreTerm) int {
	var sum float64
	var count int
	for _, t := range terms {
		if v, ok := t.term(s); ok {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return int(math.Round(sum / float64(count)))
}
