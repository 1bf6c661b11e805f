package screener

import (
	"testing"

	"github.com/bayurmdn/garuda-saham-insight/internal/models"
)

func TestFundamentalScore_SingleMetricAtCap(t *testing.T) {
	// With only ROE defined at its cap, the average is the capped term itself.
	s := &models.Stock{ROE: models.Float(25)}
	if got := FundamentalScore(s); got != 25 {
		t.Errorf("FundamentalScore = %d, want 25", got)
	}

	// ROE above the cap still contributes only the cap.
	s = &models.Stock{ROE: models.Float(40)}
	if got := FundamentalScore(s); got != 25 {
		t.Errorf("FundamentalScore with roe=40 = %d, want 25", got)
	}
}

func TestFundamentalScore_NoMetrics(t *testing.T) {
	s := &models.Stock{Ticker: "EMPT"}
	if got := FundamentalScore(s); got != 0 {
		t.Errorf("FundamentalScore with no metrics = %d, want 0", got)
	}
}

func TestFundamentalScore_AveragesPresentMetricsOnly(t *testing.T) {
	// roe term = 20, eps growth term = min(5*2, 20) = 10; average = 15.
	s := &models.Stock{
		ROE:       models.Float(20),
		EPSGrowth: models.Float(5),
	}
	if got := FundamentalScore(s); got != 15 {
		t.Errorf("FundamentalScore = %d, want 15", got)
	}
}

func TestFundamentalScore_DebtToEquityInverted(t *testing.T) {
	// term = max(15 - 2*3, 0) = 9
	s := &models.Stock{DebtToEquity: models.Float(2)}
	if got := FundamentalScore(s); got != 9 {
		t.Errorf("FundamentalScore = %d, want 9", got)
	}

	// Heavy leverage bottoms out at zero, it never goes negative.
	s = &models.Stock{DebtToEquity: models.Float(10)}
	if got := FundamentalScore(s); got != 0 {
		t.Errorf("FundamentalScore with d/e=10 = %d, want 0", got)
	}
}

func TestValuationScore_PETerm(t *testing.T) {
	// term = max(40 - 12, 0) = 28
	s := &models.Stock{PE: models.Float(12)}
	if got := ValuationScore(s); got != 28 {
		t.Errorf("ValuationScore = %d, want 28", got)
	}

	// P/E of 50 scores zero, not negative.
	s = &models.Stock{PE: models.Float(50)}
	if got := ValuationScore(s); got != 0 {
		t.Errorf("ValuationScore with pe=50 = %d, want 0", got)
	}
}

func TestValuationScore_FairValueUpside(t *testing.T) {
	// 50% upside clamps to the 30-point cap.
	s := &models.Stock{Price: 100, FairValue: models.Float(150)}
	if got := ValuationScore(s); got != 30 {
		t.Errorf("ValuationScore with 50%% upside = %d, want 30", got)
	}

	// 10% upside contributes 10 points.
	s = &models.Stock{Price: 100, FairValue: models.Float(110)}
	if got := ValuationScore(s); got != 10 {
		t.Errorf("ValuationScore with 10%% upside = %d, want 10", got)
	}

	// Overvalued: negative upside clamps to zero.
	s = &models.Stock{Price: 200, FairValue: models.Float(150)}
	if got := ValuationScore(s); got != 0 {
		t.Errorf("ValuationScore when overvalued = %d, want 0", got)
	}
}

func TestValuationScore_FairValueRequiresPrice(t *testing.T) {
	// A zero price would divide by zero; the term must be skipped instead.
	s := &models.Stock{Price: 0, FairValue: models.Float(150)}
	if got := ValuationScore(s); got != 0 {
		t.Errorf("ValuationScore with no price = %d, want 0", got)
	}
}

func TestValuationScore_Average(t *testing.T) {
	// pe term = 30, pbv term = max(30-1.5*10, 0) = 15; average = round(22.5) = 23.
	s := &models.Stock{
		PE:  models.Float(10),
		PBV: models.Float(1.5),
	}
	if got := ValuationScore(s); got != 23 {
		t.Errorf("ValuationScore = %d, want 23", got)
	}
}

func TestScores_DoNotMutateInput(t *testing.T) {
	roe := 20.0
	s := &models.Stock{ROE: &roe, PE: models.Float(10), Price: 100}
	FundamentalScore(s)
	ValuationScore(s)
	if roe != 20.0 || *s.ROE != 20.0 {
		t.Error("score calculation mutated input stock")
	}
}
