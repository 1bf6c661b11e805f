package screener

// Severity levels consumed by presentation for color coding.
const (
	SeveritySuccess = "success"
	SeverityWarning = "warning"
	SeverityDanger  = "danger"
	SeverityNeutral = "neutral"
)

// ScoreCategory is the display bucket for a composite score.
type ScoreCategory struct {
	Label    string `json:"label"`
	Severity string `json:"severity"`
}

// Categorize buckets a score. Thresholds are inclusive lower bounds checked
// highest-first: 80 is "Excellent", 79 is "Good".
func Categorize(score int) ScoreCategory {
	switch {
	case score >= 80:
		return ScoreCategory{Label: "Excellent", Severity: SeveritySuccess}
	case score >= 60:
		return ScoreCategory{Label: "Good", Severity: SeveritySuccess}
	case score >= 40:
		return ScoreCategory{Label: "Fair", Severity: SeverityWarning}
	case score >= 20:
		return ScoreCategory{Label: "Poor", Severity: SeverityWarning}
	default:
		return ScoreCategory{Label: "Very Poor", Severity: SeverityDanger}
	}
}

// ValueIndicator classifies a metric against a benchmark for color coding.
// A 20% margin above (or below, for lower-is-better metrics) the benchmark
// earns success; meeting it earns warning; missing it, danger. Absent values
// are neutral.
func ValueIndicator(value *float64, benchmark float64, higherIsBetter bool) string {
	if value == nil {
		return SeverityNeutral
	}
	v := *value
	if higherIsBetter {
		switch {
		case v >= benchmark*1.2:
			return SeveritySuccess
		case v >= benchmark:
			return SeverityWarning
		default:
			return SeverityDanger
		}
	}
	switch {
	case v <= benchmark*0.8:
		return SeveritySuccess
	case v <= benchmark:
		return SeverityWarning
	default:
		return SeverityDanger
	}
}
