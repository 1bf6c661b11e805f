package screener

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bayurmdn/garuda-saham-insight/internal/models"
)

// csvHeader is the fixed export column order.
var csvHeader = []string{
	"Ticker", "Name", "Sector", "Price", "Change (%)",
	"P/E", "P/BV", "EPS", "EPS Growth (%)",
	"ROE (%)", "ROA (%)", "D/E Ratio",
	"Dividend Yield (%)", "Fair Value",
}

// WriteCSV writes stocks as CSV in the fixed column order. Company names are
// always double-quoted (they can contain commas); absent optional metrics
// become empty fields.
func WriteCSV(w io.Writer, stocks []models.Stock) error {
	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))
	b.WriteString("\n")

	for _, s := range stocks {
		row := []string{
			s.Ticker,
			`"` + strings.ReplaceAll(s.Name, `"`, `""`) + `"`,
			s.Sector,
			csvFloat(s.Price),
			csvFloat(s.Change),
			csvOptional(s.PE),
			csvOptional(s.PBV),
			csvOptional(s.EPS),
			csvOptional(s.EPSGrowth),
			csvOptional(s.ROE),
			csvOptional(s.ROA),
			csvOptional(s.DebtToEquity),
			csvOptional(s.DividendYield),
			csvOptional(s.FairValue),
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// ExportFilename returns the download filename for an export taken at t,
// e.g. "stock_analysis_2026-09-01.csv".
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("stock_analysis_%s.csv", t.Format("2006-01-02"))
}

func csvFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func csvOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return csvFloat(*v)
}
