package models

// Sectors is the fixed IDX industrial classification sector set. Stocks carry
// exactly one of these names.
var Sectors = []string{
	"Basic Materials",
	"Consumer Cyclicals",
	"Consumer Non-Cyclicals",
	"Energy",
	"Financials",
	"Healthcare",
	"Industrials",
	"Infrastructures",
	"Properties & Real Estate",
	"Technology",
	"Transportation & Logistics",
}

// ValidSector returns true if name is a member of the fixed sector set.
func ValidSector(name string) bool {
	for _, s := range Sectors {
		if s == name {
			return true
		}
	}
	return false
}

// SectorStat is a per-sector aggregate for the sector overview.
// Averages treat absent metrics as zero, matching the dashboard display.
type SectorStat struct {
	Sector       string  `json:"sector"`
	AvgROE       float64 `json:"avg_roe"`
	AvgEPSGrowth float64 `json:"avg_eps_growth"`
	StockCount   int     `json:"stock_count"`
}
