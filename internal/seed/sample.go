package seed

import "github.com/bayurmdn/garuda-saham-insight/internal/models"

// SampleStocks returns the built-in set of IDX large caps used for dev
// seeding. Figures are indicative, not live market data.
func SampleStocks() []models.Stock {
	f := models.Float
	return []models.Stock{
		{
			ID: "bbca", Ticker: "BBCA", Name: "Bank Central Asia Tbk", Sector: "Financials",
			Price: 9875, Change: 0.77, MarketCap: 1.21e15,
			PE: f(23.4), PBV: f(4.8), EPS: f(421), EPSGrowth: f(12.5),
			Revenue: f(1.05e14), RevenueGrowth: f(8.2), ROE: f(21.3), ROA: f(3.4),
			DebtToEquity: f(0.1), DividendYield: f(2.1), FairValue: f(10800),
		},
		{
			ID: "bbri", Ticker: "BBRI", Name: "Bank Rakyat Indonesia Tbk", Sector: "Financials",
			Price: 4520, Change: -1.1, MarketCap: 6.85e14,
			PE: f(11.2), PBV: f(2.2), EPS: f(403), EPSGrowth: f(9.8),
			Revenue: f(1.78e14), RevenueGrowth: f(6.9), ROE: f(19.6), ROA: f(2.9),
			DebtToEquity: f(0.2), DividendYield: f(5.4), FairValue: f(5100),
		},
		{
			ID: "tlkm", Ticker: "TLKM", Name: "Telkom Indonesia Tbk", Sector: "Infrastructures",
			Price: 3100, Change: 0.32, MarketCap: 3.07e14,
			PE: f(12.8), PBV: f(2.1), EPS: f(242), EPSGrowth: f(4.1),
			Revenue: f(1.49e14), RevenueGrowth: f(2.3), ROE: f(16.8), ROA: f(8.5),
			DebtToEquity: f(0.4), DividendYield: f(5.6), FairValue: f(3650),
		},
		{
			ID: "asii", Ticker: "ASII", Name: "Astra International Tbk", Sector: "Industrials",
			Price: 5150, Change: 1.48, MarketCap: 2.08e14,
			PE: f(6.5), PBV: f(1.0), EPS: f(792), EPSGrowth: f(-3.2),
			Revenue: f(3.16e14), RevenueGrowth: f(-1.5), ROE: f(15.2), ROA: f(7.1),
			DebtToEquity: f(0.4), DividendYield: f(8.9), FairValue: f(6200),
		},
		{
			ID: "unvr", Ticker: "UNVR", Name: "Unilever Indonesia Tbk", Sector: "Consumer Non-Cyclicals",
			Price: 2480, Change: -0.8, MarketCap: 9.46e13,
			PE: f(19.7), PBV: f(21.5), EPS: f(126), EPSGrowth: f(-10.4),
			Revenue: f(3.84e13), RevenueGrowth: f(-6.3), ROE: f(112.4), ROA: f(24.6),
			DebtToEquity: f(0.3), DividendYield: f(5.7), FairValue: f(2300),
		},
		{
			ID: "icbp", Ticker: "ICBP", Name: "Indofood CBP Sukses Makmur Tbk", Sector: "Consumer Non-Cyclicals",
			Price: 11500, Change: 0.44, MarketCap: 1.34e14,
			PE: f(14.1), PBV: f(3.0), EPS: f(816), EPSGrowth: f(15.8),
			Revenue: f(7.25e13), RevenueGrowth: f(7.4), ROE: f(20.9), ROA: f(9.3),
			DebtToEquity: f(0.7), DividendYield: f(1.8), FairValue: f(13200),
		},
		{
			ID: "adro", Ticker: "ADRO", Name: "Alamtri Resources Indonesia Tbk", Sector: "Energy",
			Price: 2650, Change: -2.2, MarketCap: 8.15e13,
			PE: f(4.2), PBV: f(0.8), EPS: f(631), EPSGrowth: f(-28.6),
			Revenue: f(9.8e13), RevenueGrowth: f(-18.2), ROE: f(18.4), ROA: f(11.2),
			DebtToEquity: f(0.2), DividendYield: f(12.3), FairValue: f(3100),
		},
		{
			ID: "antm", Ticker: "ANTM", Name: "Aneka Tambang Tbk", Sector: "Basic Materials",
			Price: 1720, Change: 3.0, MarketCap: 4.13e13,
			PE: f(13.6), PBV: f(1.5), EPS: f(127), EPSGrowth: f(22.1),
			Revenue: f(4.57e13), RevenueGrowth: f(19.4), ROE: f(11.2), ROA: f(6.8),
			DebtToEquity: f(0.3), DividendYield: f(3.7), FairValue: f(1600),
		},
		{
			ID: "klbf", Ticker: "KLBF", Name: "Kalbe Farma Tbk", Sector: "Healthcare",
			Price: 1540, Change: 0.65, MarketCap: 7.22e13,
			PE: f(22.3), PBV: f(3.2), EPS: f(69), EPSGrowth: f(6.7),
			Revenue: f(3.21e13), RevenueGrowth: f(5.1), ROE: f(14.6), ROA: f(11.8),
			DebtToEquity: f(0.0), DividendYield: f(2.5), FairValue: f(1700),
		},
		{
			ID: "goto", Ticker: "GOTO", Name: "GoTo Gojek Tokopedia Tbk", Sector: "Technology",
			Price: 62, Change: -3.1, MarketCap: 7.45e13,
			PBV: f(1.9), Revenue: f(1.61e13), RevenueGrowth: f(11.2),
			DebtToEquity: f(0.1),
		},
		{
			ID: "bsde", Ticker: "BSDE", Name: "Bumi Serpong Damai Tbk", Sector: "Properties & Real Estate",
			Price: 980, Change: 1.0, MarketCap: 2.07e13,
			PE: f(6.9), PBV: f(0.5), EPS: f(142), EPSGrowth: f(31.6),
			Revenue: f(1.42e13), RevenueGrowth: f(14.8), ROE: f(8.1), ROA: f(4.2),
			DebtToEquity: f(0.6), DividendYield: f(0.9), FairValue: f(1250),
		},
		{
			ID: "smdr", Ticker: "SMDR", Name: "Samudera Indonesia Tbk", Sector: "Transportation & Logistics",
			Price: 344, Change: -0.6, MarketCap: 5.6e12,
			PE: f(5.1), PBV: f(0.7), EPS: f(67), EPSGrowth: f(-35.2),
			Revenue: f(8.9e12), RevenueGrowth: f(-12.1), ROE: f(13.7), ROA: f(7.9),
			DebtToEquity: f(0.5), DividendYield: f(6.2), FairValue: f(400),
		},
		{
			ID: "mapi", Ticker: "MAPI", Name: "Mitra Adiperkasa Tbk", Sector: "Consumer Cyclicals",
			Price: 1395, Change: 2.2, MarketCap: 2.32e13,
			PE: f(12.4), PBV: f(2.0), EPS: f(113), EPSGrowth: f(18.9),
			Revenue: f(3.64e13), RevenueGrowth: f(13.6), ROE: f(17.3), ROA: f(7.6),
			DebtToEquity: f(0.8), DividendYield: f(0.6), FairValue: f(1550),
		},
	}
}

// SampleHistory returns quarterly fundamentals for a subset of the
// sample stocks, newest quarter last.
func SampleHistory() map[string][]models.FinancialHistory {
	return map[string][]models.FinancialHistory{
		"bbca": {
			{Year: 2024, Quarter: 3, EPS: 98, Revenue: 2.51e13, ROE: 20.4, ROA: 3.2, DebtToEquity: 0.1},
			{Year: 2024, Quarter: 4, EPS: 104, Revenue: 2.63e13, ROE: 20.9, ROA: 3.3, DebtToEquity: 0.1},
			{Year: 2025, Quarter: 1, EPS: 102, Revenue: 2.58e13, ROE: 21.0, ROA: 3.3, DebtToEquity: 0.1},
			{Year: 2025, Quarter: 2, EPS: 108, Revenue: 2.69e13, ROE: 21.3, ROA: 3.4, DebtToEquity: 0.1},
		},
		"tlkm": {
			{Year: 2024, Quarter: 3, EPS: 58, Revenue: 3.71e13, ROE: 16.2, ROA: 8.1, DebtToEquity: 0.5},
			{Year: 2024, Quarter: 4, EPS: 61, Revenue: 3.78e13, ROE: 16.5, ROA: 8.3, DebtToEquity: 0.4},
			{Year: 2025, Quarter: 1, EPS: 59, Revenue: 3.69e13, ROE: 16.6, ROA: 8.4, DebtToEquity: 0.4},
			{Year: 2025, Quarter: 2, EPS: 62, Revenue: 3.74e13, ROE: 16.8, ROA: 8.5, DebtToEquity: 0.4},
		},
		"asii": {
			{Year: 2024, Quarter: 3, EPS: 205, Revenue: 8.02e13, ROE: 15.8, ROA: 7.4, DebtToEquity: 0.4},
			{Year: 2024, Quarter: 4, EPS: 198, Revenue: 7.91e13, ROE: 15.5, ROA: 7.2, DebtToEquity: 0.4},
			{Year: 2025, Quarter: 1, EPS: 192, Revenue: 7.76e13, ROE: 15.3, ROA: 7.1, DebtToEquity: 0.4},
			{Year: 2025, Quarter: 2, EPS: 195, Revenue: 7.84e13, ROE: 15.2, ROA: 7.1, DebtToEquity: 0.4},
		},
	}
}
