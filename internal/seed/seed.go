package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bayurmdn/garuda-saham-insight/internal/common"
	"github.com/bayurmdn/garuda-saham-insight/internal/interfaces"
	"github.com/bayurmdn/garuda-saham-insight/internal/models"
)

const stocksFileName = "import/stocks.json"

// stocksFile is the JSON structure for the stocks seed file.
type stocksFile struct {
	Stocks  []models.Stock                       `json:"stocks"`
	History map[string][]models.FinancialHistory `json:"history"`
}

// DevStocks seeds sample stocks when the store is empty. It prefers
// import/stocks.json next to the binary or in the working directory and
// falls back to the built-in sample set. Non-fatal: failures log a
// warning and the service starts with an empty store.
func DevStocks(ctx context.Context, svc interfaces.StockService, storage interfaces.StorageManager, logger *common.Logger) {
	count, err := storage.Stocks().Count(ctx)
	if err != nil {
		logger.Warn().Str("error", err.Error()).Msg("seed: failed to check stock count, skipping seeding")
		return
	}
	if count > 0 {
		logger.Debug().Int("count", count).Msg("seed: store already populated, skipping seeding")
		return
	}

	stocks, history, source := loadSeedData(logger)
	if len(stocks) == 0 {
		logger.Warn().Msg("seed: no seed data available, starting with empty store")
		return
	}

	if err := svc.Import(ctx, stocks, history); err != nil {
		logger.Warn().Str("error", err.Error()).Str("source", source).Msg("seed: failed to import sample stocks")
		return
	}

	logger.Info().Int("stocks", len(stocks)).Str("source", source).Msg("seed: sample stocks imported")
}

// loadSeedData returns stocks from import/stocks.json when present,
// otherwise the built-in sample set.
func loadSeedData(logger *common.Logger) ([]models.Stock, map[string][]models.FinancialHistory, string) {
	path := findStocksFile()
	if path == "" {
		return SampleStocks(), SampleHistory(), "builtin"
	}

	stocks, history, err := loadStocksFile(path)
	if err != nil {
		logger.Warn().Str("error", err.Error()).Str("path", path).Msg("seed: failed to load stocks file, using built-in samples")
		return SampleStocks(), SampleHistory(), "builtin"
	}
	return stocks, history, path
}

// findStocksFile searches for import/stocks.json relative to the
// executable directory first, then falls back to the current working
// directory.
func findStocksFile() string {
	if exe, err := os.Executable(); err == nil {
		p := filepath.Join(filepath.Dir(exe), stocksFileName)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	if _, err := os.Stat(stocksFileName); err == nil {
		return stocksFileName
	}

	return ""
}

// loadStocksFile reads and parses the stocks JSON file.
func loadStocksFile(path string) ([]models.Stock, map[string][]models.FinancialHistory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	var f stocksFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("parse JSON: %w", err)
	}

	return f.Stocks, f.History, nil
}
