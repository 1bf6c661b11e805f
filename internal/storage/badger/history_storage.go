package badger

import (
	"context"
	"fmt"
	"sort"

	"github.com/timshannon/badgerhold/v4"

	"github.com/bayurmdn/garuda-saham-insight/internal/common"
	"github.com/bayurmdn/garuda-saham-insight/internal/models"
)

// historyRecord stores a stock's full financial history under one key.
type historyRecord struct {
	StockID string `badgerhold:"key"`
	Points  []models.FinancialHistory
}

// HistoryStorage implements interfaces.HistoryStorage using BadgerDB.
type HistoryStorage struct {
	db     *BadgerDB
	logger *common.Logger
}

// NewHistoryStorage creates history storage backed by BadgerDB.
func NewHistoryStorage(db *BadgerDB, logger *common.Logger) *HistoryStorage {
	return &HistoryStorage{
		db:     db,
		logger: logger,
	}
}

// GetHistory returns a stock's history points in chronological order.
// A stock with no stored history yields an empty slice, not an error.
func (s *HistoryStorage) GetHistory(_ context.Context, stockID string) ([]models.FinancialHistory, error) {
	var rec historyRecord
	err := s.db.Store().Get(stockID, &rec)
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return []models.FinancialHistory{}, nil
		}
		return nil, fmt.Errorf("failed to get history for %s: %w", stockID, err)
	}

	points := append([]models.FinancialHistory(nil), rec.Points...)
	sort.Slice(points, func(i, j int) bool {
		if points[i].Year != points[j].Year {
			return points[i].Year < points[j].Year
		}
		return points[i].Quarter < points[j].Quarter
	})
	return points, nil
}

// SaveHistory stores a stock's history, replacing any existing points.
func (s *HistoryStorage) SaveHistory(_ context.Context, stockID string, points []models.FinancialHistory) error {
	rec := historyRecord{
		StockID: stockID,
		Points:  points,
	}
	if err := s.db.Store().Upsert(stockID, &rec); err != nil {
		return fmt.Errorf("failed to save history for %s: %w", stockID, err)
	}
	return nil
}
