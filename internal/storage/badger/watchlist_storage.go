package badger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/timshannon/badgerhold/v4"

	"github.com/bayurmdn/garuda-saham-insight/internal/common"
)

// watchlistEntry marks one stock as watched.
type watchlistEntry struct {
	StockID string `badgerhold:"key"`
	AddedAt time.Time
}

// WatchlistStorage implements interfaces.WatchlistStorage using BadgerDB.
type WatchlistStorage struct {
	db     *BadgerDB
	logger *common.Logger
}

// NewWatchlistStorage creates watchlist storage backed by BadgerDB.
func NewWatchlistStorage(db *BadgerDB, logger *common.Logger) *WatchlistStorage {
	return &WatchlistStorage{
		db:     db,
		logger: logger,
	}
}

// List returns the watched stock IDs, sorted for stable output.
func (s *WatchlistStorage) List(_ context.Context) ([]string, error) {
	var entries []watchlistEntry
	if err := s.db.Store().Find(&entries, nil); err != nil {
		return nil, fmt.Errorf("failed to load watchlist: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.StockID)
	}
	sort.Strings(ids)
	return ids, nil
}

// Add marks a stock as watched. Adding an already-watched stock is a no-op.
func (s *WatchlistStorage) Add(_ context.Context, stockID string) error {
	entry := watchlistEntry{
		StockID: stockID,
		AddedAt: time.Now(),
	}
	if err := s.db.Store().Upsert(stockID, &entry); err != nil {
		return fmt.Errorf("failed to add %s to watchlist: %w", stockID, err)
	}
	return nil
}

// Remove unmarks a stock. Removing an unwatched stock is not an error.
func (s *WatchlistStorage) Remove(_ context.Context, stockID string) error {
	err := s.db.Store().Delete(stockID, watchlistEntry{})
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to remove %s from watchlist: %w", stockID, err)
	}
	return nil
}

// Contains reports whether a stock is watched.
func (s *WatchlistStorage) Contains(_ context.Context, stockID string) (bool, error) {
	var entry watchlistEntry
	err := s.db.Store().Get(stockID, &entry)
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check watchlist for %s: %w", stockID, err)
	}
	return true, nil
}
