package interfaces

import (
	"context"

	"github.com/bayurmdn/garuda-saham-insight/internal/models"
)

// StorageManager provides access to domain-specific storage interfaces.
// Implementations can be swapped (BadgerDB now, centralised DB later).
type StorageManager interface {
	Stocks() StockStorage
	History() HistoryStorage
	Watchlist() WatchlistStorage
	KeyValue() KeyValueStorage
	Close() error
}

// StockStorage persists stock records.
type StockStorage interface {
	// GetAll returns every stock ordered by ticker.
	GetAll(ctx context.Context) ([]models.Stock, error)
	Get(ctx context.Context, id string) (*models.Stock, error)
	Save(ctx context.Context, stock *models.Stock) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	// Subscribe blocks until ctx is done, invoking fn once per change batch.
	Subscribe(ctx context.Context, fn func(models.StockChange)) error
}

// HistoryStorage persists per-stock financial history for charting.
type HistoryStorage interface {
	// GetHistory returns points in chronological order.
	GetHistory(ctx context.Context, stockID string) ([]models.FinancialHistory, error)
	SaveHistory(ctx context.Context, stockID string, points []models.FinancialHistory) error
}

// WatchlistStorage persists the set of watched stock IDs.
type WatchlistStorage interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, stockID string) error
	Remove(ctx context.Context, stockID string) error
	Contains(ctx context.Context, stockID string) (bool, error)
}

// KeyValueStorage provides basic key-value operations for settings and
// preferences.
type KeyValueStorage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	GetAll(ctx context.Context) (map[string]string, error)
}
