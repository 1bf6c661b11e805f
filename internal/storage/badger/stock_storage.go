package badger

import (
	"context"
	"fmt"
	"sort"
	"time"

	badgerdb "github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/pb"
	"github.com/timshannon/badgerhold/v4"

	"github.com/bayurmdn/garuda-saham-insight/internal/common"
	"github.com/bayurmdn/garuda-saham-insight/internal/models"
)

// stockPrefix is the badgerhold key prefix for Stock records, used to scope
// the live-change subscription.
var stockPrefix = []byte("bh_Stock")

// StockStorage implements interfaces.StockStorage using BadgerDB.
type StockStorage struct {
	db     *BadgerDB
	logger *common.Logger
}

// NewStockStorage creates stock storage backed by BadgerDB.
func NewStockStorage(db *BadgerDB, logger *common.Logger) *StockStorage {
	return &StockStorage{
		db:     db,
		logger: logger,
	}
}

// GetAll returns every stored stock ordered by ticker.
func (s *StockStorage) GetAll(_ context.Context) ([]models.Stock, error) {
	var stocks []models.Stock
	if err := s.db.Store().Find(&stocks, nil); err != nil {
		return nil, fmt.Errorf("failed to load stocks: %w", err)
	}

	sort.Slice(stocks, func(i, j int) bool {
		return stocks[i].Ticker < stocks[j].Ticker
	})
	return stocks, nil
}

// Get retrieves one stock by ID.
func (s *StockStorage) Get(_ context.Context, id string) (*models.Stock, error) {
	var stock models.Stock
	err := s.db.Store().Get(id, &stock)
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("stock not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get stock %s: %w", id, err)
	}
	return &stock, nil
}

// Save stores or replaces a stock record.
func (s *StockStorage) Save(_ context.Context, stock *models.Stock) error {
	if err := s.db.Store().Upsert(stock.ID, stock); err != nil {
		return fmt.Errorf("failed to save stock %s: %w", stock.ID, err)
	}
	return nil
}

// Delete removes a stock record. Deleting a missing record is not an error.
func (s *StockStorage) Delete(_ context.Context, id string) error {
	err := s.db.Store().Delete(id, models.Stock{})
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete stock %s: %w", id, err)
	}
	return nil
}

// Count returns the number of stored stocks.
func (s *StockStorage) Count(_ context.Context) (int, error) {
	n, err := s.db.Store().Count(models.Stock{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count stocks: %w", err)
	}
	return int(n), nil
}

// Subscribe watches the stock key prefix and invokes fn once per change
// batch. Blocks until ctx is done.
func (s *StockStorage) Subscribe(ctx context.Context, fn func(models.StockChange)) error {
	err := s.db.Store().Badger().Subscribe(ctx, func(kvs *badgerdb.KVList) error {
		if len(kvs.Kv) == 0 {
			return nil
		}
		fn(models.StockChange{
			Updates:    len(kvs.Kv),
			OccurredAt: time.Now(),
		})
		return nil
	}, []pb.Match{{Prefix: stockPrefix}})

	if err != nil && err != context.Canceled {
		return fmt.Errorf("stock subscription ended: %w", err)
	}
	return nil
}
