package badger

import (
	"github.com/bayurmdn/garuda-saham-insight/internal/common"
	"github.com/bayurmdn/garuda-saham-insight/internal/config"
	"github.com/bayurmdn/garuda-saham-insight/internal/interfaces"
)

// Manager implements the StorageManager interface for Badger.
type Manager struct {
	db        *BadgerDB
	stocks    interfaces.StockStorage
	history   interfaces.HistoryStorage
	watchlist interfaces.WatchlistStorage
	kv        interfaces.KeyValueStorage
	logger    *common.Logger
}

// NewManager creates a new Badger storage manager.
func NewManager(logger *common.Logger, cfg *config.BadgerConfig) (*Manager, error) {
	db, err := NewBadgerDB(logger, cfg)
	if err != nil {
		return nil, err
	}

	manager := &Manager{
		db:        db,
		stocks:    NewStockStorage(db, logger),
		history:   NewHistoryStorage(db, logger),
		watchlist: NewWatchlistStorage(db, logger),
		kv:        NewKVStorage(db, logger),
		logger:    logger,
	}

	logger.Debug().Msg("Badger storage manager initialized")

	return manager, nil
}

// Stocks returns the stock storage interface.
func (m *Manager) Stocks() interfaces.StockStorage {
	return m.stocks
}

// History returns the financial history storage interface.
func (m *Manager) History() interfaces.HistoryStorage {
	return m.history
}

// Watchlist returns the watchlist storage interface.
func (m *Manager) Watchlist() interfaces.WatchlistStorage {
	return m.watchlist
}

// KeyValue returns the key-value storage interface.
func (m *Manager) KeyValue() interfaces.KeyValueStorage {
	return m.kv
}

// DB returns the underlying BadgerDB connection, used by maintenance.
func (m *Manager) DB() *BadgerDB {
	return m.db
}

// Close closes the database connection.
func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
