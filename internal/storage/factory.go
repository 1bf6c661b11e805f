package storage

import (
	"github.com/bayurmdn/garuda-saham-insight/internal/common"
	"github.com/bayurmdn/garuda-saham-insight/internal/config"
	"github.com/bayurmdn/garuda-saham-insight/internal/storage/badger"
)

// NewStorageManager creates a new storage manager based on config.
func NewStorageManager(logger *common.Logger, cfg *config.Config) (*badger.Manager, error) {
	return badger.NewManager(logger, &cfg.Storage.Badger)
}
