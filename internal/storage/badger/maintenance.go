package badger

import (
	"fmt"

	badgerdb "github.com/dgraph-io/badger/v4"
	"github.com/robfig/cron/v3"

	"github.com/bayurmdn/garuda-saham-insight/internal/common"
	"github.com/bayurmdn/garuda-saham-insight/internal/config"
)

// Maintenance runs scheduled BadgerDB value-log garbage collection.
type Maintenance struct {
	db     *BadgerDB
	cron   *cron.Cron
	logger *common.Logger
	cfg    *config.MaintenanceConfig
}

// NewMaintenance creates a maintenance scheduler for the given database.
func NewMaintenance(db *BadgerDB, logger *common.Logger, cfg *config.MaintenanceConfig) *Maintenance {
	return &Maintenance{
		db:     db,
		cron:   cron.New(),
		logger: logger,
		cfg:    cfg,
	}
}

// Start registers the GC job and begins the schedule. No-op when maintenance
// is disabled.
func (m *Maintenance) Start() error {
	if !m.cfg.Enabled {
		m.logger.Debug().Msg("database maintenance disabled")
		return nil
	}

	schedule := m.cfg.GCSchedule
	if schedule == "" {
		schedule = "0 3 * * *"
	}

	_, err := m.cron.AddFunc(schedule, m.runGC)
	if err != nil {
		return fmt.Errorf("invalid maintenance schedule %q: %w", schedule, err)
	}

	m.cron.Start()
	m.logger.Info().Str("schedule", schedule).Msg("database maintenance scheduled")
	return nil
}

// Stop halts the schedule. Running jobs finish first.
func (m *Maintenance) Stop() {
	ctx := m.cron.Stop()
	<-ctx.Done()
}

// runGC rewrites value-log files until badger reports nothing left to rewrite.
func (m *Maintenance) runGC() {
	rewritten := 0
	for {
		err := m.db.Store().Badger().RunValueLogGC(0.5)
		if err != nil {
			if err != badgerdb.ErrNoRewrite {
				m.logger.Warn().Err(err).Msg("value log GC failed")
			}
			break
		}
		rewritten++
	}
	m.logger.Info().Int("files_rewritten", rewritten).Msg("value log GC complete")
}
