// Package stocks provides the application service over stock storage and the
// screening core.
package stocks

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/bayurmdn/garuda-saham-insight/internal/common"
	"github.com/bayurmdn/garuda-saham-insight/internal/interfaces"
	"github.com/bayurmdn/garuda-saham-insight/internal/models"
	"github.com/bayurmdn/garuda-saham-insight/internal/screener"
)

// topQualityMinScore is the fundamental-score cutoff for the dashboard's
// top-quality list.
const topQualityMinScore = 8

// Service implements interfaces.StockService.
type Service struct {
	storage  interfaces.StorageManager
	logger   *common.Logger
	validate *validator.Validate

	mu          sync.Mutex
	subscribers map[int]func(models.StockChange)
	nextSubID   int
}

// NewService creates a stock service over the given storage.
func NewService(storage interfaces.StorageManager, logger *common.Logger) *Service {
	return &Service{
		storage:     storage,
		logger:      logger,
		validate:    validator.New(),
		subscribers: make(map[int]func(models.StockChange)),
	}
}

// Start launches the live-update pump. It blocks until ctx is done, relaying
// storage change batches to registered subscribers.
func (s *Service) Start(ctx context.Context) error {
	return s.storage.Stocks().Subscribe(ctx, func(c models.StockChange) {
		s.mu.Lock()
		fns := make([]func(models.StockChange), 0, len(s.subscribers))
		for _, fn := range s.subscribers {
			fns = append(fns, fn)
		}
		s.mu.Unlock()

		for _, fn := range fns {
			fn(c)
		}
	})
}

// SubscribeChanges registers fn for live-update notifications and returns an
// unsubscribe func.
func (s *Service) SubscribeChanges(fn func(models.StockChange)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// List returns every stock ordered by ticker with watchlist flags merged in.
func (s *Service) List(ctx context.Context) ([]models.Stock, error) {
	stocks, err := s.storage.Stocks().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	watched, err := s.storage.Watchlist().List(ctx)
	if err != nil {
		return nil, err
	}
	watchedSet := make(map[string]bool, len(watched))
	for _, id := range watched {
		watchedSet[id] = true
	}

	for i := range stocks {
		stocks[i].InWatchlist = watchedSet[stocks[i].ID]
	}
	return stocks, nil
}

// Screen filters and sorts the current collection snapshot.
func (s *Service) Screen(ctx context.Context, filter models.FilterState, sortState models.SortState) ([]models.Stock, error) {
	stocks, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	result := screener.Filter(stocks, filter)
	if sortState.Field != "" {
		result = screener.Sort(result, sortState)
	}
	return result, nil
}

// Get returns one stock with its financial history.
func (s *Service) Get(ctx context.Context, id string) (*models.StockWithHistory, error) {
	stock, err := s.storage.Stocks().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	watched, err := s.storage.Watchlist().Contains(ctx, id)
	if err != nil {
		return nil, err
	}
	stock.InWatchlist = watched

	history, err := s.storage.History().GetHistory(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.StockWithHistory{
		Stock:   *stock,
		History: history,
	}, nil
}

// Watchlist returns the watched stocks ordered by ticker.
func (s *Service) Watchlist(ctx context.Context) ([]models.Stock, error) {
	stocks, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Stock, 0)
	for _, st := range stocks {
		if st.InWatchlist {
			out = append(out, st)
		}
	}
	return out, nil
}

// AddToWatchlist marks a stock as watched. The stock must exist.
func (s *Service) AddToWatchlist(ctx context.Context, id string) error {
	if _, err := s.storage.Stocks().Get(ctx, id); err != nil {
		return err
	}
	if err := s.storage.Watchlist().Add(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("stock_id", id).Msg("added to watchlist")
	return nil
}

// RemoveFromWatchlist unmarks a stock. Removing an unwatched stock is a no-op.
func (s *Service) RemoveFromWatchlist(ctx context.Context, id string) error {
	if err := s.storage.Watchlist().Remove(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("stock_id", id).Msg("removed from watchlist")
	return nil
}

// SectorOverview aggregates average ROE and EPS growth per sector, sorted by
// average ROE descending. Absent metrics count as zero in the averages —
// this mirrors the dashboard display, not the screener's skip policy.
func (s *Service) SectorOverview(ctx context.Context) ([]models.SectorStat, error) {
	stocks, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]models.SectorStat, 0, len(models.Sectors))
	for _, sector := range models.Sectors {
		var roeSum, growthSum float64
		count := 0
		for _, st := range stocks {
			if st.Sector != sector {
				continue
			}
			count++
			if st.ROE != nil {
				roeSum += *st.ROE
			}
			if st.EPSGrowth != nil {
				growthSum += *st.EPSGrowth
			}
		}
		if count == 0 {
			continue
		}
		stats = append(stats, models.SectorStat{
			Sector:       sector,
			AvgROE:       roeSum / float64(count),
			AvgEPSGrowth: growthSum / float64(count),
			StockCount:   count,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].AvgROE > stats[j].AvgROE
	})
	return stats, nil
}

// TopQuality returns up to limit stocks with the highest fundamental scores,
// keeping only those at or above the quality cutoff.
func (s *Service) TopQuality(ctx context.Context, limit int) ([]models.Stock, error) {
	stocks, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	type scored struct {
		stock models.Stock
		score int
	}
	ranked := make([]scored, len(stocks))
	for i, st := range stocks {
		ranked[i] = scored{stock: st, score: screener.FundamentalScore(&st)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]models.Stock, 0, limit)
	for _, r := range ranked {
		if r.score < topQualityMinScore {
			continue
		}
		out = append(out, r.stock)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// Undervalued returns up to limit stocks trading below fair value, ordered by
// discount (fairValue/price - 1) descending.
func (s *Service) Undervalued(ctx context.Context, limit int) ([]models.Stock, error) {
	stocks, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]models.Stock, 0)
	for _, st := range stocks {
		if st.FairValue != nil && *st.FairValue > st.Price && st.Price > 0 {
			candidates = append(candidates, st)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		di := *candidates[i].FairValue/candidates[i].Price - 1
		dj := *candidates[j].FairValue/candidates[j].Price - 1
		return di > dj
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

// Import validates and stores stocks with their history.
func (s *Service) Import(ctx context.Context, stocks []models.Stock, history map[string][]models.FinancialHistory) error {
	for i := range stocks {
		stock := stocks[i]
		if err := s.validate.Struct(&stock); err != nil {
			return fmt.Errorf("invalid stock record %s: %w", stock.Ticker, err)
		}
		if !models.ValidSector(stock.Sector) {
			return fmt.Errorf("invalid stock record %s: unknown sector %q", stock.Ticker, stock.Sector)
		}
		if err := s.storage.Stocks().Save(ctx, &stock); err != nil {
			return err
		}
		if points, ok := history[stock.ID]; ok {
			if err := s.storage.History().SaveHistory(ctx, stock.ID, points); err != nil {
				return err
			}
		}
	}

	s.logger.Info().Int("stocks", len(stocks)).Msg("stock import complete")
	return nil
}
