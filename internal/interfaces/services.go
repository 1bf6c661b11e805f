package interfaces

import (
	"context"

	"github.com/bayurmdn/garuda-saham-insight/internal/models"
)

// StockService is the application-facing surface over stock storage and the
// screening core.
type StockService interface {
	// List returns every stock ordered by ticker, watchlist flags merged in.
	List(ctx context.Context) ([]models.Stock, error)
	// Screen filters and sorts the current collection snapshot.
	Screen(ctx context.Context, filter models.FilterState, sort models.SortState) ([]models.Stock, error)
	Get(ctx context.Context, id string) (*models.StockWithHistory, error)

	Watchlist(ctx context.Context) ([]models.Stock, error)
	AddToWatchlist(ctx context.Context, id string) error
	RemoveFromWatchlist(ctx context.Context, id string) error

	SectorOverview(ctx context.Context) ([]models.SectorStat, error)
	TopQuality(ctx context.Context, limit int) ([]models.Stock, error)
	Undervalued(ctx context.Context, limit int) ([]models.Stock, error)

	// Import validates and stores stocks with their history. Used by seeding.
	Import(ctx context.Context, stocks []models.Stock, history map[string][]models.FinancialHistory) error

	// SubscribeChanges registers fn for live-update notifications and returns
	// an unsubscribe func.
	SubscribeChanges(fn func(models.StockChange)) (unsubscribe func())
}
