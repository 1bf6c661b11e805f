package badger

import (
	"context"
	"testing"

	"github.com/bayurmdn/garuda-saham-insight/internal/common"
	"github.com/bayurmdn/garuda-saham-insight/internal/models"
)

func TestHistoryStorage_SaveAndGetChronological(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	hs := NewHistoryStorage(db, common.NewSilentLogger())
	ctx := context.Background()

	points := []models.FinancialHistory{
		{Year: 2025, Quarter: 2, EPS: 120, Revenue: 5.2e12},
		{Year: 2024, Quarter: 4, EPS: 110, Revenue: 4.9e12},
		{Year: 2025, Quarter: 1, EPS: 115, Revenue: 5.0e12},
	}

	if err := hs.SaveHistory(ctx, "idx-bbca", points); err != nil {
		t.Fatalf("SaveHistory failed: %v", err)
	}

	got, err := hs.GetHistory(ctx, "idx-bbca")
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 points, got %d", len(got))
	}

	// Chronological order regardless of insertion order.
	want := [][2]int{{2024, 4}, {2025, 1}, {2025, 2}}
	for i, p := range got {
		if p.Year != want[i][0] || p.Quarter != want[i][1] {
			t.Errorf("point %d: got %d Q%d, want %d Q%d", i, p.Year, p.Quarter, want[i][0], want[i][1])
		}
	}
}

func TestHistoryStorage_MissingStockYieldsEmpty(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	hs := NewHistoryStorage(db, common.NewSilentLogger())

	got, err := hs.GetHistory(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty history, got %d points", len(got))
	}
}
