package models

import "time"

// StockChange is a live-update notification emitted when stock records change
// in storage. Consumers treat it as a hint to re-query the collection — the
// screener itself only ever operates on whatever snapshot it is handed.
type StockChange struct {
	Updates    int       `json:"updates"` // number of changed records in the batch
	OccurredAt time.Time `json:"occurred_at"`
}
