package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketRecord is the last known quote for a single coin.
type MarketRecord struct {
	ID             string           `json:"id"`
	CurrentPrice   decimal.Decimal  `json:"current_price"`
	HasPrice       bool             `json:"-"`
	PriceChange24h *decimal.Decimal `json:"price_change_percentage_24h"` // nil when the provider has no value
	Image          string           `json:"image"`
}

// Snapshot is one generation of the quote cache, keyed by provider id.
type Snapshot struct {
	Records    map[string]MarketRecord `json:"records"`
	FetchedAt  time.Time               `json:"fetched_at"`
	Generation uint64                  `json:"generation"`
}

// Lookup returns the record for id, if the snapshot has one.
func (s Snapshot) Lookup(id string) (MarketRecord, bool) {
	if s.Records == nil || id == "" {
		return MarketRecord{}, false
	}
	r, ok := s.Records[id]
	return r, ok
}
