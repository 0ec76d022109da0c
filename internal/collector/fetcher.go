package collector

import (
	"context"
	"time"

	"SpotSentinel/internal/entsoe"
)

// Fetcher defines the interface for fetching spot prices.
type Fetcher interface {
	// FetchPrices returns gap-free prices covering [start, end) in
	// strictly increasing start-time order.
	FetchPrices(ctx context.Context, start, end time.Time) ([]entsoe.Price, error)
	Name() string
}
