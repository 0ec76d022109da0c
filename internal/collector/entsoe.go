package collector

import (
	"context"
	"time"

	"SpotSentinel/internal/entsoe"
)

// EntsoeFetcher implements Fetcher using the ENTSO-E transparency
// platform.
type EntsoeFetcher struct {
	Client *entsoe.Client
}

// NewEntsoeFetcher creates a fetcher for one bidding zone with
// optional proxy support.
func NewEntsoeFetcher(token string, zone entsoe.Domain, proxyURL string) *EntsoeFetcher {
	return &EntsoeFetcher{Client: entsoe.NewClient(token, zone, proxyURL)}
}

func (f *EntsoeFetcher) Name() string { return "entsoe" }

func (f *EntsoeFetcher) FetchPrices(ctx context.Context, start, end time.Time) ([]entsoe.Price, error) {
	seq, err := f.Client.Prices(ctx, start, end)
	if err != nil {
		return nil, err
	}
	var prices []entsoe.Price
	for p, err := range seq {
		if err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}
	return prices, nil
}
