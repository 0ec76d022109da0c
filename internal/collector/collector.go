package collector

import (
	"context"
	"fmt"
	"log"
	"time"

	"SpotSentinel/internal/alert"
	"SpotSentinel/internal/calculator"
	"SpotSentinel/internal/entsoe"
	"SpotSentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Data  []entsoe.Price
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchPrices(_ context.Context, start, end time.Time) ([]entsoe.Price, error) {
	if m.Data != nil {
		return m.Data, nil
	}
	return generateMockPrices(m.Price, start, end), nil
}

func generateMockPrices(basePrice float64, start, end time.Time) []entsoe.Price {
	var prices []entsoe.Price
	for i := 0; start.Before(end); i++ {
		// mild daily swing around the base price
		p := basePrice * (1 + float64(i%24-12)*0.01)
		prices = append(prices, entsoe.Price{
			StartTime:  start,
			Resolution: entsoe.Hourly,
			Price:      p,
			Unit:       entsoe.EurPerMwh,
		})
		start = start.Add(time.Hour)
	}
	return prices
}

// Collector orchestrates price fetching, statistics and alert
// evaluation for one delivery day.
type Collector struct {
	Fetcher      Fetcher
	Zone         string
	CheapestSpan time.Duration
	Thresholds   alert.Thresholds
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, zone string, cheapestSpan time.Duration, th alert.Thresholds) *Collector {
	return &Collector{Fetcher: fetcher, Zone: zone, CheapestSpan: cheapestSpan, Thresholds: th}
}

// Collect fetches prices for [start, end) and computes the day
// statistics. A fetch failure is fatal; a statistic that cannot be
// computed only degrades the report.
func (c *Collector) Collect(ctx context.Context, start, end time.Time) (*model.DayReport, error) {
	prices, err := c.Fetcher.FetchPrices(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch prices: %w", err)
	}

	stats := &model.DayStats{Count: len(prices)}

	if avg, err := calculator.Average(prices); err != nil {
		log.Printf("[WARN] average calculation failed: %v", err)
	} else {
		stats.Average = avg
	}

	if min, max, err := calculator.Extremes(prices); err != nil {
		log.Printf("[WARN] extremes calculation failed: %v", err)
	} else {
		stats.Min = min.Price
		stats.MinStart = min.StartTime
		stats.Max = max.Price
		stats.MaxStart = max.StartTime
	}

	stats.NegativeCount = calculator.NegativeCount(prices)

	if c.CheapestSpan > 0 {
		if runStart, runAvg, err := calculator.CheapestRun(prices, c.CheapestSpan); err != nil {
			log.Printf("[WARN] cheapest run calculation failed: %v", err)
		} else {
			stats.CheapestStart = runStart
			stats.CheapestAvg = runAvg
			stats.CheapestSpan = c.CheapestSpan
		}
	}

	return &model.DayReport{
		Zone:      c.Zone,
		Day:       start,
		Prices:    prices,
		Stats:     stats,
		Alerts:    alert.Evaluate(stats, c.Thresholds),
		FetchedAt: time.Now(),
	}, nil
}
