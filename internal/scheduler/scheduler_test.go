package scheduler

import (
	"context"
	"strings"
	"testing"
	"time"

	"SpotSentinel/internal/alert"
	"SpotSentinel/internal/collector"
	"SpotSentinel/internal/entsoe"
	"SpotSentinel/internal/recorder"
)

type captureNotifier struct {
	messages []string
}

func (c *captureNotifier) SendWithRetry(_ context.Context, text string, _ int) error {
	c.messages = append(c.messages, text)
	return nil
}

type captureRecorder struct {
	prices  []entsoe.Price
	fetches []recorder.FetchEvent
}

func (c *captureRecorder) RecordPrices(_ string, prices []entsoe.Price) error {
	c.prices = append(c.prices, prices...)
	return nil
}

func (c *captureRecorder) RecordFetch(evt *recorder.FetchEvent) error {
	c.fetches = append(c.fetches, *evt)
	return nil
}

func (c *captureRecorder) Close() error { return nil }

func newTestScheduler(fetcher collector.Fetcher) (*Scheduler, *captureNotifier, *captureRecorder) {
	col := collector.NewCollector(fetcher, "10YFI-1--------U", 0, alert.Thresholds{})
	n := &captureNotifier{}
	rec := &captureRecorder{}
	return NewScheduler(context.Background(), col, n, rec, time.UTC), n, rec
}

func TestRunDay(t *testing.T) {
	s, n, rec := newTestScheduler(&collector.MockFetcher{Price: 50})
	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	s.runDay(day, "day-ahead")

	if len(n.messages) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(n.messages))
	}
	if !strings.Contains(n.messages[0], "day-ahead") || !strings.Contains(n.messages[0], "2025-01-10") {
		t.Errorf("unexpected report: %s", n.messages[0])
	}
	if len(rec.prices) != 24 {
		t.Errorf("expected 24 recorded prices, got %d", len(rec.prices))
	}
	if len(rec.fetches) != 1 || rec.fetches[0].Status != "OK" {
		t.Errorf("unexpected fetch log: %+v", rec.fetches)
	}
}

func TestRunDayFetchFailure(t *testing.T) {
	client := entsoe.NewClient("", entsoe.Finland, "")
	s, n, rec := newTestScheduler(&collector.EntsoeFetcher{Client: client})
	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	s.runDay(day, "recap")

	if len(n.messages) != 1 || !strings.Contains(n.messages[0], "failed") {
		t.Fatalf("expected failure notification, got %v", n.messages)
	}
	if len(rec.fetches) != 1 || rec.fetches[0].Status != "ERROR" {
		t.Errorf("unexpected fetch log: %+v", rec.fetches)
	}
	if len(rec.prices) != 0 {
		t.Errorf("expected no recorded prices, got %d", len(rec.prices))
	}
}

func TestDeliveryDay(t *testing.T) {
	s, _, _ := newTestScheduler(&collector.MockFetcher{Price: 50})

	today := s.deliveryDay(0)
	tomorrow := s.deliveryDay(1)

	if hh, mm, ss := today.Clock(); hh != 0 || mm != 0 || ss != 0 {
		t.Errorf("delivery day must start at midnight, got %v", today)
	}
	if got := tomorrow.Sub(today); got != 24*time.Hour {
		t.Errorf("tomorrow - today = %v, want 24h", got)
	}
}

func TestRegisterAll(t *testing.T) {
	s, _, _ := newTestScheduler(&collector.MockFetcher{Price: 50})

	if err := s.RegisterAll("0 15 14 * * *", "0 0 7 * * *"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.RegisterAll("not a cron", "0 0 7 * * *"); err == nil {
		t.Error("expected error for invalid cron expression")
	}
}
