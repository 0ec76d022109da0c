package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"SpotSentinel/internal/collector"
	"SpotSentinel/internal/notifier"
	"SpotSentinel/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  notifier.Notifier
	Recorder  recorder.Recorder
	Location  *time.Location
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler. Delivery days are computed in
// the given location.
func NewScheduler(ctx context.Context, col *collector.Collector, n notifier.Notifier, rec recorder.Recorder, loc *time.Location) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Notifier:  n,
		Recorder:  rec,
		Location:  loc,
		Ctx:       ctx,
	}
}

// RegisterAll registers the publish and recap tasks.
func (s *Scheduler) RegisterAll(publishCron, recapCron string) error {
	if _, err := s.Cron.AddFunc(publishCron, s.publishTask); err != nil {
		return fmt.Errorf("register publish task: %w", err)
	}
	if _, err := s.Cron.AddFunc(recapCron, s.recapTask); err != nil {
		return fmt.Errorf("register recap task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunPublishNow executes the publish task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunPublishNow() {
	s.publishTask()
}

// publishTask runs after the day-ahead auction results are published
// and reports tomorrow's delivery day.
func (s *Scheduler) publishTask() {
	log.Println("[INFO] running publish task")
	s.runDay(s.deliveryDay(1), "day-ahead")
}

// recapTask reports the current delivery day each morning.
func (s *Scheduler) recapTask() {
	log.Println("[INFO] running recap task")
	s.runDay(s.deliveryDay(0), "recap")
}

// deliveryDay returns local midnight offset by days from today.
func (s *Scheduler) deliveryDay(days int) time.Time {
	now := time.Now().In(s.Location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.Location).AddDate(0, 0, days)
}

func (s *Scheduler) runDay(day time.Time, label string) {
	start := day
	end := day.AddDate(0, 0, 1)

	report, err := s.Collector.Collect(s.Ctx, start, end)
	if err != nil {
		log.Printf("[ERROR] %s collect: %v", label, err)
		s.trySend(notifier.FormatFetchFailure(s.Collector.Zone, day, err))
		s.recordFetch(start, end, 0, 0, "ERROR", err.Error())
		return
	}

	s.trySend(notifier.FormatDayReport(report, label))

	if err := s.Recorder.RecordPrices(report.Zone, report.Prices); err != nil {
		log.Printf("[ERROR] record prices: %v", err)
	}
	s.recordFetch(start, end, report.Stats.Count, report.Stats.Average, "OK", label)
}

func (s *Scheduler) recordFetch(start, end time.Time, count int, avg float64, status, note string) {
	if err := s.Recorder.RecordFetch(&recorder.FetchEvent{
		Zone:        s.Collector.Zone,
		WindowStart: start,
		WindowEnd:   end,
		PointCount:  count,
		Average:     avg,
		Status:      status,
		Note:        note,
	}); err != nil {
		log.Printf("[ERROR] record fetch: %v", err)
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
