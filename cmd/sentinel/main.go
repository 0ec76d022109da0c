package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"SpotSentinel/internal/alert"
	"SpotSentinel/internal/collector"
	"SpotSentinel/internal/config"
	"SpotSentinel/internal/entsoe"
	"SpotSentinel/internal/notifier"
	"SpotSentinel/internal/recorder"
	"SpotSentinel/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] SpotSentinel starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("[FATAL] load timezone %q: %v", cfg.Timezone, err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.Entsoe.DataSource == "mock" {
		fetcher = &collector.MockFetcher{Price: 50}
	} else {
		fetcher = collector.NewEntsoeFetcher(cfg.Entsoe.Token, entsoe.Domain(cfg.Entsoe.Zone), cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s, zone: %s", fetcher.Name(), cfg.Entsoe.Zone)

	// Init collector
	col := collector.NewCollector(fetcher, cfg.Entsoe.Zone,
		time.Duration(cfg.Alerts.CheapestRunHours)*time.Hour,
		alert.Thresholds{HighAverage: cfg.Alerts.HighAverage, Spike: cfg.Alerts.Spike})

	// Init notifier
	var n notifier.Notifier
	if cfg.Telegram.BotToken != "" {
		n = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		log.Println("[INFO] notifier: telegram")
	} else {
		n = notifier.NewLogNotifier()
		log.Println("[INFO] notifier: log")
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, col, n, rec, loc)
	if err := sched.RegisterAll(cfg.Schedule.PublishCron, cfg.Schedule.RecapCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing publish task now")
		go sched.RunPublishNow()
	}

	log.Println("[INFO] SpotSentinel is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] SpotSentinel stopped")
}
