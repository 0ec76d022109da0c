package model

import (
	"time"

	"SpotSentinel/internal/entsoe"
)

// DayStats summarizes one delivery day of spot prices.
type DayStats struct {
	Average       float64
	Min           float64
	MinStart      time.Time
	Max           float64
	MaxStart      time.Time
	NegativeCount int
	CheapestStart time.Time
	CheapestAvg   float64
	CheapestSpan  time.Duration
	Count         int
}

// Alert is a notification-worthy observation about a delivery day.
type Alert struct {
	Level   string // "INFO" or "WARN"
	Message string
}

// DayReport bundles everything a scheduled task produces for one
// delivery day.
type DayReport struct {
	Zone      string
	Day       time.Time
	Prices    []entsoe.Price
	Stats     *DayStats
	Alerts    []Alert
	FetchedAt time.Time
}
