package alert

import (
	"fmt"

	"SpotSentinel/internal/model"
)

// Thresholds configures alert triggers, in the price unit (EUR/MWh).
type Thresholds struct {
	HighAverage float64 // daily average at or above this warns
	Spike       float64 // any single interval at or above this warns
}

// Evaluate inspects one day's statistics and returns the alerts it
// triggers, in severity order.
func Evaluate(stats *model.DayStats, th Thresholds) []model.Alert {
	if stats == nil || stats.Count == 0 {
		return nil
	}
	var alerts []model.Alert

	if th.Spike > 0 && stats.Max >= th.Spike {
		alerts = append(alerts, model.Alert{
			Level: "WARN",
			Message: fmt.Sprintf("price spike %.2f EUR/MWh at %s",
				stats.Max, stats.MaxStart.Format("15:04")),
		})
	}
	if th.HighAverage > 0 && stats.Average >= th.HighAverage {
		alerts = append(alerts, model.Alert{
			Level:   "WARN",
			Message: fmt.Sprintf("high daily average %.2f EUR/MWh", stats.Average),
		})
	}
	if stats.NegativeCount > 0 {
		alerts = append(alerts, model.Alert{
			Level:   "INFO",
			Message: fmt.Sprintf("%d intervals priced below zero", stats.NegativeCount),
		})
	}
	return alerts
}
