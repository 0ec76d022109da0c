package notifier

import (
	"fmt"
	"strings"
	"time"

	"SpotSentinel/internal/model"
)

// FormatDayReport formats one delivery day's prices into a Telegram message.
func FormatDayReport(report *model.DayReport, label string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("⚡ <b>SpotSentinel %s</b> | %s | %s\n\n",
		label, report.Zone, report.Day.Format("2006-01-02")))

	stats := report.Stats
	if stats == nil || stats.Count == 0 {
		b.WriteString("no prices reported for this day\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("average: %.2f EUR/MWh (%d intervals)\n", stats.Average, stats.Count))
	b.WriteString(fmt.Sprintf("low:  %.2f at %s\n", stats.Min, stats.MinStart.Format("15:04")))
	b.WriteString(fmt.Sprintf("high: %.2f at %s\n", stats.Max, stats.MaxStart.Format("15:04")))

	if stats.CheapestSpan > 0 {
		b.WriteString(fmt.Sprintf("\n🔌 cheapest %s: %s-%s, avg %.2f\n",
			formatSpan(stats.CheapestSpan),
			stats.CheapestStart.Format("15:04"),
			stats.CheapestStart.Add(stats.CheapestSpan).Format("15:04"),
			stats.CheapestAvg))
	}

	if len(report.Alerts) > 0 {
		b.WriteString("\n")
		for _, a := range report.Alerts {
			icon := "ℹ️"
			if a.Level == "WARN" {
				icon = "⚠️"
			}
			b.WriteString(fmt.Sprintf("%s %s\n", icon, a.Message))
		}
	}

	return b.String()
}

// FormatFetchFailure formats a fetch error notification.
func FormatFetchFailure(zone string, day time.Time, err error) string {
	return fmt.Sprintf("❌ <b>SpotSentinel</b> | %s\n\nfetching prices for %s failed: %v",
		zone, day.Format("2006-01-02"), err)
}

func formatSpan(d time.Duration) string {
	if d%time.Hour == 0 {
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
	return d.String()
}
