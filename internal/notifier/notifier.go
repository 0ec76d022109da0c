package notifier

import (
	"context"
	"log"
)

// Notifier delivers daily reports and alerts.
type Notifier interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// LogNotifier writes reports to the process log. Used when Telegram
// is not configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (l *LogNotifier) SendWithRetry(_ context.Context, text string, _ int) error {
	log.Printf("[INFO] report:\n%s", text)
	return nil
}
