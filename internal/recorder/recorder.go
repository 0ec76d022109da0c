package recorder

import (
	"time"

	"SpotSentinel/internal/entsoe"
)

// FetchEvent records the outcome of one scheduled fetch.
type FetchEvent struct {
	Zone        string
	WindowStart time.Time
	WindowEnd   time.Time
	PointCount  int
	Average     float64
	Status      string // "OK" or "ERROR"
	Note        string
}

// Recorder persists fetched price history for later analysis. The
// price pipeline itself never touches storage; recording happens in
// the daemon after a fetch completes.
type Recorder interface {
	RecordPrices(zone string, prices []entsoe.Price) error
	RecordFetch(evt *FetchEvent) error
	Close() error
}
