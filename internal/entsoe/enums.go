package entsoe

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnsupportedUnit is returned when the API reports a price in a
// currency/measure combination the client does not support.
var ErrUnsupportedUnit = errors.New("unsupported unit")

// DocumentType selects the report kind requested from the API.
// Only the day-ahead price document is supported.
type DocumentType string

const PriceDocument DocumentType = "A44"

// Domain is the EIC code of a bidding zone.
type Domain string

const Finland Domain = "10YFI-1--------U"

// Unit is the unit of measure of a reported price.
type Unit string

const EurPerMwh Unit = "EUR/MWh"

// parseUnit maps the currency and measure names reported in a
// TimeSeries element to a Unit. Anything but EUR/MWh is rejected.
func parseUnit(currency, measure string) (Unit, error) {
	if strings.EqualFold(currency, "EUR") && strings.EqualFold(measure, "MWH") {
		return EurPerMwh, nil
	}
	return "", fmt.Errorf("%w: %s/%s", ErrUnsupportedUnit, currency, measure)
}

// Resolution is the sampling granularity of a series, encoded as an
// ISO 8601 duration on the wire.
type Resolution string

const (
	QuarterHourly Resolution = "PT15M"
	Hourly        Resolution = "PT60M"
)

func parseResolution(s string) (Resolution, error) {
	switch Resolution(s) {
	case QuarterHourly:
		return QuarterHourly, nil
	case Hourly:
		return Hourly, nil
	}
	return "", fmt.Errorf("%w: invalid resolution %q", ErrMalformedSeries, s)
}

// Duration returns the interval length of one slot at this resolution.
func (r Resolution) Duration() time.Duration {
	switch r {
	case QuarterHourly:
		return 15 * time.Minute
	default:
		return 60 * time.Minute
	}
}
