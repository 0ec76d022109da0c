package entsoe

import (
	"encoding/xml"
	"errors"
	"fmt"
	"iter"
	"time"
)

// ErrMalformedSeries is returned when a response violates the
// expected schema: a missing period, resolution, unit, interval
// bound, point position or point value.
var ErrMalformedSeries = errors.New("malformed time series")

// marketDocument mirrors the Publication_MarketDocument response.
// Struct tags match local element names regardless of namespace.
type marketDocument struct {
	PeriodInterval *timeInterval `xml:"period.timeInterval"`
	TimeSeries     []timeSeries  `xml:"TimeSeries"`
}

type timeSeries struct {
	Currency string  `xml:"currency_Unit.name"`
	Measure  string  `xml:"price_Measure_Unit.name"`
	Period   *period `xml:"Period"`
}

type period struct {
	Interval   *timeInterval `xml:"timeInterval"`
	Resolution string        `xml:"resolution"`
	Points     []point       `xml:"Point"`
}

// point is one sparse observation. Pointers distinguish a missing
// element from a zero value.
type point struct {
	Position *int     `xml:"position"`
	Amount   *float64 `xml:"price.amount"`
}

type timeInterval struct {
	Start string `xml:"start"`
	End   string `xml:"end"`
}

// ENTSO-E intervals carry minute precision without seconds; RFC 3339
// forms appear as well.
var timestampLayouts = []string{"2006-01-02T15:04Z07:00", time.RFC3339}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

func parseDocument(data []byte) (*marketDocument, error) {
	doc := &marketDocument{}
	if err := xml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("entsoe decode: %w", err)
	}
	return doc, nil
}

// coverageEnd reports the timestamp up to which the server claims to
// have supplied data, read from the response envelope. nil means no
// further data exists.
func (d *marketDocument) coverageEnd() (*time.Time, error) {
	if d.PeriodInterval == nil || d.PeriodInterval.End == "" {
		return nil, nil
	}
	t, err := parseTimestamp(d.PeriodInterval.End)
	if err != nil {
		return nil, fmt.Errorf("coverage end: %w", err)
	}
	return &t, nil
}

// parse validates one TimeSeries block and materializes its sparse
// points in document order, returning them with the block's declared
// interval. Point start times derive from the 1-based position:
// interval start + resolution * (position - 1).
func (ts *timeSeries) parse() (points []Price, start, end time.Time, err error) {
	if ts.Period == nil {
		return nil, start, end, fmt.Errorf("%w: period missing", ErrMalformedSeries)
	}
	if ts.Currency == "" || ts.Measure == "" {
		return nil, start, end, fmt.Errorf("%w: unit missing", ErrMalformedSeries)
	}
	unit, err := parseUnit(ts.Currency, ts.Measure)
	if err != nil {
		return nil, start, end, err
	}
	if ts.Period.Resolution == "" {
		return nil, start, end, fmt.Errorf("%w: resolution missing", ErrMalformedSeries)
	}
	res, err := parseResolution(ts.Period.Resolution)
	if err != nil {
		return nil, start, end, err
	}
	if ts.Period.Interval == nil || ts.Period.Interval.Start == "" || ts.Period.Interval.End == "" {
		return nil, start, end, fmt.Errorf("%w: period interval missing", ErrMalformedSeries)
	}
	start, err = parseTimestamp(ts.Period.Interval.Start)
	if err != nil {
		return nil, start, end, fmt.Errorf("%w: %v", ErrMalformedSeries, err)
	}
	end, err = parseTimestamp(ts.Period.Interval.End)
	if err != nil {
		return nil, start, end, fmt.Errorf("%w: %v", ErrMalformedSeries, err)
	}

	points = make([]Price, 0, len(ts.Period.Points))
	for _, p := range ts.Period.Points {
		if p.Position == nil || p.Amount == nil {
			return nil, start, end, fmt.Errorf("%w: point position or price missing", ErrMalformedSeries)
		}
		points = append(points, Price{
			StartTime:  start.Add(res.Duration() * time.Duration(*p.Position-1)),
			Resolution: res,
			Price:      *p.Amount,
			Unit:       unit,
		})
	}
	return points, start, end, nil
}

// prices yields the interpolated prices of every series block in
// document order, each clipped to [start, end). Blocks are not merged
// or deduplicated; pagination keeps successive responses disjoint.
func (d *marketDocument) prices(start, end time.Time) iter.Seq2[Price, error] {
	return func(yield func(Price, error) bool) {
		for i := range d.TimeSeries {
			points, blockStart, blockEnd, err := d.TimeSeries[i].parse()
			if err != nil {
				yield(Price{}, err)
				return
			}
			if blockStart.Before(start) {
				blockStart = start
			}
			if end.Before(blockEnd) {
				blockEnd = end
			}
			for p := range Interpolate(points, blockStart, blockEnd) {
				if !yield(p, nil) {
					return
				}
			}
		}
	}
}
