package entsoe

import (
	"fmt"
	"iter"
	"time"
)

// Price is one spot-price interval: the price holds from StartTime
// until StartTime plus one resolution slot.
type Price struct {
	StartTime  time.Time
	Resolution Resolution
	Price      float64
	Unit       Unit
}

// EndTime returns the exclusive end of the interval.
func (p Price) EndTime() time.Time {
	return p.StartTime.Add(p.Resolution.Duration())
}

func (p Price) String() string {
	return fmt.Sprintf("%s -- %s: %.2f %s",
		p.StartTime.Format(time.RFC3339), p.EndTime().Format(time.RFC3339), p.Price, p.Unit)
}

// pricesUntil repeats one value at the given cadence from start up to
// (not including) end. Returns false once the consumer stops pulling.
func pricesUntil(yield func(Price) bool, start, end time.Time, res Resolution, price float64, unit Unit) bool {
	for start.Before(end) {
		if !yield(Price{StartTime: start, Resolution: res, Price: price, Unit: unit}) {
			return false
		}
		start = start.Add(res.Duration())
	}
	return true
}

// Interpolate turns a sparse, start-time-ordered point sequence into a
// dense stream tiling [start, end) with no gaps and no duplicate
// start times. The API omits repeated values, so every gap between
// consecutive reported points is filled by carrying the previous
// point's value forward at that point's own cadence; the sub-window
// before the first reported point is filled with the first point's
// value, as no earlier value exists inside the window.
//
// The stream is produced lazily; nothing is materialized even for
// multi-month windows at quarter-hourly cadence.
func Interpolate(points []Price, start, end time.Time) iter.Seq[Price] {
	return func(yield func(Price) bool) {
		first := -1
		for i, p := range points {
			if !p.StartTime.Before(start) {
				first = i
				break
			}
		}
		if first < 0 || !points[first].StartTime.Before(end) {
			return
		}

		prev := points[first]
		if !pricesUntil(yield, start, prev.StartTime, prev.Resolution, prev.Price, prev.Unit) {
			return
		}
		if !yield(prev) {
			return
		}

		for _, p := range points[first+1:] {
			gapEnd := p.StartTime
			if end.Before(gapEnd) {
				gapEnd = end
			}
			if !pricesUntil(yield, prev.EndTime(), gapEnd, prev.Resolution, prev.Price, prev.Unit) {
				return
			}
			if !p.StartTime.Before(end) {
				return
			}
			if !yield(p) {
				return
			}
			prev = p
		}

		pricesUntil(yield, prev.EndTime(), end, prev.Resolution, prev.Price, prev.Unit)
	}
}
