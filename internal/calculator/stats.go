package calculator

import (
	"errors"
	"time"

	"SpotSentinel/internal/entsoe"
)

// Average returns the duration-weighted mean price. Weighting by slot
// length keeps mixed hourly/quarter-hourly days correct.
func Average(prices []entsoe.Price) (float64, error) {
	if len(prices) == 0 {
		return 0, errors.New("no prices provided")
	}
	var sum, total float64
	for _, p := range prices {
		d := p.Resolution.Duration().Seconds()
		sum += p.Price * d
		total += d
	}
	return sum / total, nil
}

// Extremes returns the cheapest and most expensive intervals of the day.
func Extremes(prices []entsoe.Price) (min, max entsoe.Price, err error) {
	if len(prices) == 0 {
		return min, max, errors.New("no prices provided")
	}
	min, max = prices[0], prices[0]
	for _, p := range prices[1:] {
		if p.Price < min.Price {
			min = p
		}
		if p.Price > max.Price {
			max = p
		}
	}
	return min, max, nil
}

// NegativeCount returns the number of intervals priced below zero.
func NegativeCount(prices []entsoe.Price) int {
	n := 0
	for _, p := range prices {
		if p.Price < 0 {
			n++
		}
	}
	return n
}

// CheapestRun finds the contiguous run of at least span with the
// lowest duration-weighted average price, for shifting flexible load.
// Prices must be gap-free and ordered, which the fetch pipeline
// guarantees.
func CheapestRun(prices []entsoe.Price, span time.Duration) (start time.Time, avg float64, err error) {
	if len(prices) == 0 {
		return start, 0, errors.New("no prices provided")
	}
	if span <= 0 {
		return start, 0, errors.New("span must be positive")
	}

	best := false
	lo := 0
	var sum, window float64
	for hi := 0; hi < len(prices); hi++ {
		d := prices[hi].Resolution.Duration().Seconds()
		sum += prices[hi].Price * d
		window += d
		for window >= span.Seconds() {
			a := sum / window
			if !best || a < avg {
				best = true
				start = prices[lo].StartTime
				avg = a
			}
			loDur := prices[lo].Resolution.Duration().Seconds()
			sum -= prices[lo].Price * loDur
			window -= loDur
			lo++
		}
	}
	if !best {
		return start, 0, errors.New("day shorter than requested span")
	}
	return start, avg, nil
}
