package entsoe

import (
	"errors"
	"net/url"
	"time"
)

// ErrInvalidWindow is returned when a requested window has a start at
// or after its end.
var ErrInvalidWindow = errors.New("end time must be greater than start time")

const (
	// marketAgreementType selects day-ahead contracts (A07 would be intraday).
	marketAgreementType = "A01"

	// maxRequestDays is the longest span the API serves in one response.
	maxRequestDays = 360
)

// params holds the query parameters of one API request. A params
// value is never mutated; pagination derives the next page with
// advance.
type params struct {
	documentType DocumentType
	domain       Domain
	start, end   time.Time
	token        string
}

// priceRequest builds the parameters for an energy price request,
// clamping the end to at most 360 days from the start to match the
// API limit.
func priceRequest(start, end time.Time, domain Domain, token string) (params, error) {
	if !start.Before(end) {
		return params{}, ErrInvalidWindow
	}
	return params{
		documentType: PriceDocument,
		domain:       domain,
		start:        start,
		end:          clampEnd(start, end),
		token:        token,
	}, nil
}

func clampEnd(start, end time.Time) time.Time {
	limit := start.Add(maxRequestDays * 24 * time.Hour)
	if end.After(limit) {
		return limit
	}
	return end
}

// advance returns the parameters for the next page, starting where
// the previous response's coverage ended.
func (p params) advance(start, end time.Time) (params, error) {
	return priceRequest(start, end, p.domain, p.token)
}

func (p params) values() url.Values {
	v := url.Values{}
	v.Set("documentType", string(p.documentType))
	v.Set("periodStart", formatTimestamp(p.start))
	v.Set("periodEnd", formatTimestamp(p.end))
	v.Set("in_Domain", string(p.domain))
	v.Set("out_Domain", string(p.domain))
	v.Set("contract_MarketAgreement.type", marketAgreementType)
	v.Set("securityToken", p.token)
	return v
}

// formatTimestamp renders a request timestamp as UTC YYYYMMDDHHMM.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format("200601021504")
}
