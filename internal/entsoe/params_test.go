package entsoe

import (
	"errors"
	"testing"
	"time"
)

func TestPriceRequestInvalidWindow(t *testing.T) {
	if _, err := priceRequest(base, base, Finland, "token"); !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("start == end: got %v, want ErrInvalidWindow", err)
	}
	if _, err := priceRequest(base.Add(time.Hour), base, Finland, "token"); !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("start > end: got %v, want ErrInvalidWindow", err)
	}
}

func TestPriceRequestClampsLongWindow(t *testing.T) {
	end := base.AddDate(2, 0, 0)
	p, err := priceRequest(base, end, Finland, "token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := base.Add(maxRequestDays * 24 * time.Hour)
	if !p.end.Equal(want) {
		t.Errorf("clamped end = %v, want %v", p.end, want)
	}

	// a short window is left untouched
	p, err = priceRequest(base, base.Add(time.Hour), Finland, "token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.end.Equal(base.Add(time.Hour)) {
		t.Errorf("end = %v, want %v", p.end, base.Add(time.Hour))
	}
}

func TestParamsValues(t *testing.T) {
	p, err := priceRequest(base, base.Add(24*time.Hour), Finland, "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v := p.values()

	want := map[string]string{
		"documentType":                  "A44",
		"periodStart":                   "202412200500",
		"periodEnd":                     "202412210500",
		"in_Domain":                     string(Finland),
		"out_Domain":                    string(Finland),
		"contract_MarketAgreement.type": "A01",
		"securityToken":                 "secret",
	}
	for key, w := range want {
		if got := v.Get(key); got != w {
			t.Errorf("%s = %q, want %q", key, got, w)
		}
	}
}

func TestFormatTimestampConvertsToUTC(t *testing.T) {
	helsinki := time.FixedZone("EET", 2*60*60)
	local := time.Date(2024, 12, 20, 7, 0, 0, 0, helsinki)
	if got := formatTimestamp(local); got != "202412200500" {
		t.Errorf("formatTimestamp = %q, want 202412200500", got)
	}
}

func TestParamsAdvance(t *testing.T) {
	end := base.AddDate(2, 0, 0)
	p, err := priceRequest(base, end, Finland, "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cov := base.Add(maxRequestDays * 24 * time.Hour)
	next, err := p.advance(cov, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !next.start.Equal(cov) {
		t.Errorf("next start = %v, want %v", next.start, cov)
	}
	if !next.end.Equal(end) {
		t.Errorf("next end = %v, want %v", next.end, end)
	}
	if next.token != "secret" || next.domain != Finland {
		t.Error("advance must preserve token and domain")
	}
	// the original page is untouched
	if !p.start.Equal(base) {
		t.Errorf("original start mutated to %v", p.start)
	}

	if _, err := p.advance(end, end); !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("empty advance window: got %v, want ErrInvalidWindow", err)
	}
}
