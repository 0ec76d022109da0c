package entsoe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"net/http"
	"net/url"
	"time"
)

// ErrMissingToken is returned when no security token is configured.
var ErrMissingToken = errors.New("security token missing")

const (
	apiURL         = "https://web-api.tp.entsoe.eu/api"
	requestTimeout = 20 * time.Second

	// pageDelay is the fixed pause before each continuation request.
	pageDelay = time.Second
)

// Client queries the ENTSO-E transparency platform for day-ahead spot
// prices in a single bidding zone.
type Client struct {
	baseURL   string
	domain    Domain
	token     string
	client    *http.Client
	pageDelay time.Duration
}

// NewClient creates a client with optional proxy support.
func NewClient(token string, domain Domain, proxyURL string) *Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &Client{
		baseURL: apiURL,
		domain:  domain,
		token:   token,
		client: &http.Client{
			Timeout:   requestTimeout,
			Transport: transport,
		},
		pageDelay: pageDelay,
	}
}

// Prices returns a lazy stream of prices covering exactly
// [start, end) in strictly increasing start-time order, with gaps
// filled by carrying the last known value forward. The API serves at
// most 360 days per request; the stream issues follow-up requests
// only while the caller keeps pulling, so abandoning it stops
// pagination. Window and token errors surface here, before any
// network activity; transport and parse errors terminate the stream
// as its final element.
func (c *Client) Prices(ctx context.Context, start, end time.Time) (iter.Seq2[Price, error], error) {
	if c.token == "" {
		return nil, ErrMissingToken
	}
	req, err := priceRequest(start, end, c.domain, c.token)
	if err != nil {
		return nil, err
	}

	return func(yield func(Price, error) bool) {
		page := req
		for {
			doc, err := c.fetchDocument(ctx, page)
			if err != nil {
				yield(Price{}, err)
				return
			}
			for p, err := range doc.prices(start, end) {
				if !yield(p, err) || err != nil {
					return
				}
			}
			cov, err := doc.coverageEnd()
			if err != nil {
				yield(Price{}, err)
				return
			}
			if cov == nil || !cov.Before(end) {
				return
			}
			page, err = page.advance(*cov, end)
			if err != nil {
				yield(Price{}, err)
				return
			}
			select {
			case <-ctx.Done():
				yield(Price{}, ctx.Err())
				return
			case <-time.After(c.pageDelay):
			}
		}
	}, nil
}

func (c *Client) fetchDocument(ctx context.Context, p params) (*marketDocument, error) {
	u := c.baseURL + "?" + p.values().Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("entsoe fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("entsoe read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("entsoe: status %d, body: %s", resp.StatusCode, string(body))
	}
	return parseDocument(body)
}
