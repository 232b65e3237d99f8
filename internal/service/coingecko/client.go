package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/pgmarco11/crypto-strategy-hub-api/internal/domain/models"
	domrepo "github.com/pgmarco11/crypto-strategy-hub-api/internal/domain/repository"
	xhttp "github.com/pgmarco11/crypto-strategy-hub-api/pkg/http"

	"github.com/shopspring/decimal"
)

// Client fetches historical daily closes from the CoinGecko market-chart
// endpoint. One shot per call: no retries, no caching.
type Client struct {
	baseURL string
	apiKey  string
	days    int
	client  *xhttp.Client
	metrics domrepo.Metrics
}

// New creates a CoinGecko market-data client.
func New(baseURL, apiKey string, days int, timeout time.Duration, m domrepo.Metrics) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if days <= 0 {
		days = 365
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		days:    days,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
		metrics: m,
	}
}

// marketChart mirrors the slice of the CoinGecko response we consume.
// Prices come as [unix_ms, close] pairs.
type marketChart struct {
	Prices [][]json.Number `json:"prices"`
}

// History fetches the trailing daily close series for coin against USD and
// converts each point's Unix timestamp to a calendar-day string.
func (c *Client) History(ctx context.Context, coin string) ([]models.HistoricalPoint, error) {
	params := map[string][]string{
		"vs_currency": {"usd"},
		"days":        {strconv.Itoa(c.days)},
		"interval":    {"daily"},
	}
	if c.apiKey != "" {
		params["x_cg_demo_api_key"] = []string{c.apiKey}
	}

	start := time.Now()
	var chart marketChart
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         fmt.Sprintf("%s/coins/%s/market_chart", c.baseURL, coin),
		QueryParams: params,
	}, &chart)
	c.record("coingecko", start, err)
	if err != nil {
		return nil, fmt.Errorf("coingecko market_chart %s: %w", coin, err)
	}

	if chart.Prices == nil {
		return nil, fmt.Errorf("coingecko market_chart %s: missing prices", coin)
	}

	points := make([]models.HistoricalPoint, 0, len(chart.Prices))
	for _, pair := range chart.Prices {
		if len(pair) < 2 {
			return nil, fmt.Errorf("coingecko market_chart %s: malformed price point %v", coin, pair)
		}
		ts, err := unixMillis(pair[0])
		if err != nil {
			return nil, fmt.Errorf("coingecko market_chart %s: bad timestamp %q: %w", coin, pair[0], err)
		}
		value, err := decimal.NewFromString(pair[1].String())
		if err != nil {
			return nil, fmt.Errorf("coingecko market_chart %s: bad close %q: %w", coin, pair[1], err)
		}
		points = append(points, models.HistoricalPoint{
			Date:  time.UnixMilli(ts).UTC().Format("2006-01-02"),
			Value: value,
		})
	}

	return points, nil
}

func (c *Client) record(service string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.metrics.RecordUpstreamRequest(service, outcome)
	c.metrics.RecordUpstreamLatency(service, time.Since(start).Seconds())
}

func unixMillis(n json.Number) (int64, error) {
	if ts, err := n.Int64(); err == nil {
		return ts, nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}

var _ domrepo.MarketData = (*Client)(nil)
