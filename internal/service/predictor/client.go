package predictor

import (
	"context"
	"fmt"
	"time"

	domrepo "github.com/pgmarco11/crypto-strategy-hub-api/internal/domain/repository"
	xhttp "github.com/pgmarco11/crypto-strategy-hub-api/pkg/http"
)

const predictPath = "/api/predict"

// Client forwards a historical price series to the locally-addressed
// prediction service and hands its body back untouched.
type Client struct {
	baseURL string
	client  *xhttp.Client
	metrics domrepo.Metrics
}

// New creates a prediction-service client.
func New(baseURL string, timeout time.Duration, m domrepo.Metrics) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
		metrics: m,
	}
}

type predictRequest struct {
	HistoricalData interface{} `json:"historical_data"`
}

// Predict posts the history to the prediction service and returns the raw
// response body.
func (c *Client) Predict(ctx context.Context, history interface{}) ([]byte, error) {
	start := time.Now()
	var body []byte
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    c.baseURL + predictPath,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: predictRequest{HistoricalData: history},
	}, &body)
	c.record(start, err)
	if err != nil {
		return nil, fmt.Errorf("post predict: %w", err)
	}
	return body, nil
}

func (c *Client) record(start time.Time, err error) {
	if c.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.metrics.RecordUpstreamRequest("prediction", outcome)
	c.metrics.RecordUpstreamLatency("prediction", time.Since(start).Seconds())
}

var _ domrepo.Predictor = (*Client)(nil)
