package mlclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Bryan-Binu-2006/Altscore/internal/database"
	"github.com/Bryan-Binu-2006/Altscore/internal/monitoring"
	"github.com/Bryan-Binu-2006/Altscore/internal/resilience"
	"github.com/Bryan-Binu-2006/Altscore/internal/scoring"
)

// breakerConfig tuned for a predictor that is slow to recover: fail fast
// after a few consecutive errors, probe again after a minute.
var breakerConfig = resilience.CircuitBreakerConfig{
	FailureThreshold: 3,
	RecoveryTimeout:  60 * time.Second,
	SuccessThreshold: 2,
}

// PredictRequest is the record posted to the external predictor: the
// applicant's essential info plus the behavioral risk signals.
type PredictRequest struct {
	Info    database.EssentialInfo `json:"info"`
	Signals scoring.AISignals      `json:"signals"`
}

// Client calls the external ML prediction service. A nil-URL client is
// disabled; callers then use the engine's built-in heuristic.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *resilience.CircuitBreaker
	logger     *monitoring.Logger
	metrics    *monitoring.Metrics
}

// NewClient creates a predictor client. An empty baseURL disables it.
func NewClient(baseURL string, timeout time.Duration, logger *monitoring.Logger, metrics *monitoring.Metrics) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    resilience.NewCircuitBreaker(breakerConfig),
		logger:     logger,
		metrics:    metrics,
	}
}

// Enabled reports whether a predictor URL is configured.
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// BreakerState exposes the circuit state for health reporting.
func (c *Client) BreakerState() string {
	return c.breaker.State().String()
}

// Predict posts the record to the predictor. It always returns a usable
// prediction: on any failure (transport, breaker open, bad payload) the
// prediction carries the error sentinel that makes the engine degrade to
// its conservative fallback.
func (c *Client) Predict(ctx context.Context, req PredictRequest) *scoring.MLPrediction {
	if !c.Enabled() {
		return &scoring.MLPrediction{Error: "ml service not configured"}
	}

	var prediction scoring.MLPrediction

	err := c.breaker.Call(func() error {
		p, err := c.predictOnce(ctx, req)
		if err != nil {
			return err
		}
		prediction = *p
		return nil
	})

	success := err == nil
	if c.metrics != nil {
		c.metrics.RecordMLPrediction(!success)
	}
	if err != nil {
		c.logger.Warn("ML prediction failed, engine will use fallback", "error", err)
		return &scoring.MLPrediction{Error: err.Error()}
	}

	return &prediction
}

// predictOnce performs one retried HTTP round trip and decodes the result.
func (c *Client) predictOnce(ctx context.Context, req PredictRequest) (*scoring.MLPrediction, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode prediction request: %w", err)
	}

	endpoint := c.baseURL + "/predict"
	start := time.Now()

	resp, err := resilience.RetryHTTPWithPolicy(ctx, resilience.StandardRetryPolicy, func() (*http.Response, error) {
		httpReq, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if reqErr != nil {
			return nil, reqErr
		}
		httpReq.Header.Set("Content-Type", "application/json")
		return c.httpClient.Do(httpReq)
	})

	duration := time.Since(start)
	if err != nil {
		c.logger.MLServiceLogger(endpoint, 0, duration, false)
		return nil, fmt.Errorf("ml service unreachable: %w", err)
	}
	defer resp.Body.Close()

	c.logger.MLServiceLogger(endpoint, resp.StatusCode, duration, resp.StatusCode == http.StatusOK)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ml service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read prediction response: %w", err)
	}

	var prediction scoring.MLPrediction
	if err := json.Unmarshal(body, &prediction); err != nil {
		return nil, fmt.Errorf("failed to decode prediction response: %w", err)
	}
	if prediction.Error != "" {
		return nil, fmt.Errorf("ml service error: %s", prediction.Error)
	}

	return &prediction, nil
}
