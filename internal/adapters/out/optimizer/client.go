// Package optimizer is the HTTP gateway to the external route optimization
// service. The service is advisory: it suggests a visit order, and the route
// aggregate decides whether to apply it. Transient failures are retried here
// so callers see a single verdict.
package optimizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/ports"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultMaxRetries = 2
	retryBackoff      = 500 * time.Millisecond
)

// ErrOptimizerUnavailable marks failures where the service never produced a
// usable answer. Callers treat it as "no suggestion", not as a hard failure.
var ErrOptimizerUnavailable = errors.New("route optimizer is unavailable")

// Client implements ports.RouteOptimizer over the optimizer's JSON API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
}

// NewClient creates an optimizer client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		maxRetries: defaultMaxRetries,
	}
}

type optimizeRequestBody struct {
	RouteID   string             `json:"routeId"`
	Vehicle   string             `json:"vehicle"`
	StartTime time.Time          `json:"startTime"`
	Waypoints []optimizeWaypoint `json:"waypoints"`
}

type optimizeWaypoint struct {
	StopID    string  `json:"stopId"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type optimizeResponseBody struct {
	Sequence []string `json:"sequence"`
	Skipped  []string `json:"skipped"`
}

// Optimize submits the waypoints and returns the suggested visit order.
// Server errors and connection failures are retried with a short backoff;
// a 4xx answer is returned immediately since resubmitting the same payload
// cannot change it.
func (c *Client) Optimize(
	ctx context.Context,
	req ports.OptimizeRequest,
) (ports.OptimizeResponse, error) {
	body := optimizeRequestBody{
		RouteID:   req.RouteID.String(),
		Vehicle:   req.Vehicle,
		StartTime: req.StartTime,
		Waypoints: make([]optimizeWaypoint, 0, len(req.Waypoints)),
	}
	for _, wp := range req.Waypoints {
		body.Waypoints = append(body.Waypoints, optimizeWaypoint{
			StopID:    wp.StopID.String(),
			Latitude:  wp.Latitude,
			Longitude: wp.Longitude,
		})
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return ports.OptimizeResponse{}, err
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ports.OptimizeResponse{}, ctx.Err()
			case <-time.After(retryBackoff):
			}
		}

		response, retryable, attemptErr := c.post(ctx, payload)
		if attemptErr == nil {
			return response, nil
		}

		lastErr = attemptErr
		if !retryable {
			return ports.OptimizeResponse{}, attemptErr
		}
	}

	return ports.OptimizeResponse{}, fmt.Errorf("%w: %w", ErrOptimizerUnavailable, lastErr)
}

func (c *Client) post(
	ctx context.Context,
	payload []byte,
) (ports.OptimizeResponse, bool, error) {
	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/optimize", bytes.NewReader(payload),
	)
	if err != nil {
		return ports.OptimizeResponse{}, false, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return ports.OptimizeResponse{}, true, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode >= http.StatusInternalServerError {
		return ports.OptimizeResponse{}, true,
			fmt.Errorf("optimizer returned status %d", httpResp.StatusCode)
	}
	if httpResp.StatusCode != http.StatusOK {
		return ports.OptimizeResponse{}, false,
			fmt.Errorf("optimizer rejected request with status %d", httpResp.StatusCode)
	}

	var body optimizeResponseBody
	if decodeErr := json.NewDecoder(httpResp.Body).Decode(&body); decodeErr != nil {
		return ports.OptimizeResponse{}, true, decodeErr
	}

	response := ports.OptimizeResponse{
		Sequence: make([]kernel.UUID, 0, len(body.Sequence)),
		Skipped:  make([]kernel.UUID, 0, len(body.Skipped)),
	}
	for _, raw := range body.Sequence {
		stopID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return ports.OptimizeResponse{}, false, idErr
		}
		response.Sequence = append(response.Sequence, stopID)
	}
	for _, raw := range body.Skipped {
		stopID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return ports.OptimizeResponse{}, false, idErr
		}
		response.Skipped = append(response.Skipped, stopID)
	}

	return response, false, nil
}
