// Package googlemaps resolves road distances through the Google Distance
// Matrix API. Provider failures never surface as errors: the outcome is
// encoded in the RoadDistance status so callers always take an explicit
// degradation branch.
package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/ports"
)

const (
	defaultBaseURL = "https://maps.googleapis.com/maps/api/distancematrix/json"
	requestTimeout = 5 * time.Second
)

// Client implements MapService against the Distance Matrix API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL points the client at a different endpoint, used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

// NewClient creates a Distance Matrix client. An empty apiKey is
// tolerated at construction so the application can boot without the
// integration; every lookup then reports DistanceMisconfigured.
func NewClient(apiKey string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: requestTimeout},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// distanceMatrixResponse mirrors the fields we read from the API.
type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Meters int `json:"value"`
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

// RoadDistance returns the road distance between two points. Transient
// provider trouble reports DistanceUnavailable; a rejected or missing
// API key reports DistanceMisconfigured.
func (c *Client) RoadDistance(ctx context.Context, from, to kernel.GeoPoint) ports.RoadDistance {
	if c.apiKey == "" {
		c.logger.Error("distance matrix api key is not configured")
		return ports.RoadDistance{Status: ports.DistanceMisconfigured}
	}

	query := url.Values{}
	query.Set("origins", fmt.Sprintf("%f,%f", from.Latitude(), from.Longitude()))
	query.Set("destinations", fmt.Sprintf("%f,%f", to.Latitude(), to.Longitude()))
	query.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		c.logger.Warn("building distance matrix request failed", "error", err)
		return ports.RoadDistance{Status: ports.DistanceUnavailable}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("distance matrix request failed", "error", err)
		return ports.RoadDistance{Status: ports.DistanceUnavailable}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("distance matrix returned unexpected status", "status", resp.StatusCode)
		return ports.RoadDistance{Status: ports.DistanceUnavailable}
	}

	var payload distanceMatrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Warn("decoding distance matrix response failed", "error", err)
		return ports.RoadDistance{Status: ports.DistanceUnavailable}
	}

	if payload.Status == "REQUEST_DENIED" {
		c.logger.Error("distance matrix request denied, check the api key")
		return ports.RoadDistance{Status: ports.DistanceMisconfigured}
	}
	if payload.Status != "OK" || len(payload.Rows) == 0 || len(payload.Rows[0].Elements) == 0 {
		c.logger.Warn("distance matrix response is unusable", "status", payload.Status)
		return ports.RoadDistance{Status: ports.DistanceUnavailable}
	}

	element := payload.Rows[0].Elements[0]
	if element.Status != "OK" {
		c.logger.Warn("no route between points", "status", element.Status)
		return ports.RoadDistance{Status: ports.DistanceUnavailable}
	}

	return ports.RoadDistance{
		Km:     float64(element.Distance.Meters) / 1000.0,
		Status: ports.DistanceOK,
	}
}
