package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DistanceClient implements DistanceProvider over the distance service's
// HTTP API.
type DistanceClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewDistanceClient(baseURL string, timeout time.Duration) *DistanceClient {
	return &DistanceClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

func (c *DistanceClient) Distance(ctx context.Context, fromLat, fromLon, toLat, toLon float64) (float64, error) {
	params := url.Values{
		"from_latitude":  {formatCoord(fromLat)},
		"from_longitude": {formatCoord(fromLon)},
		"to_latitude":    {formatCoord(toLat)},
		"to_longitude":   {formatCoord(toLon)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("create distance request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("distance request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("distance API error: status %d: %s", resp.StatusCode, body)
	}

	var payload distanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("decode distance response: %w", err)
	}
	if payload.Distance == nil {
		return 0, fmt.Errorf("distance response has no distance field")
	}

	return *payload.Distance, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type distanceResponse struct {
	Distance *float64 `json:"distance"`
}
