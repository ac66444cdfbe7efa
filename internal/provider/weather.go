package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// WeatherClient implements WeatherProvider over the weather service's
// HTTP API.
type WeatherClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewWeatherClient(baseURL string, timeout time.Duration) *WeatherClient {
	return &WeatherClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

func (c *WeatherClient) Lookup(ctx context.Context, city, date string) (json.RawMessage, error) {
	params := url.Values{
		"city": {city},
		"date": {date},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request for %s: %w", city, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("weather API error: status %d: %s", resp.StatusCode, body)
	}

	var payload weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode weather response: %w", err)
	}
	if payload.Weather == nil {
		return nil, fmt.Errorf("weather response for %s has no weather field", city)
	}

	return payload.Weather, nil
}

type weatherResponse struct {
	Weather json.RawMessage `json:"weather"`
}
