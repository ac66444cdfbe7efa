// External enrichment providers. Both are opaque network services with a
// fixed response contract; any non-ok status is a hard failure and there
// are no retries here. Timeouts belong to the HTTP client, not to callers.
package provider

import (
	"context"
	"encoding/json"
)

// WeatherProvider looks up weather by city name and YYYY-MM-DD date. The
// payload under the response's "weather" field is passed through verbatim.
type WeatherProvider interface {
	Lookup(ctx context.Context, city, date string) (json.RawMessage, error)
}

// DistanceProvider returns the straight-line distance in kilometers
// between two coordinate pairs.
type DistanceProvider interface {
	Distance(ctx context.Context, fromLat, fromLon, toLat, toLon float64) (float64, error)
}
