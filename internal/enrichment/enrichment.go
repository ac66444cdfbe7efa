// Per-page provider fan-out. For every event on a page one weather and
// one distance lookup run concurrently; results are joined back onto the
// originating events strictly by index so slot i always belongs to the
// event that issued call i.
package enrichment

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/akashsahu123/event-management/internal/entity"
	"github.com/akashsahu123/event-management/internal/provider"
)

type Engine struct {
	weather  provider.WeatherProvider
	distance provider.DistanceProvider
}

func NewEngine(weather provider.WeatherProvider, distance provider.DistanceProvider) *Engine {
	return &Engine{weather: weather, distance: distance}
}

// Enrich issues all 2N lookups at once and waits for every one of them to
// finish. The page size bound keeps the goroutine count small, so no cap
// is applied. A single failed call fails the whole page: no partial
// results leave this function. In-flight calls are not cancelled when a
// sibling fails; the join resolves only after every outcome is known.
func (e *Engine) Enrich(ctx context.Context, events []entity.EventRow, userLat, userLon float64) ([]entity.EnrichedEvent, error) {
	n := len(events)

	weathers := make([]json.RawMessage, n)
	distances := make([]float64, n)
	errs := make([]error, 2*n)

	var wg sync.WaitGroup
	for i, event := range events {
		wg.Add(2)

		go func(i int, city, date string) {
			defer wg.Done()
			weathers[i], errs[i] = e.weather.Lookup(ctx, city, date)
		}(i, event.CityName, event.Date)

		go func(i int, lat, lon float64) {
			defer wg.Done()
			distances[i], errs[n+i] = e.distance.Distance(ctx, userLat, userLon, lat, lon)
		}(i, event.Latitude, event.Longitude)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, &entity.EnrichmentError{Err: err}
		}
	}

	enriched := make([]entity.EnrichedEvent, n)
	for i, event := range events {
		enriched[i] = entity.EnrichedEvent{
			EventName:  event.EventName,
			CityName:   event.CityName,
			Date:       event.Date,
			Weather:    weathers[i],
			DistanceKm: distances[i],
		}
	}

	return enriched, nil
}
