package provider

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// CachedWeather decorates a WeatherProvider with a Redis cache keyed by
// (city, date). Cache errors degrade to a miss: the wrapped provider is
// the source of truth and a broken cache never fails a lookup.
type CachedWeather struct {
	inner  WeatherProvider
	client *redis.Client
	ttl    time.Duration
}

func NewCachedWeather(inner WeatherProvider, client *redis.Client, ttl time.Duration) *CachedWeather {
	return &CachedWeather{
		inner:  inner,
		client: client,
		ttl:    ttl,
	}
}

func (c *CachedWeather) Lookup(ctx context.Context, city, date string) (json.RawMessage, error) {
	key := "weather:" + city + ":" + date

	cached, err := c.client.Get(ctx, key).Result()
	if err == nil {
		return json.RawMessage(cached), nil
	}
	if err != redis.Nil {
		logrus.WithError(err).Warn("Weather cache read failed, falling through to provider")
	}

	payload, err := c.inner.Lookup(ctx, city, date)
	if err != nil {
		return nil, err
	}

	if err := c.client.Set(ctx, key, []byte(payload), c.ttl).Err(); err != nil {
		logrus.WithError(err).Warn("Weather cache write failed")
	}

	return payload, nil
}
