package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeatherClientLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Delhi", r.URL.Query().Get("city"))
		assert.Equal(t, "2025-06-15", r.URL.Query().Get("date"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"weather":{"temp_c":31,"summary":"clear"}}`))
	}))
	defer srv.Close()

	c := NewWeatherClient(srv.URL, 5*time.Second)
	payload, err := c.Lookup(context.Background(), "Delhi", "2025-06-15")
	require.NoError(t, err)
	assert.JSONEq(t, `{"temp_c":31,"summary":"clear"}`, string(payload))
}

func TestWeatherClientNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewWeatherClient(srv.URL, 5*time.Second)
	_, err := c.Lookup(context.Background(), "Delhi", "2025-06-15")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestWeatherClientMissingWeatherField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"forecast":"sunny"}`))
	}))
	defer srv.Close()

	c := NewWeatherClient(srv.URL, 5*time.Second)
	_, err := c.Lookup(context.Background(), "Delhi", "2025-06-15")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no weather field")
}

func TestDistanceClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "28.6", r.URL.Query().Get("from_latitude"))
		assert.Equal(t, "77.2", r.URL.Query().Get("from_longitude"))
		assert.Equal(t, "19.076", r.URL.Query().Get("to_latitude"))
		assert.Equal(t, "72.8777", r.URL.Query().Get("to_longitude"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"distance":1153.42}`))
	}))
	defer srv.Close()

	c := NewDistanceClient(srv.URL, 5*time.Second)
	km, err := c.Distance(context.Background(), 28.6, 77.2, 19.076, 72.8777)
	require.NoError(t, err)
	assert.Equal(t, 1153.42, km)
}

func TestDistanceClientNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewDistanceClient(srv.URL, 5*time.Second)
	_, err := c.Distance(context.Background(), 0, 0, 1, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestDistanceClientMissingDistanceField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"km":12}`))
	}))
	defer srv.Close()

	c := NewDistanceClient(srv.URL, 5*time.Second)
	_, err := c.Distance(context.Background(), 0, 0, 1, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no distance field")
}
