package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"food-truck-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("access_token"))
		w.Header().Set("Content-Type", "application/json")
		// Provider order is [longitude, latitude]
		w.Write([]byte(`{"features":[{"geometry":{"coordinates":[-90.540287,41.520251]}}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	coords, err := client.Lookup(context.Background(), "200 Main St, Davenport IA")
	require.NoError(t, err)
	assert.Equal(t, "41.52025", coords.Latitude)
	assert.Equal(t, "-90.54029", coords.Longitude)
}

func TestLookupNoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.Lookup(context.Background(), "nowhere at all")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestLookupMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.Lookup(context.Background(), "200 Main St")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestLookupServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.Lookup(context.Background(), "200 Main St")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestLookupUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewClient(server.URL, "test-key")
	_, err := client.Lookup(context.Background(), "200 Main St")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestLookupEmptyAddress(t *testing.T) {
	client := NewClient("http://unused.invalid", "test-key")
	_, err := client.Lookup(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestStaticMapURL(t *testing.T) {
	trucks := []models.Truck{
		{Name: "Geocoded", Latitude: "41.52025", Longitude: "-90.54029"},
		{Name: "Never geocoded"},
		{Name: "Also geocoded", Latitude: "41.50000", Longitude: "-90.50000"},
	}

	url := StaticMapURL("https://maps.example.com/staticmap", "test-key", trucks)
	assert.Contains(t, url, "41.52025%2C-90.54029")
	assert.Contains(t, url, "41.50000%2C-90.50000")
	assert.Contains(t, url, "key=test-key")
	assert.Contains(t, url, "zoom=12")
}
