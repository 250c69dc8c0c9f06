package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrNoMatch is returned when the provider has no result for the address.
// ErrUnavailable covers network failures, timeouts and malformed responses.
// Both are non-fatal: callers save the location text and skip coordinates.
var (
	ErrNoMatch     = errors.New("geocode: no match for address")
	ErrUnavailable = errors.New("geocode: service unavailable")
)

// Coordinates are stored as strings with 5 decimal places, matching what
// the map API expects in marker locations.
type Coordinates struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

type Client struct {
	baseURL string
	key     string
	http    *http.Client
}

// NewClient builds a client for the forward-geocoding endpoint. The request
// blocks the calling handler, so the timeout stays short.
func NewClient(baseURL, key string) *Client {
	return &Client{
		baseURL: baseURL,
		key:     key,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// geocodeResponse mirrors the provider's JSON; coordinates arrive in
// [longitude, latitude] order.
type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Lookup resolves a free-text address into coordinates.
func (c *Client) Lookup(ctx context.Context, address string) (Coordinates, error) {
	if address == "" {
		return Coordinates{}, ErrNoMatch
	}

	endpoint := fmt.Sprintf("%s/places/%s.json?access_token=%s",
		c.baseURL, url.PathEscape(address), url.QueryEscape(c.key))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Coordinates{}, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Coordinates{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(body.Features) == 0 || len(body.Features[0].Geometry.Coordinates) < 2 {
		return Coordinates{}, ErrNoMatch
	}

	coords := body.Features[0].Geometry.Coordinates
	return Coordinates{
		Latitude:  strconv.FormatFloat(coords[1], 'f', 5, 64),
		Longitude: strconv.FormatFloat(coords[0], 'f', 5, 64),
	}, nil
}
