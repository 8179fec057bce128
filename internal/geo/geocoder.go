// internal/geo/geocoder.go
package geo

import (
	"context"
	"fmt"
	"strconv"

	xerrors "fieldserve/internal/pkg/errors"

	"github.com/go-resty/resty/v2"
)

// Result is one resolved address.
type Result struct {
	Lat              float64
	Lng              float64
	FormattedAddress string
}

// Geocoder resolves a free-form address to coordinates. It is the one
// external collaborator of this service and is treated as opaque.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*Result, error)
}

// Client talks to a Nominatim-compatible search endpoint.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		http: resty.New().SetBaseURL(baseURL),
	}
}

type nominatimHit struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (c *Client) Geocode(ctx context.Context, address string) (*Result, error) {
	var hits []nominatimHit

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":      address,
			"format": "json",
			"limit":  "1",
		}).
		SetResult(&hits).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("geocode request failed: status %d", resp.StatusCode())
	}
	if len(hits) == 0 {
		return nil, xerrors.ErrNotFound
	}

	lat, err := strconv.ParseFloat(hits[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode returned bad latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(hits[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode returned bad longitude: %w", err)
	}

	return &Result{Lat: lat, Lng: lng, FormattedAddress: hits[0].DisplayName}, nil
}
