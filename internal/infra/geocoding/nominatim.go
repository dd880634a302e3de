// Package geocoding implements service.Geocoder against an OpenStreetMap Nominatim-compatible API.
package geocoding

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"courier/config"
	"courier/internal/domain/entity"
	"courier/internal/domain/geo"
	"courier/internal/domain/service"
	"courier/internal/errors"
)

// DefaultDelay is the spacing the public Nominatim usage policy asks for between requests.
const DefaultDelay = time.Second

type nominatimClient struct {
	baseURL        string
	userAgent      string
	acceptLanguage string
	client         *http.Client
	logger         *slog.Logger
}

// NewNominatimClient creates the geocoder from the geocoding config section
func NewNominatimClient(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	gc := cfg.Geocoding

	return &nominatimClient{
		baseURL:        strings.TrimRight(gc.BaseURL, "/"),
		userAgent:      gc.UserAgent,
		acceptLanguage: gc.AcceptLanguage,
		client:         &http.Client{Timeout: gc.Timeout},
		logger:         logger,
	}
}

type searchHit struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type reverseHit struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// GeocodeAddress returns the top match or nil.
func (c *nominatimClient) GeocodeAddress(ctx context.Context, address, country string) *entity.GeocodeResult {
	query := url.Values{}
	query.Set("format", "json")
	query.Set("limit", "1")
	query.Set("q", address)
	if country != "" {
		query.Set("countrycodes", strings.ToLower(country))
	}

	var hits []searchHit
	if err := c.get(ctx, "/search", query, &hits); err != nil {
		c.logger.Warn("Geocode request failed", slog.Any("error", err))

		return nil
	}
	if len(hits) == 0 {
		return nil
	}

	lat, latErr := strconv.ParseFloat(hits[0].Lat, 64)
	lng, lngErr := strconv.ParseFloat(hits[0].Lon, 64)
	if latErr != nil || lngErr != nil || !geo.IsValidLatLng(lat, lng) {
		c.logger.Warn("Geocode returned unusable coordinates",
			slog.String("lat", hits[0].Lat),
			slog.String("lon", hits[0].Lon),
		)

		return nil
	}

	return &entity.GeocodeResult{
		Latitude:    lat,
		Longitude:   lng,
		DisplayName: hits[0].DisplayName,
	}
}

// ReverseGeocode returns the display name for the point or nil.
func (c *nominatimClient) ReverseGeocode(ctx context.Context, lat, lng float64) *string {
	query := url.Values{}
	query.Set("format", "json")
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))

	var hit reverseHit
	if err := c.get(ctx, "/reverse", query, &hit); err != nil {
		c.logger.Warn("Reverse geocode request failed", slog.Any("error", err))

		return nil
	}
	if hit.Error != "" || hit.DisplayName == "" {
		return nil
	}

	return &hit.DisplayName
}

func (c *nominatimClient) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if c.acceptLanguage != "" {
		req.Header.Set("Accept-Language", c.acceptLanguage)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "geocoding transport")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("geocoding returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode geocoding response")
	}

	return nil
}

// IsValidCoordinates reports whether both values are present and inside Earth bounds.
func IsValidCoordinates(lat, lng *float64) bool {
	if lat == nil || lng == nil {
		return false
	}

	return geo.IsValidLatLng(*lat, *lng)
}

// Delay waits d (DefaultDelay when d <= 0) or until ctx is done.
func Delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		d = DefaultDelay
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
