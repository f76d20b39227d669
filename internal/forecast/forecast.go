// Package forecast is the gateway to the external surf forecast provider.
package forecast

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/charmbracelet/log"
	"github.com/jon4hz/surfcast/internal/config"
)

// Facet is one of the four independent forecast data categories.
type Facet string

const (
	FacetWave       Facet = "wave"
	FacetWind       Facet = "wind"
	FacetWeather    Facet = "weather"
	FacetConditions Facet = "conditions"
)

// Facets lists all facets in the order they are displayed.
var Facets = []Facet{FacetWave, FacetWind, FacetWeather, FacetConditions}

// Document is the provider's response for a single facet. The schema is
// passed through to the views unmodified.
type Document map[string]any

// Bundle holds the documents for all four facets of a spot. Any facet may be
// nil if its fetch failed; the forecast view renders whatever is present.
type Bundle struct {
	Wave       Document
	Wind       Document
	Weather    Document
	Conditions Document
}

// Client fetches forecast documents from the provider.
type Client struct {
	baseURL    *url.URL
	days       int
	httpClient *http.Client
}

// New creates a forecast client from the given configuration.
func New(cfg *config.ForecastConfig) (*Client, error) {
	baseURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid forecast URL: %w", err)
	}

	return &Client{
		baseURL: baseURL,
		days:    cfg.Days,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}, nil
}

// Fetch requests a single facet for a spot. On any failure (transport error,
// non-200 status, undecodable body) it logs the problem and reports the
// document as absent; callers never see an error.
func (c *Client) Fetch(ctx context.Context, facet Facet, spotID string) (Document, bool) {
	facetURL := fmt.Sprintf("%s/%s?spotId=%s&days=%d", c.baseURL.String(), facet, url.QueryEscape(spotID), c.days)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, facetURL, nil)
	if err != nil {
		log.Error("failed to create forecast request", "facet", facet, "error", err)
		return nil, false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("failed to fetch forecast", "facet", facet, "spot_id", spotID, "error", err)
		return nil, false
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		log.Error("forecast request failed", "facet", facet, "spot_id", spotID, "status", resp.StatusCode)
		return nil, false
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		log.Error("failed to decode forecast response", "facet", facet, "spot_id", spotID, "error", err)
		return nil, false
	}

	return doc, true
}

// FetchAll requests all four facets for a spot. The fetches are independent,
// a failed facet leaves its document nil without affecting the others.
func (c *Client) FetchAll(ctx context.Context, spotID string) Bundle {
	var b Bundle
	if doc, ok := c.Fetch(ctx, FacetWave, spotID); ok {
		b.Wave = doc
	}
	if doc, ok := c.Fetch(ctx, FacetWind, spotID); ok {
		b.Wind = doc
	}
	if doc, ok := c.Fetch(ctx, FacetWeather, spotID); ok {
		b.Weather = doc
	}
	if doc, ok := c.Fetch(ctx, FacetConditions, spotID); ok {
		b.Conditions = doc
	}
	return b
}
