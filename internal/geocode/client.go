// Package geocode resolves free-text region descriptions to coordinates
// through the OpenCage forward geocoding API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"phonetrace/platform/apperr"
	"phonetrace/platform/config"
	"phonetrace/platform/logger"
)

const userAgent = "phonetrace/1.0"

// Client is a synchronous OpenCage geocoding client. One request per
// lookup, no retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        *logger.Logger
}

// NewClient builds a geocoding client from configuration.
func NewClient(cfg config.GeocoderConfig, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.GetGeocoderTimeout()},
		baseURL:    cfg.GetGeocoderBaseURL(),
		apiKey:     cfg.GetAPIKey(),
		log:        log,
	}
}

// Geocode resolves a free-text region description to the best-matching
// coordinate. Failures carry a typed kind: KindAuth for rejected keys,
// KindQuota for exhausted quotas or rate limits, KindNoLocation when the
// provider has no match, KindNetwork for transport errors.
func (c *Client) Geocode(ctx context.Context, query string) (*Location, error) {
	params := url.Values{}
	params.Add("q", query)
	params.Add("key", c.apiKey)
	params.Add("limit", "1")
	params.Add("no_annotations", "1")

	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "build geocode request", err)
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error messages embed the request URL, which carries the API
		// key; log the underlying cause only.
		cause := err
		if ue, ok := err.(*url.Error); ok && ue.Err != nil {
			cause = ue.Err
		}
		c.log.Error("geocode request failed", "error", cause)
		return nil, apperr.Wrap(apperr.KindNetwork, "could not reach geocoding service", cause).
			WithRemedy("check your network connection and try again")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if err := checkStatus(resp.StatusCode); err != nil {
		c.log.Error("geocode upstream error", "status", resp.StatusCode)
		return nil, err
	}

	var payload opencageResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Error("failed to decode geocode payload", "error", err)
		return nil, apperr.Wrap(apperr.KindNetwork, "malformed geocoding response", err)
	}

	if len(payload.Results) == 0 {
		return nil, apperr.NoLocation(fmt.Sprintf("no geocoding match for %q", query))
	}

	best := payload.Results[0]
	return &Location{
		Latitude:   best.Geometry.Lat,
		Longitude:  best.Geometry.Lng,
		Formatted:  best.Formatted,
		Confidence: best.Confidence,
	}, nil
}

func checkStatus(status int) error {
	switch {
	case status == http.StatusOK:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return apperr.New(apperr.KindAuth, "geocoding service rejected the API key").
			WithRemedy("verify the key passed with --api-key or OPENCAGE_API_KEY")
	case status == http.StatusPaymentRequired || status == http.StatusTooManyRequests:
		return apperr.New(apperr.KindQuota, "geocoding quota exceeded").
			WithRemedy("wait for the quota window to reset or upgrade the plan")
	default:
		return apperr.New(apperr.KindNetwork, fmt.Sprintf("upstream api error: %d", status))
	}
}
