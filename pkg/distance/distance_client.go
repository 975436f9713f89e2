package distance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// StatusOK is the element status the Distance Matrix API returns for a leg
// it could resolve.
const StatusOK = "OK"

const defaultBaseURL = "https://maps.googleapis.com/maps/api/distancematrix/json"

// Leg is the routed distance between one origin/destination pair. Status
// carries the upstream element status verbatim; Meters is only meaningful
// when Status == StatusOK.
type Leg struct {
	Meters int
	Status string
}

// ClientInterface defines the contract for a distance lookup service.
type ClientInterface interface {
	Leg(ctx context.Context, origin, destination string) (Leg, error)
}

// Client calls the Google Distance Matrix API, one leg per request.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// NewClient creates a distance client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
	}
}

// Leg resolves the driving distance for a single origin/destination pair.
// A transport or decode failure is an error; an unresolvable pair is not,
// it comes back as a Leg with a non-OK status.
func (c *Client) Leg(ctx context.Context, origin, destination string) (Leg, error) {
	params := url.Values{}
	params.Set("origins", origin)
	params.Set("destinations", destination)
	params.Set("units", "imperial")
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Leg{}, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Leg{}, fmt.Errorf("distance matrix request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Leg{}, fmt.Errorf("distance matrix returned HTTP %d", resp.StatusCode)
	}

	var out struct {
		Status string `json:"status"`
		Rows   []struct {
			Elements []struct {
				Status   string `json:"status"`
				Distance struct {
					Value int `json:"value"`
				} `json:"distance"`
			} `json:"elements"`
		} `json:"rows"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Leg{}, fmt.Errorf("distance matrix decode failed: %w", err)
	}
	if out.Status != StatusOK {
		return Leg{}, fmt.Errorf("distance matrix status %s", out.Status)
	}
	if len(out.Rows) == 0 || len(out.Rows[0].Elements) == 0 {
		return Leg{}, fmt.Errorf("distance matrix returned no elements")
	}

	el := out.Rows[0].Elements[0]
	return Leg{Meters: el.Distance.Value, Status: el.Status}, nil
}
