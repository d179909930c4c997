package genesis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-stat-explorer/internal/model"
)

// DefaultEndpoint is the public GENESIS regional statistics GraphQL
// endpoint.
const DefaultEndpoint = "https://api.datengui.de/graphql"

const defaultTimeout = 30 * time.Second

// Client is a thin GraphQL client for the regional statistics service.
// It sends raw query documents and exposes every structured error
// message of a response, which the explorer needs to join failures
// for display.
type Client struct {
	endpoint string
	client   *http.Client
}

// NewClient creates a client for the given endpoint. Empty endpoint
// and non-positive timeout fall back to defaults.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type graphRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

type graphError struct {
	Message string `json:"message"`
}

type regionPayload struct {
	Name string            `json:"name"`
	Stat []model.YearValue `json:"stat"`
}

type graphResponse struct {
	Data struct {
		Region *regionPayload `json:"region"`
	} `json:"data"`
	Errors []graphError `json:"errors"`
}

// RegionSeries runs the query with the region code bound to the
// $nuts3 variable and returns the region's name and series. A
// response with structured errors comes back as *model.TransportError
// carrying all of its messages.
func (c *Client) RegionSeries(ctx context.Context, queryText, regionCode string) (*model.RegionSeriesResult, error) {
	body, err := json.Marshal(graphRequest{
		Query:     queryText,
		Variables: map[string]string{"nuts3": regionCode},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to POST query: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s from %s", resp.Status, c.endpoint)
	}

	var out graphResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(out.Errors) > 0 {
		msgs := make([]string, 0, len(out.Errors))
		for _, e := range out.Errors {
			msgs = append(msgs, e.Message)
		}
		return nil, &model.TransportError{Messages: msgs}
	}

	if out.Data.Region == nil {
		return nil, fmt.Errorf("no region in response for code %s", regionCode)
	}

	return &model.RegionSeriesResult{
		DisplayName: out.Data.Region.Name,
		Series:      out.Data.Region.Stat,
	}, nil
}
