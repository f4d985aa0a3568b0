/*
PURPOSE:
  Supabase REST client for rating-report.
  Fetches the full ratings table in one request.

REQUIREMENTS:
  User-specified:
  - Single GET to /rest/v1/ratings?select=* with apikey + bearer auth.
  - Non-200 is fatal for the run; no retries, no pagination.

  Implementation-discovered:
  - Needs http.Client with a timeout (the service occasionally stalls
    under load; an unbounded request would hang the run).
  - Error responses carry a useful JSON body worth surfacing.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine.Run, internal/cli (check)
  - Uses: internal/config, internal/model

ERROR HANDLING:
  - Non-200 status yields *FetchError carrying the status code.
  - Decode failures wrap the underlying json error.

IMPLEMENTATION RULES:
  - Use net/http.
  - Enforce timeouts.
  - Return the decoded record list unchanged; all interpretation of the
    payload belongs to internal/analyze.

USAGE:
  c := engine.New(cfg)
  records, err := c.FetchRatings(ctx)

SELF-HEALING INSTRUCTIONS:
  - If the table is renamed, update ratingsPath.

RELATED FILES:
  - internal/config/config.go
  - internal/model/types.go

MAINTENANCE:
  - Update if the evaluation app moves off Supabase REST.
*/

package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/evallab/rating-report/internal/config"
	"github.com/evallab/rating-report/internal/model"
)

const ratingsPath = "/rest/v1/ratings?select=*"

// FetchError reports a non-success response from the ratings endpoint.
type FetchError struct {
	StatusCode int
	Body       string
}

func (e *FetchError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("failed to fetch ratings: status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("failed to fetch ratings: status %d", e.StatusCode)
}

// Client handles Supabase REST interactions.
type Client struct {
	Config *config.Config
	HTTP   *http.Client
}

// New creates a new Client.
func New(cfg *config.Config) *Client {
	return &Client{
		Config: cfg,
		HTTP: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

// FetchRatings retrieves every row of the ratings table in one request.
// The whole dataset must fit in a single response; Supabase's default
// row limit is far above what a rating campaign produces.
func (c *Client) FetchRatings(ctx context.Context) ([]model.Record, error) {
	url := strings.TrimRight(c.Config.SupabaseURL, "/") + ratingsPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build ratings request: %w", err)
	}
	req.Header.Set("apikey", c.Config.AnonKey)
	req.Header.Set("Authorization", "Bearer "+c.Config.AnonKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ratings request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &FetchError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var records []model.Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode ratings payload: %w", err)
	}
	return records, nil
}
