package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/noobdev/site-api/internal/config"
	"github.com/rs/zerolog"
)

// Client is a thin HTTP client for the Notion REST API. It covers only the
// two endpoints this service uses: database queries and block children.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	version    string
	log        zerolog.Logger
}

// NewClient creates a Notion API client from configuration
func NewClient(cfg *config.NotionConfig, log zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		version:    cfg.Version,
		log:        log.With().Str("component", "notion").Logger(),
	}
}

// queryDatabase issues POST /databases/:id/query
func (c *Client) queryDatabase(ctx context.Context, databaseID string, req *queryRequest) (*queryResponse, error) {
	var resp queryResponse
	path := fmt.Sprintf("databases/%s/query", databaseID)
	if err := c.do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// listBlockChildren issues GET /blocks/:id/children. Only the immediate
// children are fetched; nested children are not followed.
func (c *Client) listBlockChildren(ctx context.Context, blockID string) (*blockChildrenResponse, error) {
	var resp blockChildrenResponse
	path := fmt.Sprintf("blocks/%s/children", blockID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	url := c.baseURL + "/" + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", c.version)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		c.log.Error().
			Int("status", resp.StatusCode).
			Str("path", path).
			Msg("Notion API returned an error")
		return fmt.Errorf("notion api error %d: %s", resp.StatusCode, string(data))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode notion response: %w", err)
	}
	return nil
}
