// Package bakesy is a read-only client for the Bakesy commerce API.
// It sends one fixed GraphQL query fetching the full catalog for a single
// merchant. The catalog is never written back — ordering happens on Bakesy
// itself via outbound links.
package bakesy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	// DefaultAPIURL is the production Bakesy GraphQL endpoint.
	DefaultAPIURL = "https://api.bakesy.app/graphql"

	// DefaultBakerySlug identifies the merchant whose catalog is fetched.
	DefaultBakerySlug = "baileys-bakery"

	// appVersion and platform are fixed identification headers the Bakesy
	// API expects from storefront clients.
	appVersion = "3.2.11"
	platform   = "Web"
)

// UpstreamError is returned when the Bakesy API is unreachable, responds
// with a non-2xx status, or returns a GraphQL-level error payload.
type UpstreamError struct {
	Status  int    // HTTP status, 0 for GraphQL-level errors
	Message string // first GraphQL error message, empty for HTTP failures
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("bakesy upstream: %s", e.Message)
	}
	return fmt.Sprintf("bakesy upstream: status %d", e.Status)
}

// Client fetches the catalog for one merchant. It holds no state beyond
// the endpoint, slug, and HTTP client.
type Client struct {
	apiURL string
	slug   string
	client *http.Client
}

// New creates a Client. Empty apiURL or slug fall back to the production
// endpoint and the fixed merchant slug.
func New(apiURL, slug string) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	if slug == "" {
		slug = DefaultBakerySlug
	}
	return &Client{
		apiURL: apiURL,
		slug:   slug,
		client: http.DefaultClient,
	}
}

// graphqlRequest is the JSON body Bakesy expects: the query text plus
// variables.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// graphqlResponse is the standard GraphQL envelope. An errors array may be
// present alongside data; errors take precedence.
type graphqlResponse struct {
	Data struct {
		Bakery *Bakery `json:"bakery"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// FetchOfferings sends the fixed catalog query and returns the typed
// result. Failures are reported as *UpstreamError; no retry is attempted.
func (c *Client) FetchOfferings(ctx context.Context) (*Bakery, error) {
	payload, err := json.Marshal(graphqlRequest{
		Query: offeringsQuery,
		Variables: map[string]any{
			"slug":  c.slug,
			"visit": false,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("bakesy marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("bakesy request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-app-version", appVersion)
	req.Header.Set("x-platform", platform)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bakesy http: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("bakesy read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Status: resp.StatusCode}
	}

	var result graphqlResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("bakesy unmarshal: %w", err)
	}

	// GraphQL errors surface as a failure even when data is also present.
	if len(result.Errors) > 0 {
		return nil, &UpstreamError{Message: result.Errors[0].Message}
	}

	if result.Data.Bakery == nil {
		return nil, &UpstreamError{Message: "no bakery in response"}
	}

	return result.Data.Bakery, nil
}
