package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Guerrilla-Interactive/nextgen-ignore/app/cli"
	"github.com/Guerrilla-Interactive/nextgen-ignore/app/ignore"
)

// legacyAPIURL still serves the catalog and is tried when the default host fails.
const legacyAPIURL = "https://www.gitignore.io/api"

// DefaultTimeout bounds a single catalog request.
const DefaultTimeout = 15 * time.Second

// GetBaseURL returns the catalog API base URL from NGI_API_URL, or the default.
func GetBaseURL() string {
	baseURL := os.Getenv("NGI_API_URL")
	if strings.TrimSpace(baseURL) == "" {
		baseURL = ignore.DefaultAPIURL
	}
	return strings.TrimRight(baseURL, "/")
}

// CatalogClient fetches template data over HTTP. It implements ignore.Fetcher.
type CatalogClient struct {
	BaseURL     string
	FallbackURL string // Optional second host tried on 404 or network failure
	Client      *http.Client
}

// NewCatalogClient returns a client for baseURL. A zero timeout uses DefaultTimeout.
func NewCatalogClient(baseURL string, timeout time.Duration) *CatalogClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = GetBaseURL()
	}
	c := &CatalogClient{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
	}
	if baseURL == ignore.DefaultAPIURL {
		c.FallbackURL = legacyAPIURL
	}
	return c
}

// Fetch performs GET {BaseURL}/{path} and returns the body as text.
func (c *CatalogClient) Fetch(ctx context.Context, path string) (string, error) {
	path = strings.TrimLeft(path, "/")

	body, status, err := c.get(ctx, c.BaseURL+"/"+path)
	if err == nil {
		return body, nil
	}
	// If the host is unreachable or the route is gone, try the fallback host once.
	if c.FallbackURL != "" && ctx.Err() == nil && (status == 0 || status == http.StatusNotFound) {
		cli.Debugf("catalog request failed (%v), trying %s", err, c.FallbackURL)
		if body2, _, err2 := c.get(ctx, c.FallbackURL+"/"+path); err2 == nil {
			return body2, nil
		}
	}
	return "", err
}

func (c *CatalogClient) get(ctx context.Context, url string) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Accept", "text/plain")

	cli.Debugf("GET %s", url)
	resp, err := c.Client.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", resp.StatusCode, fmt.Errorf("unexpected status %s for %s", resp.Status, url)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, fmt.Errorf("read response from %s: %w", url, err)
	}
	return string(data), resp.StatusCode, nil
}
