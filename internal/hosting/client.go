// Package hosting deploys packed landing pages to the Netlify API.
package hosting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.netlify.com/api/v1"

// Site is the subset of the hosting provider's site object we use.
type Site struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	URL    string `json:"url"`
	SSLURL string `json:"ssl_url"`
}

// Client talks to the hosting provider with a bearer token.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a hosting client for the given access token.
func NewClient(token string) *Client {
	return &Client{
		token:      token,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// NewClientWithBaseURL creates a client against a non-default API endpoint.
func NewClientWithBaseURL(token, baseURL string) *Client {
	c := NewClient(token)
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

// Slug derives the hosting site name: the domain (or brand when no domain
// is set) lowercased with every non-alphanumeric run of characters replaced,
// capped at 40 characters, plus a short id suffix for uniqueness.
func Slug(domain, brand, siteID string) string {
	base := domain
	if base == "" {
		base = brand
	}
	base = strings.ToLower(base)

	var b strings.Builder
	for _, r := range base {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('-')
		}
	}
	slug := b.String()
	if len(slug) > 40 {
		slug = slug[:40]
	}

	suffix := siteID
	if len(suffix) > 4 {
		suffix = suffix[:4]
	}
	return slug + "-" + suffix
}

// EnsureSite creates the hosting site with the given name, or looks up the
// existing one when the name is already taken.
func (c *Client) EnsureSite(ctx context.Context, name string) (*Site, error) {
	payload, _ := json.Marshal(map[string]string{"name": name})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sites", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("creating hosting site: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var site Site
		if err := json.NewDecoder(resp.Body).Decode(&site); err != nil {
			return nil, fmt.Errorf("decoding hosting site: %w", err)
		}
		return &site, nil
	}

	// name collision: reuse the existing site
	return c.findSite(ctx, name)
}

func (c *Client) findSite(ctx context.Context, name string) (*Site, error) {
	query := url.Values{"name": {name}, "per_page": {"1"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/sites?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("looking up hosting site: %w", err)
	}
	defer resp.Body.Close()

	var sites []Site
	if err := json.NewDecoder(resp.Body).Decode(&sites); err != nil {
		return nil, fmt.Errorf("decoding hosting site list: %w", err)
	}
	if len(sites) == 0 {
		return nil, fmt.Errorf("hosting site %q could not be created or found", name)
	}
	return &sites[0], nil
}

// DeployZip uploads a zip archive as a new deploy of the hosting site.
func (c *Client) DeployZip(ctx context.Context, siteID string, archive []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/sites/%s/deploys", c.baseURL, siteID), bytes.NewReader(archive))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/zip")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("uploading deploy: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("deploy upload failed with status %d: %s", resp.StatusCode, body)
	}
	return nil
}

// SiteURL picks the public URL for a deployed site, preferring HTTPS.
func SiteURL(site *Site, slug string) string {
	if site.SSLURL != "" {
		return site.SSLURL
	}
	if site.URL != "" {
		return site.URL
	}
	name := site.Name
	if name == "" {
		name = slug
	}
	return fmt.Sprintf("https://%s.netlify.app", name)
}
