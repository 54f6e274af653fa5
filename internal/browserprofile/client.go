// Package browserprofile proxies the remote browser-profile automation API.
// The upstream authenticates with a short-lived bearer token obtained from
// an md5-hashed password signin; callers persist the token between calls.
package browserprofile

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.multilogin.com"

// syncPageSize is the page size used when walking the full profile list.
const syncPageSize = 100

// Response carries an upstream reply for verbatim forwarding.
type Response struct {
	Status int
	Body   []byte
}

// Proxy is the proxy block of a remote profile.
type Proxy struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Type     string `json:"type"`
}

// Fingerprint is the fingerprint block of a remote profile.
type Fingerprint struct {
	OS string `json:"os"`
}

// Parameters groups the remote profile's nested settings.
type Parameters struct {
	Fingerprint Fingerprint `json:"fingerprint"`
	Proxy       Proxy       `json:"proxy"`
}

// Profile is a remote browser profile.
type Profile struct {
	UUID        string     `json:"uuid"`
	Name        string     `json:"name"`
	FolderID    string     `json:"folder_id"`
	BrowserType string     `json:"browser_type"`
	Parameters  Parameters `json:"parameters"`
}

// Client talks to the browser automation API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a browser-profile client.
func NewClient() *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// NewClientWithBaseURL creates a client against a non-default API endpoint.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

// HashPassword returns the md5 hex digest the upstream expects in place of
// the plaintext password.
func HashPassword(password string) string {
	sum := md5.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Signin exchanges credentials for a bearer token. The returned token is
// empty when the upstream rejected the credentials; the Response still
// carries the upstream status and body for forwarding.
func (c *Client) Signin(ctx context.Context, email, password string) (*Response, string, error) {
	payload := map[string]string{"email": email, "password": HashPassword(password)}
	resp, err := c.do(ctx, http.MethodPost, "/user/signin", "", payload)
	if err != nil {
		return nil, "", err
	}
	return resp, extractToken(resp.Body), nil
}

// RefreshToken trades the current token for a fresh one.
func (c *Client) RefreshToken(ctx context.Context, token string) (*Response, string, error) {
	resp, err := c.do(ctx, http.MethodPost, "/user/refresh_token", token, nil)
	if err != nil {
		return nil, "", err
	}
	return resp, extractToken(resp.Body), nil
}

func extractToken(body []byte) string {
	var parsed struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	return parsed.Data.Token
}

// ListProfiles fetches one page of remote profiles with the caller's query.
func (c *Client) ListProfiles(ctx context.Context, token string, query url.Values) (*Response, error) {
	path := "/profile/list"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, path, token, nil)
}

// CreateProfile creates a remote profile and returns the new profile ids
// alongside the upstream response.
func (c *Client) CreateProfile(ctx context.Context, token string, payload map[string]any) (*Response, []string, error) {
	resp, err := c.do(ctx, http.MethodPost, "/profile/create", token, payload)
	if err != nil {
		return nil, nil, err
	}

	var parsed struct {
		Data struct {
			IDs []string `json:"ids"`
		} `json:"data"`
	}
	if resp.Status >= 200 && resp.Status < 300 {
		_ = json.Unmarshal(resp.Body, &parsed)
	}
	return resp, parsed.Data.IDs, nil
}

// ProfileAction starts or stops a remote profile.
func (c *Client) ProfileAction(ctx context.Context, token, profileID, action string) (*Response, error) {
	if action != "start" && action != "stop" {
		return nil, fmt.Errorf("unsupported profile action %q", action)
	}
	return c.do(ctx, http.MethodPost, "/profile/"+action, token, map[string]any{"profile_id": profileID})
}

// CloneProfile duplicates a remote profile.
func (c *Client) CloneProfile(ctx context.Context, token, profileID string) (*Response, error) {
	return c.do(ctx, http.MethodPost, "/profile/clone", token, map[string]any{"profile_id": profileID})
}

// UpdateProfile patches a remote profile with the caller's payload.
func (c *Client) UpdateProfile(ctx context.Context, token string, payload map[string]any) (*Response, error) {
	return c.do(ctx, http.MethodPatch, "/profile/update", token, payload)
}

// ListFolders fetches the workspace folder list.
func (c *Client) ListFolders(ctx context.Context, token string) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/folder", token, nil)
}

// AutomationToken issues a 30-day automation token for the workspace. The
// returned token is empty when the upstream refused.
func (c *Client) AutomationToken(ctx context.Context, token string) (*Response, string, error) {
	resp, err := c.do(ctx, http.MethodGet, "/workspace/automation_token?expiration_period=30d", token, nil)
	if err != nil {
		return nil, "", err
	}
	return resp, extractToken(resp.Body), nil
}

// RemoveProfiles deletes remote profiles by id.
func (c *Client) RemoveProfiles(ctx context.Context, token string, ids []string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, "/profile/remove", token, map[string]any{"ids": ids})
}

// ListAllFolderProfiles walks the paginated profile list for a folder and
// returns every profile in it.
func (c *Client) ListAllFolderProfiles(ctx context.Context, token, folderID string) ([]Profile, error) {
	var all []Profile
	offset := 0
	for {
		query := url.Values{
			"folder_id": {folderID},
			"limit":     {strconv.Itoa(syncPageSize)},
			"offset":    {strconv.Itoa(offset)},
		}
		resp, err := c.ListProfiles(ctx, token, query)
		if err != nil {
			return nil, err
		}
		if resp.Status < 200 || resp.Status >= 300 {
			return nil, fmt.Errorf("profile list failed with status %d: %s", resp.Status, resp.Body)
		}

		var page struct {
			Data struct {
				Profiles []Profile `json:"profiles"`
			} `json:"data"`
		}
		if err := json.Unmarshal(resp.Body, &page); err != nil {
			return nil, fmt.Errorf("decoding profile list: %w", err)
		}

		all = append(all, page.Data.Profiles...)
		if len(page.Data.Profiles) < syncPageSize {
			return all, nil
		}
		offset += syncPageSize
	}
}

func (c *Client) do(ctx context.Context, method, path, token string, payload map[string]any) (*Response, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("browser profile request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading browser profile response: %w", err)
	}
	return &Response{Status: resp.StatusCode, Body: data}, nil
}
