package hosting

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name     string
		domain   string
		brand    string
		siteID   string
		expected string
	}{
		{
			name:     "domain preferred over brand",
			domain:   "fastloans.example",
			brand:    "FastLoans",
			siteID:   "abcd1234efgh",
			expected: "fastloans-example-abcd",
		},
		{
			name:     "falls back to brand",
			domain:   "",
			brand:    "Quick Fund!",
			siteID:   "zzzz9999xxxx",
			expected: "quick-fund--zzzz",
		},
		{
			name:     "long names are capped at forty characters",
			domain:   "a-very-long-domain-name-that-goes-on-and-on.example",
			brand:    "",
			siteID:   "idid",
			expected: "a-very-long-domain-name-that-goes-on-and-idid",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slug(tt.domain, tt.brand, tt.siteID))
		})
	}
}

func TestEnsureSite(t *testing.T) {
	t.Run("creates a new site", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/sites", r.URL.Path)
			require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "quickfund-abcd", body["name"])

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(Site{ID: "netlify-1", Name: "quickfund-abcd", SSLURL: "https://quickfund-abcd.netlify.app"})
		}))
		defer server.Close()

		client := NewClientWithBaseURL("tok", server.URL)
		site, err := client.EnsureSite(context.Background(), "quickfund-abcd")
		require.NoError(t, err)
		assert.Equal(t, "netlify-1", site.ID)
	})

	t.Run("reuses an existing site on name collision", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				w.WriteHeader(http.StatusUnprocessableEntity)
				return
			}
			assert.Equal(t, "taken-slug", r.URL.Query().Get("name"))
			json.NewEncoder(w).Encode([]Site{{ID: "existing-1", Name: "taken-slug"}})
		}))
		defer server.Close()

		client := NewClientWithBaseURL("tok", server.URL)
		site, err := client.EnsureSite(context.Background(), "taken-slug")
		require.NoError(t, err)
		assert.Equal(t, "existing-1", site.ID)
	})

	t.Run("errors when create fails and nothing exists", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				w.WriteHeader(http.StatusUnprocessableEntity)
				return
			}
			json.NewEncoder(w).Encode([]Site{})
		}))
		defer server.Close()

		client := NewClientWithBaseURL("tok", server.URL)
		_, err := client.EnsureSite(context.Background(), "ghost")
		assert.Error(t, err)
	})
}

func TestDeployZip(t *testing.T) {
	t.Run("uploads with zip content type", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/sites/netlify-1/deploys", r.URL.Path)
			require.Equal(t, "application/zip", r.Header.Get("Content-Type"))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClientWithBaseURL("tok", server.URL)
		err := client.DeployZip(context.Background(), "netlify-1", []byte("PK..."))
		assert.NoError(t, err)
	})

	t.Run("surfaces upstream failures", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewClientWithBaseURL("tok", server.URL)
		err := client.DeployZip(context.Background(), "netlify-1", []byte("PK..."))
		assert.Error(t, err)
	})
}

func TestSiteURL(t *testing.T) {
	assert.Equal(t, "https://a.example", SiteURL(&Site{SSLURL: "https://a.example", URL: "http://a.example"}, "s"))
	assert.Equal(t, "http://a.example", SiteURL(&Site{URL: "http://a.example"}, "s"))
	assert.Equal(t, "https://named.netlify.app", SiteURL(&Site{Name: "named"}, "s"))
	assert.Equal(t, "https://slugged.netlify.app", SiteURL(&Site{}, "slugged"))
}
