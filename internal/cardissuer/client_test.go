package cardissuer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCardsInjectsTeam(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/cards/", r.URL.Path)
		require.Equal(t, "Token tok", r.Header.Get("Authorization"))
		assert.Equal(t, "team-1", r.URL.Query().Get("team_uuid"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("tok", "team-1", server.URL)
	resp, err := client.ListCards(context.Background(), url.Values{"limit": {"10"}})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.JSONEq(t, `{"results":[]}`, string(resp.Body))
}

func TestCreateCardInjectsTeam(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "team-1", payload["team_uuid"])
		assert.Equal(t, "bin-9", payload["bin_uuid"])
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"uuid":"card-1"}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("tok", "team-1", server.URL)
	resp, err := client.CreateCard(context.Background(), map[string]any{"bin_uuid": "bin-9"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.Status)
}

func TestCardAction(t *testing.T) {
	t.Run("valid action hits upstream", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/cards/card-1/block/", r.URL.Path)
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewClientWithBaseURL("tok", "", server.URL)
		resp, err := client.CardAction(context.Background(), "card-1", "block")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.Status)
	})

	t.Run("unknown action is rejected locally", func(t *testing.T) {
		client := NewClientWithBaseURL("tok", "", "http://unused.invalid")
		_, err := client.CardAction(context.Background(), "card-1", "melt")
		assert.Error(t, err)
	})
}

func TestMeta(t *testing.T) {
	t.Run("maps resource names to upstream paths", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/cards/bins/", r.URL.Path)
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := NewClientWithBaseURL("tok", "", server.URL)
		resp, err := client.Meta(context.Background(), "bins", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.Status)
	})

	t.Run("rejects unknown resources", func(t *testing.T) {
		client := NewClientWithBaseURL("tok", "", "http://unused.invalid")
		_, err := client.Meta(context.Background(), "secrets", nil)
		assert.Error(t, err)
	})
}

func TestUpstreamStatusPassthrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"detail":"bad token"}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("tok", "", server.URL)
	resp, err := client.ListCards(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.Status)
	assert.Contains(t, string(resp.Body), "bad token")
}
