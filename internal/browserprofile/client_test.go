package browserprofile

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	// md5("password") is a well-known digest
	assert.Equal(t, "5f4dcc3b5aa765d61d8327deb882cf99", HashPassword("password"))
}

func TestSignin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user/signin", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ops@example.com", body["email"])
		// the plaintext never goes over the wire
		assert.Equal(t, HashPassword("hunter2"), body["password"])

		json.NewEncoder(w).Encode(map[string]any{"data": map[string]string{"token": "jwt-123"}})
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	resp, token, err := client.Signin(context.Background(), "ops@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "jwt-123", token)
}

func TestSigninRejectedLeavesTokenEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":{"message":"wrong credentials"}}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	resp, token, err := client.Signin(context.Background(), "ops@example.com", "nope")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.Status)
	assert.Empty(t, token)
}

func TestRefreshToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user/refresh_token", r.URL.Path)
		require.Equal(t, "Bearer old-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]string{"token": "new-token"}})
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	_, token, err := client.RefreshToken(context.Background(), "old-token")
	require.NoError(t, err)
	assert.Equal(t, "new-token", token)
}

func TestCreateProfileReturnsIDs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/profile/create", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"ids": []string{"mlx-1", "mlx-2"}}})
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	resp, ids, err := client.CreateProfile(context.Background(), "tok", map[string]any{"name": "p"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, []string{"mlx-1", "mlx-2"}, ids)
}

func TestProfileAction(t *testing.T) {
	t.Run("start posts the profile id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/profile/start", r.URL.Path)
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "mlx-1", body["profile_id"])
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewClientWithBaseURL(server.URL)
		resp, err := client.ProfileAction(context.Background(), "tok", "mlx-1", "start")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.Status)
	})

	t.Run("unknown action is rejected locally", func(t *testing.T) {
		client := NewClientWithBaseURL("http://unused.invalid")
		_, err := client.ProfileAction(context.Background(), "tok", "mlx-1", "restart")
		assert.Error(t, err)
	})
}

func TestListAllFolderProfilesPaginates(t *testing.T) {
	// two full pages then a short one
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "folder-1", r.URL.Query().Get("folder_id"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		pageLen := 100
		if offset >= 200 {
			pageLen = 3
		}
		profiles := make([]Profile, pageLen)
		for i := range profiles {
			profiles[i] = Profile{UUID: fmt.Sprintf("uuid-%d", offset+i)}
		}
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"profiles": profiles}})
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	all, err := client.ListAllFolderProfiles(context.Background(), "tok", "folder-1")
	require.NoError(t, err)
	assert.Len(t, all, 203)
	assert.Equal(t, "uuid-0", all[0].UUID)
	assert.Equal(t, "uuid-202", all[202].UUID)
}

func TestListAllFolderProfilesUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":{"message":"token expired"}}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.ListAllFolderProfiles(context.Background(), "tok", "folder-1")
	assert.Error(t, err)
}

func TestCloneProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/profile/clone", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "mlx-1", body["profile_id"])

		w.Write([]byte(`{"data":{"ids":["mlx-9"]}}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	resp, err := client.CloneProfile(context.Background(), "tok", "mlx-1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
}

func TestUpdateProfileUsesPatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/profile/update", r.URL.Path)
		require.Equal(t, http.MethodPatch, r.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "mlx-1", body["profile_id"])

		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	resp, err := client.UpdateProfile(context.Background(), "tok", map[string]any{"profile_id": "mlx-1", "name": "renamed"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
}

func TestListFolders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/folder", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(`{"data":{"folders":[]}}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	resp, err := client.ListFolders(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
}

func TestAutomationToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/workspace/automation_token", r.URL.Path)
		assert.Equal(t, "30d", r.URL.Query().Get("expiration_period"))
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]string{"token": "auto-tok"}})
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	resp, token, err := client.AutomationToken(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "auto-tok", token)
}
