package scrob_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestScrobbleFlow walks the primary user journey: bootstrap the
// instance, log in, submit listens, query them back, then revoke the
// session and confirm it no longer works.
func TestScrobbleFlow(t *testing.T) {
	baseURL, cleanup := setupScrobContainer(t)
	defer cleanup()

	bootstrapInstance(t, baseURL)
	token := login(t, baseURL)

	playedAt := time.Now().Unix() - 600

	t.Run("submit a batch", func(t *testing.T) {
		resp, raw := doRequest(t, http.MethodPost, baseURL+"/v1/scrob", token, []map[string]any{
			{"artist": "Pink Floyd", "track": "Time", "album": "The Dark Side of the Moon", "timestamp": playedAt},
			{"artist": "Pink Floyd", "track": "Money", "timestamp": playedAt + 60},
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var out []struct {
			ID        string `json:"id"`
			Artist    string `json:"artist"`
			CreatedAt int64  `json:"created_at"`
		}
		require.NoError(t, json.Unmarshal(raw, &out))
		require.Len(t, out, 2)
		require.NotEmpty(t, out[0].ID)
		require.GreaterOrEqual(t, out[0].CreatedAt, playedAt)
	})

	t.Run("recent returns the listens", func(t *testing.T) {
		resp, raw := doRequest(t, http.MethodGet, baseURL+"/v1/recent", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out []struct {
			Track     string `json:"track"`
			Timestamp int64  `json:"timestamp"`
		}
		require.NoError(t, json.Unmarshal(raw, &out))
		require.Len(t, out, 2)
		require.Equal(t, "Money", out[0].Track)
	})

	t.Run("top artists counts plays", func(t *testing.T) {
		resp, raw := doRequest(t, http.MethodGet, baseURL+"/v1/top/artists", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out []struct {
			Name  string `json:"name"`
			Count int64  `json:"count"`
		}
		require.NoError(t, json.Unmarshal(raw, &out))
		require.Len(t, out, 1)
		require.Equal(t, "Pink Floyd", out[0].Name)
		require.EqualValues(t, 2, out[0].Count)
	})

	t.Run("now playing acknowledges without recording", func(t *testing.T) {
		resp, _ := doRequest(t, http.MethodPost, baseURL+"/v1/now", token, map[string]any{
			"artist": "Pink Floyd",
			"track":  "Breathe",
		})
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, raw := doRequest(t, http.MethodGet, baseURL+"/v1/recent", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out []any
		require.NoError(t, json.Unmarshal(raw, &out))
		require.Len(t, out, 2)
	})

	t.Run("revoked session stops working", func(t *testing.T) {
		// Find the session token's id.
		resp, raw := doRequest(t, http.MethodGet, baseURL+"/v1/tokens", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var tokens []struct {
			ID    string `json:"id"`
			Label string `json:"label"`
		}
		require.NoError(t, json.Unmarshal(raw, &tokens))
		require.NotEmpty(t, tokens)

		resp, _ = doRequest(t, http.MethodDelete, baseURL+"/v1/tokens/"+tokens[0].ID, token, nil)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, _ = doRequest(t, http.MethodGet, baseURL+"/v1/recent", token, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

// TestApiTokenLifecycle covers minting a client token and using it in
// place of the session.
func TestApiTokenLifecycle(t *testing.T) {
	baseURL, cleanup := setupScrobContainer(t)
	defer cleanup()

	bootstrapInstance(t, baseURL)
	session := login(t, baseURL)

	resp, raw := doRequest(t, http.MethodPost, baseURL+"/v1/tokens", session, map[string]string{
		"label": "test-player",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID    string `json:"id"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(raw, &created))
	require.NotEmpty(t, created.Token)

	t.Run("client token authenticates", func(t *testing.T) {
		resp, raw := doRequest(t, http.MethodGet, baseURL+"/v1/me", created.Token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var me struct {
			Username string `json:"username"`
		}
		require.NoError(t, json.Unmarshal(raw, &me))
		require.Equal(t, adminUsername, me.Username)
	})

	t.Run("token values never reappear in listings", func(t *testing.T) {
		resp, raw := doRequest(t, http.MethodGet, baseURL+"/v1/tokens", session, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotContains(t, string(raw), created.Token)
	})
}

// TestHealthAndBootstrapGuard covers the probe endpoints and bootstrap
// single-use behavior.
func TestHealthAndBootstrapGuard(t *testing.T) {
	baseURL, cleanup := setupScrobContainer(t)
	defer cleanup()

	t.Run("livez", func(t *testing.T) {
		resp, _ := doRequest(t, http.MethodGet, baseURL+"/livez", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("readyz", func(t *testing.T) {
		resp, _ := doRequest(t, http.MethodGet, baseURL+"/readyz", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("bootstrap requires the token", func(t *testing.T) {
		resp, _ := doRequest(t, http.MethodPost, baseURL+"/v1/bootstrap", "", map[string]string{
			"username": adminUsername,
			"password": adminPassword,
		})
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("bootstrap works once", func(t *testing.T) {
		bootstrapInstance(t, baseURL)

		raw, err := json.Marshal(map[string]string{"username": "other", "password": "Other123Pass"})
		require.NoError(t, err)

		req, err := http.NewRequest(http.MethodPost, baseURL+"/v1/bootstrap", bytes.NewReader(raw))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Bootstrap-Token", bootstrapToken)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}
