package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IvanChernomyrdin/linkbuzz/internal/agent/api"
	"github.com/IvanChernomyrdin/linkbuzz/internal/shared/models"
	"github.com/stretchr/testify/require"
)

func TestClient_CreateLink_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/links", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		c, err := r.Cookie(api.AuthCookieName)
		require.NoError(t, err)
		require.Equal(t, "token-1", c.Value)

		var req models.CreateLinkRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "My blog", req.Title)
		require.Equal(t, "https://example.com", req.URL)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Link{ID: "l1", Title: req.Title, URL: req.URL, UserID: "u1"})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	link, err := c.CreateLink("My blog", "https://example.com", "token-1")
	require.NoError(t, err)
	require.Equal(t, "l1", link.ID)
	require.Equal(t, "My blog", link.Title)
}

func TestClient_ListLinks_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/links", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.LinksResponse{Links: []models.Link{
			{ID: "l1", Title: "first", URL: "https://a.example.com", UserID: "u1"},
			{ID: "l2", Title: "second", URL: "https://b.example.com", UserID: "u1"},
		}})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	resp, err := c.ListLinks("token-1")
	require.NoError(t, err)
	require.Len(t, resp.Links, 2)
	require.Equal(t, "first", resp.Links[0].Title)
}

func TestClient_UpdateLink_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/links/l1", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)

		var req models.UpdateLinkRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Link{ID: "l1", Title: req.Title, URL: req.URL, UserID: "u1"})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	link, err := c.UpdateLink("l1", "New", "https://new.example.com", "token-1")
	require.NoError(t, err)
	require.Equal(t, "New", link.Title)
}

func TestClient_DeleteLink_Forbidden(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/links/l1", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"error": "forbidden"})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	err := c.DeleteLink("l1", "token-1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "forbidden")
}

func TestClient_PublicProfile_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/gopher", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)

		// публичная страница — без куки
		_, err := r.Cookie(api.AuthCookieName)
		require.Error(t, err)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.PublicProfileResponse{
			Username: "gopher",
			Links:    []models.Link{{ID: "l1", Title: "blog", URL: "https://example.com"}},
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	resp, err := c.PublicProfile("gopher")
	require.NoError(t, err)
	require.Equal(t, "gopher", resp.Username)
	require.Len(t, resp.Links, 1)
}
