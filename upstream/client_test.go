package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testServer(t *testing.T, status int, body []byte) (*httptest.Server, *http.Request) {
	captured := new(http.Request)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = *r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)

	return srv, captured
}

func TestClient_URL(t *testing.T) {
	cases := []struct {
		base     string
		resource string
		q        string
		expected string
	}{
		{"https://api.oregonstate.edu/v1", "locations", "library", "https://api.oregonstate.edu/v1/locations?q=library"},
		{"https://api.oregonstate.edu/v1/", "directory", "benny beaver", "https://api.oregonstate.edu/v1/directory?q=benny+beaver"},
		{"https://api.oregonstate.edu/v1", "null", "", "https://api.oregonstate.edu/v1/null?q="},
	}

	for _, c := range cases {
		actual, err := NewClient(c.base).URL(c.resource, c.q)
		assert.NoError(t, err)
		assert.Equal(t, c.expected, actual)
	}
}

func TestClient_URL_error(t *testing.T) {
	_, err := NewClient("://nope").URL("locations", "x")
	assert.Error(t, err)
}

func TestClient_Fetch(t *testing.T) {
	b, err := os.ReadFile("testdata/locations.json")
	assert.NoError(t, err)

	srv, req := testServer(t, http.StatusOK, b)

	records, err := NewClient(srv.URL+"/v1").Fetch(context.Background(), "abc123", "locations", "library")

	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Contains(t, string(records[0]), "Valley Library")
	assert.Contains(t, string(records[1]), "Guin Library")

	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/v1/locations", req.URL.Path)
	assert.Equal(t, "library", req.URL.Query().Get("q"))
	assert.Equal(t, "Bearer abc123", req.Header.Get("Authorization"))
}

func TestClient_Fetch_noData(t *testing.T) {
	srv, _ := testServer(t, http.StatusOK, []byte(`{"links": {}}`))

	records, err := NewClient(srv.URL).Fetch(context.Background(), "t", "directory", "x")

	assert.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestClient_Fetch_errorStatus(t *testing.T) {
	srv, _ := testServer(t, http.StatusUnauthorized, []byte(`{"errors": []}`))

	_, err := NewClient(srv.URL).Fetch(context.Background(), "t", "directory", "x")

	assert.Error(t, err)
	assert.Equal(t, "upstream returned 401 for directory", err.Error())
}

func TestClient_Fetch_errorDecode(t *testing.T) {
	srv, _ := testServer(t, http.StatusOK, []byte(`<html>`))

	_, err := NewClient(srv.URL).Fetch(context.Background(), "t", "directory", "x")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode directory response")
}

func TestClient_Fetch_errorTransport(t *testing.T) {
	srv, _ := testServer(t, http.StatusOK, nil)
	srv.Close()

	_, err := NewClient(srv.URL).Fetch(context.Background(), "t", "locations", "x")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed requesting locations")
}
