package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsBadURL(t *testing.T) {
	_, err := New("not a url", 0)
	assert.Error(t, err)

	c, err := New("http://localhost:8080/", 0)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", c.BaseURL)
	assert.Equal(t, DefaultTimeout, c.HTTP.Timeout)
}

func TestDo_UnwrapsData(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pets", r.URL.Path)
		assert.Equal(t, "Ann", r.URL.Query().Get("ownerName"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":1,"name":"Rex"}]}`))
	}))
	defer ts.Close()

	c, err := New(ts.URL, 0)
	require.NoError(t, err)

	var out []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, c.Do(context.Background(), http.MethodGet, "/pets", url.Values{"ownerName": {"Ann"}}, nil, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Rex", out[0].Name)
}

func TestDo_ErrorEnvelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"error":"Pet not found"}`))
	}))
	defer ts.Close()

	c, err := New(ts.URL, 0)
	require.NoError(t, err)

	err = c.Do(context.Background(), http.MethodGet, "pets/9", nil, nil, nil)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "Pet not found")
}

func TestDo_NonJSONError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer ts.Close()

	c, err := New(ts.URL, 0)
	require.NoError(t, err)

	err = c.Do(context.Background(), http.MethodGet, "/admin/stats", nil, nil, nil)
	var ae *APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, http.StatusBadGateway, ae.StatusCode)
	assert.Equal(t, "bad gateway", ae.Message)
}
