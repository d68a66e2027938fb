package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	var gotCacheControl string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCacheControl = r.Header.Get("Cache-Control")
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("dish,price\nNdole,2500\n"))
	}))
	defer srv.Close()

	body, err := NewHTTPFetcher(5 * time.Second).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "dish,price\nNdole,2500\n", string(body))
	assert.Contains(t, gotCacheControl, "no-store")
}

func TestHTTPFetcher_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewHTTPFetcher(0).Fetch(context.Background(), srv.URL)
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, "failed to fetch (404)", err.Error())
}

func TestHTTPFetcher_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTPFetcherWithClient(srv.Client()).Fetch(ctx, srv.URL)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFSFetcher_Fetch(t *testing.T) {
	fsys := fstest.MapFS{
		"data/daily-menu-fallback.json": &fstest.MapFile{Data: []byte(`[]`)},
	}
	fetcher := NewFSFetcher(fsys)

	for _, path := range []string{"data/daily-menu-fallback.json", "/data/daily-menu-fallback.json"} {
		body, err := fetcher.Fetch(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(body))
	}

	_, err := fetcher.Fetch(context.Background(), "/data/missing.json")
	assert.Error(t, err)
}
