package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/session"
)

func TestClient_GetJSON_UnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v2/seller/ndr/123", r.URL.Path)
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"awb":"1234567890"}}`))
	}))
	defer srv.Close()

	tokens := session.NewMemoryStore()
	require.NoError(t, tokens.Set(context.Background(), "tok-1"))

	c := New(srv.URL, tokens, time.Second)

	var out struct {
		AWB string `json:"awb"`
	}
	require.NoError(t, c.GetJSON(context.Background(), "/api/v2/seller/ndr/123", &out))
	require.Equal(t, "1234567890", out.AWB)
}

func TestClient_GetJSON_NoTokenNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, session.NewMemoryStore(), time.Second)
	require.NoError(t, c.GetJSON(context.Background(), "/x", nil))
}

func TestClient_GetJSON_401ClearsTokenAndSignals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	tokens := session.NewMemoryStore()
	require.NoError(t, tokens.Set(context.Background(), "tok-1"))

	signaled := false
	c := New(srv.URL, tokens, time.Second).WithUnauthenticatedHook(func() { signaled = true })

	err := c.GetJSON(context.Background(), "/x", nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnauthenticated))
	require.True(t, signaled)

	_, ok, _ := tokens.Token(context.Background())
	require.False(t, ok)
}

func TestClient_GetJSON_500LeavesToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	tokens := session.NewMemoryStore()
	require.NoError(t, tokens.Set(context.Background(), "tok-1"))

	c := New(srv.URL, tokens, time.Second)

	err := c.GetJSON(context.Background(), "/x", nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrFetchFailed))
	require.False(t, errors.Is(err, ErrUnauthenticated))

	tok, ok, _ := tokens.Token(context.Background())
	require.True(t, ok)
	require.Equal(t, "tok-1", tok)
}
