package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/restofood-client/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

func TestDoSendsBearerAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	var out map[string]bool
	err := client.Do(context.Background(), http.MethodGet, "/ping", nil, &out, "tok-123")

	assert.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
	assert.True(t, out["ok"])
}

func TestDoWithoutTokenOmitsAuthHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	assert.NoError(t, client.Do(context.Background(), http.MethodGet, "/ping", nil, nil, ""))
	assert.Empty(t, gotAuth)
}

func TestUnauthorizedClassifiesAsAuthExpired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid or expired token"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	err := client.Do(context.Background(), http.MethodGet, "/user", nil, nil, "expired")

	assert.ErrorIs(t, err, ErrAuthExpired)
}

func TestStructuredErrorSurfacesMessageVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Email already registered"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	err := client.Do(context.Background(), http.MethodPost, "/register", map[string]string{}, nil, "")

	var srvErr *ServerError
	assert.ErrorAs(t, err, &srvErr)
	assert.Equal(t, "Email already registered", srvErr.Message)
	assert.Equal(t, http.StatusBadRequest, srvErr.StatusCode)
}

func TestErrorKeyAlsoSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"menu not found"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	err := client.Do(context.Background(), http.MethodDelete, "/restaurants/1/menus/9", nil, nil, "tok")

	var srvErr *ServerError
	assert.ErrorAs(t, err, &srvErr)
	assert.Equal(t, "menu not found", srvErr.Message)
}

func TestUnparseableFailureIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>Bad Gateway</html>"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	err := client.Do(context.Background(), http.MethodGet, "/restaurants", nil, nil, "tok")

	var transport *TransportError
	assert.ErrorAs(t, err, &transport)
}

func TestUnreachableHostIsTransportError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", nil)
	err := client.Do(context.Background(), http.MethodGet, "/restaurants", nil, nil, "tok")

	var transport *TransportError
	assert.ErrorAs(t, err, &transport)
	assert.NotErrorIs(t, err, ErrAuthExpired)
}

func TestDoUnwrapsEnvelopePayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":true,"message":"List of menus","data":[{"id":1,"name":"Bakso","price":20000}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	var out []map[string]any
	assert.NoError(t, client.Do(context.Background(), http.MethodGet, "/menus", nil, &out, "tok"))
	assert.Len(t, out, 1)
	assert.Equal(t, "Bakso", out[0]["name"])
}

func TestMessagePrefersServerTextOverFallback(t *testing.T) {
	assert.Equal(t, "duplikat", Message(&ServerError{Message: "duplikat"}, "Failed to load restaurants"))
	assert.Equal(t, "Failed to load restaurants", Message(&TransportError{Err: assert.AnError}, "Failed to load restaurants"))
	assert.Equal(t, "Failed to load restaurants", Message(ErrAuthExpired, "Failed to load restaurants"))
}
