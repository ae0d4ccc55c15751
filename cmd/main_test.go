package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestRegisterHealthCheck(t *testing.T) {
	testCases := []struct {
		name      string
		pingErr   error
		wantStore string
	}{
		{name: "store reachable", wantStore: "healthy"},
		{name: "store missing", pingErr: errors.New("no such file"), wantStore: "unhealthy"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := chi.NewRouter()
			registerHealthCheck(router, log.New(io.Discard, "", 0), stubPinger{err: tc.pingErr})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/healthz", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, "healthy", body["status"])
			assert.Equal(t, defaultAppName, body["serviceName"])
			assert.Equal(t, tc.wantStore, body["store"])
		})
	}
}

func TestSetupBaseMiddleware_CORS(t *testing.T) {
	router := chi.NewRouter()
	setupBaseMiddleware(router, log.New(io.Discard, "", 0), []string{"http://localhost:3000"})
	router.Get("/api/products", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
