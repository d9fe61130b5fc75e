package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/paging-service/internal/handler"
	"github.com/maxviazov/paging-service/internal/repository/memory"
	"github.com/maxviazov/paging-service/internal/service"
)

// stubPinger implements handler.Pinger for health endpoints.
type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

type env struct {
	engine *gin.Engine
	items  service.ItemService
}

func newEnv(t *testing.T, p handler.Pinger) env {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zerolog.New(io.Discard)
	opts := service.Options{DefaultSize: 2, MaxSize: 50, MaxEnumeratedPages: 10}

	store := memory.NewStore()
	items := service.NewItemService(memory.NewItemRepository(store), memory.NewTxManager(store), opts, log)

	r := gin.New()
	handler.Register(r, p, service.NewPagingService(opts, log), items, log)
	return env{engine: r, items: items}
}

func (e env) do(method, target, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		path   string
		status int
	}{
		{"live root", nil, "/live", http.StatusOK},
		{"ready root", nil, "/ready", http.StatusOK},
		{"live v1", nil, handler.APIV1Prefix + "/health/live", http.StatusOK},
		{"ready v1", nil, handler.APIV1Prefix + "/health/ready", http.StatusOK},
		{"ready v1 store down", errors.New("db down"), handler.APIV1Prefix + "/health/ready", http.StatusServiceUnavailable},
		{"live ignores store", errors.New("db down"), "/live", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newEnv(t, stubPinger{err: tc.err}).do(http.MethodGet, tc.path, "")
			assert.Equal(t, tc.status, w.Code, w.Body.String())
		})
	}
}

func TestRequestID(t *testing.T) {
	e := newEnv(t, stubPinger{})

	w := e.do(http.MethodGet, "/live", "")
	generated := w.Header().Get(handler.RequestIDHeader)
	assert.Len(t, generated, 36)

	const id = "4f7c2b8e-9a51-4c1e-8a44-3f0e6b2d9c10"
	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	req.Header.Set(handler.RequestIDHeader, id)
	w = httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	assert.Equal(t, id, w.Header().Get(handler.RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/live", nil)
	req.Header.Set(handler.RequestIDHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(handler.RequestIDHeader))
}

func TestMetricsEndpoint(t *testing.T) {
	e := newEnv(t, stubPinger{})
	e.do(http.MethodGet, handler.APIV1Prefix+"/paging?size=10&total=5", "")

	w := e.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "paging_computations_total")
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestDocs(t *testing.T) {
	e := newEnv(t, stubPinger{})

	w := e.do(http.MethodGet, "/docs", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/openapi.yaml")

	t.Chdir("../..")
	w = e.do(http.MethodGet, "/openapi.yaml", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/v1/paging")
}
