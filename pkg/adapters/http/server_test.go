package http_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/plangen"
	adapter "github.com/aretw0/plangen/pkg/adapters/http"
	"github.com/aretw0/plangen/pkg/encoding"
	"github.com/aretw0/plangen/pkg/observability"
)

const maxSize = 12

func newHandler(t *testing.T) http.Handler {
	t.Helper()
	h, _ := newHandlerWithRegistry(t)
	return h
}

func newHandlerWithRegistry(t *testing.T) (http.Handler, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	gen := plangen.New(plangen.WithMetrics(observability.NewMetrics(reg)))
	return adapter.NewHandler(gen, maxSize, reg, nil), reg
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestGenerate_Partition(t *testing.T) {
	w := get(newHandler(t), "/v1/grid/2")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, ".inputs: r1 r2 c1 c2", lines[0])
	assert.Equal(t, ".outputs: l r u d", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "F((H("))
}

func TestGenerate_JSONInFutureMode(t *testing.T) {
	w := get(newHandler(t), "/v1/tireworld/2?mode=ltlf&format=json")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var enc encoding.Encoding
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &enc))
	assert.Equal(t, encoding.ModeLTLf, enc.Mode)
	assert.Equal(t, "F(vehicleat_21)", enc.Sections.Goal)
}

func TestGenerate_Errors(t *testing.T) {
	h := newHandler(t)
	tests := []struct {
		target string
		status int
	}{
		{"/v1/grid/two", http.StatusBadRequest},
		{"/v1/grid/3?mode=ctl", http.StatusBadRequest},
		{"/v1/grid/3?format=dot", http.StatusBadRequest},
		{"/v1/blocksworld/3", http.StatusNotFound},
		{"/v1/tireworld/1", http.StatusUnprocessableEntity},
		{"/v1/tireworld/13", http.StatusUnprocessableEntity},
		{"/v1/grid/100000", http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.status, get(h, tt.target).Code)
		})
	}
}

func TestGenerate_SizeLimit(t *testing.T) {
	h := newHandler(t)

	assert.Equal(t, http.StatusOK, get(h, fmt.Sprintf("/v1/tireworld/%d", maxSize)).Code)

	w := get(h, fmt.Sprintf("/v1/tireworld/%d", maxSize+1))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "exceeds the limit of 12")
}

func TestGenerate_UnknownDomainsShareOneSeries(t *testing.T) {
	h, reg := newHandlerWithRegistry(t)

	for i := range 50 {
		assert.Equal(t, http.StatusNotFound, get(h, fmt.Sprintf("/v1/junk%d/3", i)).Code)
	}
	require.Equal(t, http.StatusOK, get(h, "/v1/grid/3").Code)

	series, err := testutil.GatherAndCount(reg, "plangen_generations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, series)
}

func TestListDomainsAndHealth(t *testing.T) {
	h := newHandler(t)

	w := get(h, "/v1/domains")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"domains": ["grid", "tireworld"]}`, w.Body.String())

	w = get(h, "/health")
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	h := newHandler(t)
	require.Equal(t, http.StatusOK, get(h, "/v1/grid/3").Code)
	get(h, "/v1/grid/1")

	w := get(h, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `plangen_generations_total{domain="grid",mode="ppltl",outcome="ok"} 1`)
	assert.Contains(t, body, `plangen_generations_total{domain="grid",mode="ppltl",outcome="error"} 1`)
}

func TestCORSPreflight(t *testing.T) {
	w := httptest.NewRecorder()
	newHandler(t).ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/v1/grid/3", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
