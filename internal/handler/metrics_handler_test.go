package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/udaan-api/internal/dto"
	"github.com/noah-isme/udaan-api/internal/service"
)

func TestMetricsHandlerReady(t *testing.T) {
	loading := &catalogServiceStub{status: dto.CatalogStatus{State: "loading"}}
	c, w := testContext(jsonRequest(t, http.MethodGet, "/ready", nil))
	NewMetricsHandler(nil, loading).Ready(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"loading"`)

	c, w = testContext(jsonRequest(t, http.MethodGet, "/ready", nil))
	NewMetricsHandler(nil, readyCatalog()).Ready(c)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsHandlerPrometheus(t *testing.T) {
	metrics := service.NewMetricsService()
	metrics.RecordMatch(2)

	c, w := testContext(jsonRequest(t, http.MethodGet, "/metrics", nil))
	NewMetricsHandler(metrics, readyCatalog()).Prometheus(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "match_requests_total 1")

	c, w = testContext(jsonRequest(t, http.MethodGet, "/metrics", nil))
	NewMetricsHandler(nil, nil).Prometheus(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
