package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

func makeRequest(e *echo.Echo, path string, rec http.ResponseWriter) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	e.ServeHTTP(rec, req)
}

func TestPrometheusMiddleware(t *testing.T) {
	clearRegisteredMetrics(t, DefaultMetricsConfig)
	e := echo.New()
	e.Use(Metrics())

	e.GET("/products", func(c echo.Context) error {
		return c.String(http.StatusOK, "[]")
	})
	e.GET("/broken", func(c echo.Context) error {
		return fmt.Errorf("boom")
	})

	rec := httptest.NewRecorder()
	for i := 0; i < 25; i++ {
		makeRequest(e, "/products", rec)
	}
	for i := 0; i < 7; i++ {
		makeRequest(e, "/broken", rec)
	}
	for i := 0; i < 3; i++ {
		makeRequest(e, "/does-not-exist", rec)
	}

	makeRequest(e, "/metrics", rec)
	bodyString := rec.Body.String()

	if !strings.Contains(bodyString, `request_duration_seconds_count{code="200",method="GET",path="/products"} 25`) {
		t.Error("GET /products count missing")
	}
	if !strings.Contains(bodyString, `request_duration_seconds_count{code="500",method="GET",path="/broken"} 7`) {
		t.Error("GET /broken count missing")
	}
	// unknown routes collapse into one label to cap cardinality
	if !strings.Contains(bodyString, `request_duration_seconds_count{code="404",method="GET",path="/not-found"} 3`) {
		t.Error("GET /not-found count missing")
	}
}

func clearRegisteredMetrics(t *testing.T, conf MetricsConfig) {
	_, err := registerHttpMetrics(conf)
	if err == nil {
		return
	}
	if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
		httpMetrics := are.ExistingCollector.(*prometheus.HistogramVec)
		httpMetrics.Reset()
		return
	}
	t.Errorf("unexpected error %v", err)
}
