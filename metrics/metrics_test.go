package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func TestObserveStatusIncrementsCounter(t *testing.T) {
	ObserveStatus(200)
	ObserveStatus(200)
	ObserveStatus(404)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	promhttp.Handler().ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, `static2_requests_total{status="OK"}`) {
		t.Fatalf("expected OK status series in exposition output:\n%s", body)
	}
}
