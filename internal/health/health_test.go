package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestChecker_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		registry   bool
		wantCode   int
		wantStatus string
	}{
		{"healthy", true, http.StatusOK, "ok"},
		{"degraded", false, http.StatusServiceUnavailable, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChecker("v1")
			c.RegisterCheck("asset_registry", func(context.Context) (bool, string) {
				return tt.registry, "2 assets"
			})

			rec := httptest.NewRecorder()
			c.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			if rec.Code != tt.wantCode {
				t.Errorf("expected %d, got %d", tt.wantCode, rec.Code)
			}

			var status Status
			if err := json.NewDecoder(rec.Body).Decode(&status); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if status.Status != tt.wantStatus {
				t.Errorf("expected %s, got %s", tt.wantStatus, status.Status)
			}
			if status.Version != "v1" || status.Checks["asset_registry"].Message != "2 assets" {
				t.Errorf("unexpected body: %+v", status)
			}
		})
	}
}
