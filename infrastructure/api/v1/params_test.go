package v1

import (
	"net/http/httptest"
	"testing"
)

func TestParseListParams(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantSkip  int
		wantLimit int
	}{
		{"defaults", "/", 0, 100},
		{"explicit values", "/?skip=5&limit=10", 5, 10},
		{"zero limit honored", "/?limit=0", 0, 0},
		{"negative skip falls back", "/?skip=-1", 0, 100},
		{"negative limit falls back", "/?limit=-1", 0, 100},
		{"non-numeric values fall back", "/?skip=abc&limit=xyz", 0, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.query, nil)
			params := ParseListParams(req)

			if params.Skip() != tt.wantSkip {
				t.Errorf("Skip() = %d, want %d", params.Skip(), tt.wantSkip)
			}
			if params.Limit() != tt.wantLimit {
				t.Errorf("Limit() = %d, want %d", params.Limit(), tt.wantLimit)
			}
		})
	}
}
