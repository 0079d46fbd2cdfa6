package middleware

import (
	"testing"

	"flowdesk/config"

	"golang.org/x/time/rate"
)

func TestRequestsPerMinute_UsesConfig(t *testing.T) {
	orig := config.AppConfig.MaxRequestsPerMin
	defer func() { config.AppConfig.MaxRequestsPerMin = orig }()

	config.AppConfig.MaxRequestsPerMin = 250
	if got := requestsPerMinute(); got != 250 {
		t.Errorf("expected configured 250, got %d", got)
	}

	config.AppConfig.MaxRequestsPerMin = 0
	if got := requestsPerMinute(); got != fallbackRequestsPerMin {
		t.Errorf("expected fallback %d for unset config, got %d", fallbackRequestsPerMin, got)
	}

	config.AppConfig.MaxRequestsPerMin = -5
	if got := requestsPerMinute(); got != fallbackRequestsPerMin {
		t.Errorf("expected fallback %d for negative config, got %d", fallbackRequestsPerMin, got)
	}
}

func TestGetLimiter_HonorsConfiguredBurst(t *testing.T) {
	orig := config.AppConfig.MaxRequestsPerMin
	defer func() { config.AppConfig.MaxRequestsPerMin = orig }()
	config.AppConfig.MaxRequestsPerMin = 3

	store := &rateLimiterStore{limiters: make(map[string]*rate.Limiter)}
	limiter := store.getLimiter("203.0.113.7")

	for i := 0; i < 3; i++ {
		if !limiter.Allow() {
			t.Fatalf("request %d should be inside the burst", i+1)
		}
	}
	if limiter.Allow() {
		t.Error("request beyond the burst should be rejected")
	}

	if store.getLimiter("203.0.113.7") != limiter {
		t.Error("expected the same limiter instance per IP")
	}
}
