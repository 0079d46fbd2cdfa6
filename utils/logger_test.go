package utils

import (
	"testing"

	"go.uber.org/zap"
)

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zap.AtomicLevel
	}{
		{"debug", zap.NewAtomicLevelAt(zap.DebugLevel)},
		{"info", zap.NewAtomicLevelAt(zap.InfoLevel)},
		{"warn", zap.NewAtomicLevelAt(zap.WarnLevel)},
		{"error", zap.NewAtomicLevelAt(zap.ErrorLevel)},
		{"", zap.NewAtomicLevelAt(zap.InfoLevel)},
		{"garbage", zap.NewAtomicLevelAt(zap.InfoLevel)},
	}
	for _, tc := range cases {
		if got := parseLogLevel(tc.in); got != tc.want.Level() {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tc.in, got, tc.want.Level())
		}
	}
}
