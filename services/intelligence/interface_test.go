package intelligence

import (
	"fmt"
	"testing"

	"flowdesk/models"
)

func TestValidCategory(t *testing.T) {
	cases := []struct {
		category string
		want     bool
	}{
		{"development", true},
		{"meeting", true},
		{"other", true},
		{"Development", false},
		{"", false},
		{"sprint planning", false},
	}
	for _, tc := range cases {
		if got := validCategory(tc.category); got != tc.want {
			t.Errorf("validCategory(%q) = %v, want %v", tc.category, got, tc.want)
		}
	}
}

func TestTrimHistory(t *testing.T) {
	history := func(n int) []models.AIMessage {
		msgs := make([]models.AIMessage, n)
		for i := range msgs {
			msgs[i] = models.AIMessage{Role: "user", Content: fmt.Sprintf("msg %d", i)}
		}
		return msgs
	}

	trimmed := trimHistory(history(50), 40)
	if len(trimmed) != 40 {
		t.Fatalf("expected 40 messages, got %d", len(trimmed))
	}
	// The tail of the conversation survives, not the head.
	if trimmed[0].Content != "msg 10" || trimmed[39].Content != "msg 49" {
		t.Errorf("expected messages 10..49, got %q..%q", trimmed[0].Content, trimmed[39].Content)
	}

	if got := trimHistory(history(5), 40); len(got) != 5 {
		t.Errorf("short history should be untouched, got %d messages", len(got))
	}
	if got := trimHistory(history(5), 0); len(got) != 5 {
		t.Errorf("non-positive max should disable trimming, got %d messages", len(got))
	}
}
