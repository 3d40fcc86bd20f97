package bot

import (
	"strings"
	"testing"
	"time"
)

// noon on a fixed day so the time/date replies are deterministic.
var testNow = time.Date(2025, time.November, 12, 15, 4, 5, 0, time.UTC)

func testResponder() *Responder {
	return New(func() time.Time { return testNow })
}

func TestReply_KeywordTable(t *testing.T) {
	r := testResponder()

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"greeting hello", "Hello there", "Hello Admin User! How can I help you today?"},
		{"greeting hi substring", "hi bot", "Hello Admin User! How can I help you today?"},
		{"wellbeing", "so, how are you doing?", "I'm doing great! Thanks for asking. How can I assist you?"},
		{"farewell", "ok bye now", "Goodbye! Have a great day!"},
		{"farewell goodbye", "goodbye friend", "Goodbye! Have a great day!"},
		{"help", "I need some help please", "I'm here to help! You can ask me questions or just chat with me."},
		{"weather", "what's the weather like", "I'm sorry, I don't have access to weather data yet, but it's probably nice wherever you are!"},
		{"time", "what time is it", "The current time is 03:04 PM"},
		{"date", "what's the date today", "Today's date is November 12, 2025"},
		{"bot identity", "what is your name", "I'm ChatBot, your friendly AI assistant!"},
		{"fallback", "quantum flux capacitors", "That's interesting! Tell me more, or ask me something else."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Reply("Admin User", tt.message); got != tt.want {
				t.Errorf("Reply(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestReply_CaseInsensitive(t *testing.T) {
	r := testResponder()

	upper := r.Reply("Test User", "BYE")
	lower := r.Reply("Test User", "bye")
	mixed := r.Reply("Test User", "ByE")

	if upper != lower || lower != mixed {
		t.Errorf("case variants differ: %q / %q / %q", upper, lower, mixed)
	}
	if upper != "Goodbye! Have a great day!" {
		t.Errorf("Reply(BYE) = %q, want farewell", upper)
	}
}

func TestReply_FirstMatchWins(t *testing.T) {
	r := testResponder()

	// Contains both a greeting and a farewell keyword; the greeting group is
	// evaluated first.
	got := r.Reply("Admin User", "hello and bye")
	if !strings.HasPrefix(got, "Hello Admin User!") {
		t.Errorf("Reply(hello and bye) = %q, want greeting", got)
	}

	// "time" outranks "date" in the table.
	got = r.Reply("Admin User", "time and date please")
	if !strings.HasPrefix(got, "The current time is") {
		t.Errorf("Reply(time and date) = %q, want time reply", got)
	}
}

func TestReply_GreetingUsesDisplayName(t *testing.T) {
	r := testResponder()

	got := r.Reply("Test User", "hello")
	if got != "Hello Test User! How can I help you today?" {
		t.Errorf("Reply(hello) = %q", got)
	}
}

func TestReply_DefaultClock(t *testing.T) {
	r := New(nil)

	// Only the format can be asserted against the real clock.
	got := r.Reply("Admin User", "time")
	if !strings.HasPrefix(got, "The current time is ") {
		t.Fatalf("Reply(time) = %q", got)
	}
	stamp := strings.TrimPrefix(got, "The current time is ")
	if _, err := time.Parse("03:04 PM", stamp); err != nil {
		t.Errorf("time reply %q not in hh:mm AM/PM format: %v", stamp, err)
	}
}
