// Package bot implements the rule-based reply generator.
//
// The responder is a pure collaborator of the HTTP layer: no I/O, no state,
// deterministic for a given lowercased message — except the time and date
// replies, which embed the clock's current value by design.
package bot

import (
	"fmt"
	"strings"
	"time"
)

// rule is one keyword group: if any keyword is contained in the lowercased
// message, reply produces the response. Evaluation order matters; the first
// matching group wins.
type rule struct {
	keywords []string
	reply    func(r *Responder, name string) string
}

// Responder generates replies by scanning an ordered keyword table.
type Responder struct {
	now   func() time.Time
	rules []rule
}

// New creates a responder. now supplies the clock for the time and date
// replies; production callers pass time.Now.
func New(now func() time.Time) *Responder {
	if now == nil {
		now = time.Now
	}
	return &Responder{
		now: now,
		rules: []rule{
			{[]string{"hello", "hi"}, func(_ *Responder, name string) string {
				return fmt.Sprintf("Hello %s! How can I help you today?", name)
			}},
			{[]string{"how are you"}, func(*Responder, string) string {
				return "I'm doing great! Thanks for asking. How can I assist you?"
			}},
			{[]string{"bye", "goodbye"}, func(*Responder, string) string {
				return "Goodbye! Have a great day!"
			}},
			{[]string{"help"}, func(*Responder, string) string {
				return "I'm here to help! You can ask me questions or just chat with me."
			}},
			{[]string{"weather"}, func(*Responder, string) string {
				return "I'm sorry, I don't have access to weather data yet, but it's probably nice wherever you are!"
			}},
			{[]string{"time"}, func(r *Responder, _ string) string {
				return "The current time is " + r.now().Format("03:04 PM")
			}},
			{[]string{"date"}, func(r *Responder, _ string) string {
				return "Today's date is " + r.now().Format("January 02, 2006")
			}},
			{[]string{"name"}, func(*Responder, string) string {
				return "I'm ChatBot, your friendly AI assistant!"
			}},
		},
	}
}

// fallback always matches when no keyword group did.
const fallback = "That's interesting! Tell me more, or ask me something else."

// Reply generates the response for a message sent by the named user.
// Matching is case-insensitive substring containment, first group wins.
// name is the display name shown in the greeting; callers pass the
// authenticated identity's name.
func (r *Responder) Reply(name, message string) string {
	lowered := strings.ToLower(message)

	for _, rule := range r.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.reply(r, name)
			}
		}
	}

	return fallback
}
