package chat

import (
	"math/rand/v2"
	"strings"
	"time"
)

type Mode string

const (
	ModeFree           Mode = "free"
	ModeCollectName    Mode = "collect_name"
	ModeCollectContact Mode = "collect_contact"
	ModeCollectMessage Mode = "collect_message"
)

// Session is the per-client conversation state: the mode flag plus any
// partially collected contact fields.
type Session struct {
	Mode    Mode   `json:"mode"`
	Name    string `json:"name,omitempty"`
	Contact string `json:"contact,omitempty"`
}

func NewSession() Session {
	return Session{Mode: ModeFree}
}

// Lead is a completed contact capture, handed to the admin contact list.
type Lead struct {
	Name       string    `json:"name"`
	Contact    string    `json:"contact"`
	Message    string    `json:"message"`
	CapturedAt time.Time `json:"captured_at"`
}

// Rule maps a keyword to a canned response. StartCollect switches the
// session into contact collection after replying.
type Rule struct {
	Keyword      string
	Response     string
	StartCollect bool
}

// Responder matches free-text input against an ordered rule list,
// first match wins, with a uniformly random fallback when nothing matches.
type Responder struct {
	rules     []Rule
	fallbacks []string
	intN      func(int) int
}

func NewResponder(rules []Rule, fallbacks []string) *Responder {
	return &Responder{
		rules:     rules,
		fallbacks: fallbacks,
		intN:      rand.IntN,
	}
}

// NewSeededResponder pins fallback selection for tests.
func NewSeededResponder(rules []Rule, fallbacks []string, seed uint64) *Responder {
	r := rand.New(rand.NewPCG(seed, seed))
	return &Responder{
		rules:     rules,
		fallbacks: fallbacks,
		intN:      r.IntN,
	}
}

// Respond produces a reply and the next session state. When contact
// collection completes, the captured lead is returned alongside the reply.
func (r *Responder) Respond(s Session, input string, now time.Time) (string, Session, *Lead) {
	text := strings.TrimSpace(input)

	switch s.Mode {
	case ModeCollectName:
		s.Name = text
		s.Mode = ModeCollectContact
		return "Thanks, " + text + "! Please share your email or phone number.", s, nil

	case ModeCollectContact:
		s.Contact = text
		s.Mode = ModeCollectMessage
		return "Got it. What would you like to ask our team?", s, nil

	case ModeCollectMessage:
		lead := &Lead{
			Name:       s.Name,
			Contact:    s.Contact,
			Message:    text,
			CapturedAt: now,
		}
		return "Thank you! Our team will reach out to you shortly.", NewSession(), lead
	}

	lower := strings.ToLower(text)
	for _, rule := range r.rules {
		if strings.Contains(lower, rule.Keyword) {
			next := s
			if rule.StartCollect {
				next = Session{Mode: ModeCollectName}
			}
			return rule.Response, next, nil
		}
	}

	if len(r.fallbacks) == 0 {
		return "", s, nil
	}
	return r.fallbacks[r.intN(len(r.fallbacks))], s, nil
}
