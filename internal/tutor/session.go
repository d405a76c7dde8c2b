package tutor

import (
	"fmt"
	"strings"

	"github.com/abhisek/kanjizen/internal/llm"
)

// Greeting opens a chat that was not seeded with a topic.
const Greeting = "Konnichiwa! I am Sensei. How can I help you learn Japanese today?"

// Speaker identifies who wrote a transcript entry.
type Speaker int

const (
	SpeakerUser Speaker = iota
	SpeakerTutor
)

// Entry is one line of the chat transcript.
type Entry struct {
	Speaker Speaker
	Text    string
}

// Session is the append-only chat transcript plus in-flight bookkeeping.
// It is pure state: the caller runs Send's outgoing transcript through
// Service.Reply and hands the result to Receive with the same generation.
type Session struct {
	entries    []Entry
	pending    bool
	generation int
}

// NewSession starts a chat. A non-empty contextPhrase seeds the transcript
// with an auto-sent question about it, leaving a reply pending. An empty
// phrase seeds a static greeting with no call required.
func NewSession(contextPhrase string) *Session {
	s := &Session{}
	if strings.TrimSpace(contextPhrase) != "" {
		msg := fmt.Sprintf("Can you tell me about %s?", contextPhrase)
		s.entries = append(s.entries, Entry{Speaker: SpeakerUser, Text: msg})
		s.pending = true
		s.generation++
	} else {
		s.entries = append(s.entries, Entry{Speaker: SpeakerTutor, Text: Greeting})
	}
	return s
}

// Entries returns a copy of the transcript.
func (s *Session) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Pending reports whether a reply is in flight.
func (s *Session) Pending() bool { return s.pending }

// Generation identifies the in-flight request. Receive calls carrying a
// stale generation are discarded.
func (s *Session) Generation() int { return s.generation }

// Send appends a user message and marks a reply pending. It returns the
// transcript to send to the provider and the generation to echo back via
// Receive. Empty or whitespace-only text, or a send while a reply is
// pending, is rejected.
func (s *Session) Send(text string) (transcript []llm.Message, generation int, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" || s.pending {
		return nil, 0, false
	}
	s.entries = append(s.entries, Entry{Speaker: SpeakerUser, Text: text})
	s.pending = true
	s.generation++
	return s.Transcript(), s.generation, true
}

// Transcript converts the entries into provider messages.
func (s *Session) Transcript() []llm.Message {
	out := make([]llm.Message, 0, len(s.entries))
	for _, e := range s.entries {
		role := llm.RoleUser
		if e.Speaker == SpeakerTutor {
			role = llm.RoleAssistant
		}
		out = append(out, llm.Message{Role: role, Content: e.Text})
	}
	return out
}

// Receive appends the tutor's reply for the given generation. Replies for
// a superseded generation, or arriving with nothing pending, are dropped.
func (s *Session) Receive(generation int, reply string) bool {
	if !s.pending || generation != s.generation {
		return false
	}
	s.entries = append(s.entries, Entry{Speaker: SpeakerTutor, Text: reply})
	s.pending = false
	return true
}
