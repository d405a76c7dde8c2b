// Package flashcards holds the deck-review state machine. It is pure state:
// presentation timing (the flip-clearing delay before advancing) lives in the
// screen layer.
package flashcards

import (
	"math/rand"

	"github.com/abhisek/kanjizen/internal/content"
)

// Direction selects which face of a card is the prompt.
type Direction int

const (
	// PromptMeaning shows the English meaning first; the learner recalls the character.
	PromptMeaning Direction = iota
	// PromptCharacter shows the character first; the learner recalls the meaning.
	PromptCharacter
)

// Session is one flashcard run over a single category's deck.
type Session struct {
	category  string
	deck      []content.Entry
	pos       int
	flipped   bool
	direction Direction
	rng       *rand.Rand
}

// New starts a session over the given category. An unknown category yields an
// empty deck, which the caller renders as a "no cards" state.
func New(category string, rng *rand.Rand) *Session {
	return &Session{
		category: category,
		deck:     content.ByCategory(category),
		rng:      rng,
	}
}

// Category returns the category label the session was started with.
func (s *Session) Category() string { return s.category }

// Empty reports whether the deck has no cards.
func (s *Session) Empty() bool { return len(s.deck) == 0 }

// Len returns the deck size.
func (s *Session) Len() int { return len(s.deck) }

// Position returns the zero-based index of the current card.
func (s *Session) Position() int { return s.pos }

// Current returns the card under the cursor.
func (s *Session) Current() (content.Entry, bool) {
	if s.Empty() {
		return content.Entry{}, false
	}
	return s.deck[s.pos], true
}

// Flipped reports whether the back face is showing.
func (s *Session) Flipped() bool { return s.flipped }

// Direction returns the current prompt orientation.
func (s *Session) Direction() Direction { return s.direction }

// Flip toggles between front and back face.
func (s *Session) Flip() {
	if s.Empty() {
		return
	}
	s.flipped = !s.flipped
}

// Unflip shows the front face. Used to stage the advance animation.
func (s *Session) Unflip() {
	s.flipped = false
}

// Next moves to the following card, wrapping past the end. The new card
// always starts on its front face.
func (s *Session) Next() {
	if s.Empty() {
		return
	}
	s.pos = (s.pos + 1) % len(s.deck)
	s.flipped = false
}

// Prev moves to the preceding card, wrapping before the start.
func (s *Session) Prev() {
	if s.Empty() {
		return
	}
	s.pos = (s.pos - 1 + len(s.deck)) % len(s.deck)
	s.flipped = false
}

// Shuffle reorders the deck (Fisher-Yates) and restarts from the first card.
func (s *Session) Shuffle() {
	for i := len(s.deck) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		s.deck[i], s.deck[j] = s.deck[j], s.deck[i]
	}
	s.pos = 0
	s.flipped = false
}

// SetDirection switches the prompt orientation. The flip state resets so the
// card never shows a stale back face for the new orientation.
func (s *Session) SetDirection(d Direction) {
	if d == s.direction {
		return
	}
	s.direction = d
	s.flipped = false
}
