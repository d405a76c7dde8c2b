package quiz

import (
	"math/rand"

	"github.com/abhisek/kanjizen/internal/content"
)

// SampleCandidates draws n candidates without replacement from the entries.
// Fewer entries than n yields all of them.
func SampleCandidates(entries []content.Entry, n int, rng *rand.Rand) []Candidate {
	idx := rng.Perm(len(entries))
	if n > len(idx) {
		n = len(idx)
	}
	out := make([]Candidate, 0, n)
	for _, i := range idx[:n] {
		out = append(out, Candidate{
			Character: entries[i].Character,
			Meaning:   entries[i].PrimaryMeaning(),
		})
	}
	return out
}

// Round grades a single question. Answering is single-shot: the first
// choice locks in and later calls are ignored.
type Round struct {
	question *Question
	answered bool
	chosen   string
}

// NewRound starts grading for one question.
func NewRound(q *Question) *Round {
	return &Round{question: q}
}

// Question returns the question under grading.
func (r *Round) Question() *Question { return r.question }

// Answered reports whether a choice has been locked in.
func (r *Round) Answered() bool { return r.answered }

// Chosen returns the locked-in option, or "" before answering.
func (r *Round) Chosen() string { return r.chosen }

// Answer locks in the given option and reports whether it was correct.
// Calls after the first return the original verdict unchanged.
func (r *Round) Answer(option string) bool {
	if !r.answered {
		r.answered = true
		r.chosen = option
	}
	return r.Correct()
}

// Correct reports whether the locked-in answer was right.
// Always false before answering.
func (r *Round) Correct() bool {
	return r.answered && r.chosen == r.question.CorrectAnswer
}
