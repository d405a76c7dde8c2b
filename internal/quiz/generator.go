package quiz

import "context"

// Candidate is one kanji the generator may build a question around.
type Candidate struct {
	Character string
	Meaning   string
}

// Generator produces quiz questions.
type Generator interface {
	// Generate produces a single validated question drawn from the
	// candidate kanji.
	Generate(ctx context.Context, candidates []Candidate) (*Question, error)
}
