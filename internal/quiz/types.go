// Package quiz generates and grades JLPT-N5 style multiple-choice questions.
package quiz

// Question is a validated multiple-choice question ready for display.
type Question struct {
	// ID uniquely identifies this generated question.
	ID string

	// Kanji is the character being tested.
	Kanji string

	// Text is the question prompt, e.g. "Select the correct reading".
	Text string

	// Options are the four answer choices in display order.
	Options []string

	// CorrectAnswer is the text of the correct option.
	CorrectAnswer string

	// Explanation says why the answer is right and the others are wrong.
	Explanation string
}
