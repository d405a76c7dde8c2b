package quiz

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a JLPT N5 examiner creating multiple choice quiz questions for European beginners.

Rules:
- Generate a single question testing one of the provided kanji.
- Model the question on the actual JLPT, e.g. "Select the correct reading for this character" or "Which kanji fits this sentence?".
- Provide exactly 4 options where exactly one is correct. Distractors should be plausible confusions (similar readings, similar shapes, related meanings), not random values.
- The correctAnswer must match one option verbatim.
- Use simple English in the question and explanation.
- The explanation should briefly say why the answer is right and why the others are wrong.`

// buildUserMessage lists the candidate kanji for the prompt.
func buildUserMessage(candidates []Candidate) string {
	var b strings.Builder

	b.WriteString("Create one quiz question using one of these kanji:\n")
	for _, c := range candidates {
		fmt.Fprintf(&b, "- %s (%s)\n", c.Character, c.Meaning)
	}

	return b.String()
}
