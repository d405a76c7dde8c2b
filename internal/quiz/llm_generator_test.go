package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/kanjizen/internal/llm"
)

var testCandidates = []Candidate{
	{Character: "一", Meaning: "One"},
	{Character: "二", Meaning: "Two"},
	{Character: "山", Meaning: "Mountain"},
	{Character: "川", Meaning: "River"},
	{Character: "本", Meaning: "Book"},
}

const validPayload = `{
	"kanji": "山",
	"question": "Select the correct reading for this character: 山",
	"options": ["yama", "kawa", "hon", "hito"],
	"correctAnswer": "yama",
	"explanation": "山 (mountain) is read 'yama'. 川 is 'kawa', 本 is 'hon', 人 is 'hito'."
}`

func TestGenerateValidQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(validPayload),
	})
	g := New(mock, DefaultConfig())

	q, err := g.Generate(context.Background(), testCandidates)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if q.ID == "" {
		t.Error("question has empty id")
	}
	if q.Kanji != "山" {
		t.Errorf("kanji = %q, want 山", q.Kanji)
	}
	if len(q.Options) != 4 {
		t.Errorf("options = %d, want 4", len(q.Options))
	}
	if q.CorrectAnswer != "yama" {
		t.Errorf("correctAnswer = %q, want yama", q.CorrectAnswer)
	}

	// The request carries the schema and all candidates.
	if len(mock.Calls) != 1 {
		t.Fatalf("provider calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "quiz-question" {
		t.Error("request missing quiz-question schema")
	}
	if len(req.Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(req.Messages))
	}
	for _, c := range testCandidates {
		if !strings.Contains(req.Messages[0].Content, c.Character) {
			t.Errorf("prompt missing candidate %s", c.Character)
		}
	}
}

func TestGenerateRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{
			"three options",
			`{"kanji":"山","question":"q","options":["a","b","c"],"correctAnswer":"a","explanation":"e"}`,
		},
		{
			"answer not among options",
			`{"kanji":"山","question":"q","options":["a","b","c","d"],"correctAnswer":"z","explanation":"e"}`,
		},
		{
			"empty kanji",
			`{"kanji":"","question":"q","options":["a","b","c","d"],"correctAnswer":"a","explanation":"e"}`,
		},
		{
			"empty question",
			`{"kanji":"山","question":"","options":["a","b","c","d"],"correctAnswer":"a","explanation":"e"}`,
		},
		{
			"empty explanation",
			`{"kanji":"山","question":"q","options":["a","b","c","d"],"correctAnswer":"a","explanation":""}`,
		},
		{
			"duplicate options",
			`{"kanji":"山","question":"q","options":["a","a","c","d"],"correctAnswer":"a","explanation":"e"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{
				Content: json.RawMessage(tt.payload),
			})
			g := New(mock, DefaultConfig())

			_, err := g.Generate(context.Background(), testCandidates)
			if err == nil {
				t.Fatal("expected validation error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error %v is not a ValidationError", err)
			}
		})
	}
}

func TestGenerateProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue fails
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), testCandidates); err == nil {
		t.Fatal("expected error from failing provider")
	}
}

func TestGenerateNoCandidates(t *testing.T) {
	g := New(llm.NewMockProvider(), DefaultConfig())
	if _, err := g.Generate(context.Background(), nil); err == nil {
		t.Fatal("expected error with no candidates")
	}
}
