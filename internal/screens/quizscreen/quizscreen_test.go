package quizscreen

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kanjizen/internal/quiz"
	"github.com/abhisek/kanjizen/internal/screen"
)

// mockGenerator implements quiz.Generator for testing.
type mockGenerator struct {
	question *quiz.Question
	err      error
	calls    int
}

func (m *mockGenerator) Generate(_ context.Context, _ []quiz.Candidate) (*quiz.Question, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	q := *m.question
	return &q, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestion() *quiz.Question {
	return &quiz.Question{
		ID:            "q1",
		Kanji:         "日",
		Text:          "What does this kanji mean?",
		Options:       []string{"sun", "moon", "fire", "water"},
		CorrectAnswer: "sun",
		Explanation:   "日 means sun or day.",
	}
}

// loadQuestion runs Init and feeds its result back through Update.
func loadQuestion(t *testing.T, q *QuizScreen) screen.Screen {
	t.Helper()
	cmd := q.Init()
	if cmd == nil {
		t.Fatal("expected Init to start a load")
	}
	scr, _ := q.Update(cmd())
	return scr
}

func TestQuizScreen_LoadAndAnswer(t *testing.T) {
	gen := &mockGenerator{question: testQuestion()}
	q := New(gen, rand.New(rand.NewSource(1)))

	scr := loadQuestion(t, q)
	qs := scr.(*QuizScreen)
	if qs.phase != phaseQuestion {
		t.Fatalf("phase = %d, want question", qs.phase)
	}

	// Cursor starts on the correct option here.
	scr, _ = qs.Update(specialKey(tea.KeyEnter))
	qs = scr.(*QuizScreen)
	if qs.phase != phaseAnswered {
		t.Fatalf("phase = %d, want answered", qs.phase)
	}
	if !qs.round.Correct() {
		t.Error("expected correct answer")
	}
	if qs.correct != 1 || qs.answered != 1 {
		t.Errorf("score = %d/%d, want 1/1", qs.correct, qs.answered)
	}
}

func TestQuizScreen_WrongAnswer(t *testing.T) {
	gen := &mockGenerator{question: testQuestion()}
	q := New(gen, rand.New(rand.NewSource(1)))

	scr := loadQuestion(t, q)
	qs := scr.(*QuizScreen)

	scr, _ = qs.Update(specialKey(tea.KeyDown))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs = scr.(*QuizScreen)
	if qs.round.Correct() {
		t.Error("expected wrong answer")
	}
	if qs.correct != 0 || qs.answered != 1 {
		t.Errorf("score = %d/%d, want 0/1", qs.correct, qs.answered)
	}
}

func TestQuizScreen_NextQuestionAfterAnswer(t *testing.T) {
	gen := &mockGenerator{question: testQuestion()}
	q := New(gen, rand.New(rand.NewSource(1)))

	scr := loadQuestion(t, q)
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuizScreen)
	if cmd == nil {
		t.Fatal("expected a load command for the next question")
	}
	if qs.phase != phaseLoading {
		t.Errorf("phase = %d, want loading", qs.phase)
	}

	scr, _ = qs.Update(cmd())
	qs = scr.(*QuizScreen)
	if qs.phase != phaseQuestion {
		t.Errorf("phase = %d, want question", qs.phase)
	}
	if gen.calls != 2 {
		t.Errorf("generator calls = %d, want 2", gen.calls)
	}
}

func TestQuizScreen_StaleQuestionDropped(t *testing.T) {
	gen := &mockGenerator{question: testQuestion()}
	q := New(gen, rand.New(rand.NewSource(1)))

	scr := loadQuestion(t, q)
	qs := scr.(*QuizScreen)

	scr, _ = qs.Update(questionReadyMsg{generation: qs.generation - 1, question: testQuestion()})
	if scr.(*QuizScreen).phase != phaseQuestion {
		t.Error("expected stale question to be dropped without a phase change")
	}
}

func TestQuizScreen_FailureAndRetry(t *testing.T) {
	gen := &mockGenerator{err: errors.New("provider down")}
	q := New(gen, rand.New(rand.NewSource(1)))

	scr := loadQuestion(t, q)
	qs := scr.(*QuizScreen)
	if qs.phase != phaseFailed {
		t.Fatalf("phase = %d, want failed", qs.phase)
	}
	if qs.errText == "" {
		t.Error("expected failure text")
	}

	gen.err = nil
	gen.question = testQuestion()
	scr, cmd := qs.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("expected retry to start a load")
	}
	scr, _ = scr.Update(cmd())
	if scr.(*QuizScreen).phase != phaseQuestion {
		t.Error("expected question after retry")
	}
}

func TestQuizScreen_View(t *testing.T) {
	gen := &mockGenerator{question: testQuestion()}
	q := New(gen, rand.New(rand.NewSource(1)))
	if q.View(80, 24) == "" {
		t.Error("expected non-empty loading view")
	}

	scr := loadQuestion(t, q)
	if scr.View(80, 24) == "" {
		t.Error("expected non-empty question view")
	}
}
