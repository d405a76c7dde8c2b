// Package quizscreen runs the AI-generated quiz loop.
package quizscreen

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanjizen/internal/content"
	"github.com/abhisek/kanjizen/internal/quiz"
	"github.com/abhisek/kanjizen/internal/screen"
	"github.com/abhisek/kanjizen/internal/ui/components"
	"github.com/abhisek/kanjizen/internal/ui/layout"
	"github.com/abhisek/kanjizen/internal/ui/theme"
)

// phase is the screen's lifecycle state.
type phase int

const (
	phaseLoading phase = iota
	phaseQuestion
	phaseAnswered
	phaseFailed
)

// questionReadyMsg delivers a generated question (or the failure).
// Generation guards against results from an abandoned load.
type questionReadyMsg struct {
	generation int
	question   *quiz.Question
	err        error
}

// QuizScreen shows one generated question at a time.
type QuizScreen struct {
	generator quiz.Generator
	rng       *rand.Rand

	phase      phase
	round      *quiz.Round
	mc         components.MultiChoice
	generation int
	pending    bool
	errText    string

	correct  int
	answered int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz screen. The first question loads on Init.
func New(generator quiz.Generator, rng *rand.Rand) *QuizScreen {
	return &QuizScreen{generator: generator, rng: rng}
}

func (q *QuizScreen) Init() tea.Cmd {
	return q.load()
}

// load kicks off one generation. The pending flag keeps a single load
// in flight.
func (q *QuizScreen) load() tea.Cmd {
	if q.pending {
		return nil
	}
	q.pending = true
	q.phase = phaseLoading
	q.generation++
	gen := q.generation

	candidates := quiz.SampleCandidates(content.N5(), quiz.DefaultConfig().CandidateCount, q.rng)
	return func() tea.Msg {
		question, err := q.generator.Generate(context.Background(), candidates)
		return questionReadyMsg{generation: gen, question: question, err: err}
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		if msg.generation != q.generation {
			return q, nil
		}
		q.pending = false
		if msg.err != nil {
			q.phase = phaseFailed
			q.errText = msg.err.Error()
			return q, nil
		}
		q.round = quiz.NewRound(msg.question)
		q.mc = components.NewMultiChoice(
			msg.question.Text,
			msg.question.Options,
			optionIndex(msg.question.Options, msg.question.CorrectAnswer),
		)
		q.phase = phaseQuestion
		return q, nil

	case tea.KeyMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch q.phase {
	case phaseFailed:
		if msg.String() == "r" {
			return q, q.load()
		}

	case phaseQuestion:
		q.mc, _ = q.mc.Update(msg)
		if q.mc.Submitted {
			if q.round.Answer(q.mc.Options[q.mc.ChosenIndex]) {
				q.correct++
			}
			q.answered++
			q.phase = phaseAnswered
		}

	case phaseAnswered:
		if msg.String() == "enter" || msg.String() == "n" {
			return q, q.load()
		}
	}
	return q, nil
}

func optionIndex(options []string, answer string) int {
	for i, opt := range options {
		if opt == answer {
			return i
		}
	}
	return -1
}

func (q *QuizScreen) View(width, height int) string {
	var body string

	switch q.phase {
	case phaseLoading:
		body = theme.Hint.Render("Sensei is writing a question...")

	case phaseFailed:
		body = theme.Incorrect.Render("Could not generate a question.") + "\n\n" +
			theme.Hint.Render(q.errText) + "\n\n" +
			theme.Body.Render("Press R to retry")

	case phaseQuestion, phaseAnswered:
		body = q.renderQuestion()
	}

	score := ""
	if q.answered > 0 {
		score = theme.Subtitle.Render(fmt.Sprintf("Score: %d / %d", q.correct, q.answered)) + "\n\n"
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(score + body)
}

func (q *QuizScreen) renderQuestion() string {
	question := q.round.Question()
	var b strings.Builder

	b.WriteString(theme.Glyph.Render(question.Kanji) + "\n\n")
	b.WriteString(q.mc.View())

	if q.phase == phaseAnswered {
		verdict := theme.Correct.Render("Correct!")
		if !q.round.Correct() {
			verdict = theme.Incorrect.Render("Not quite.")
		}
		b.WriteString("\n" + verdict + "\n")
		b.WriteString(theme.Hint.Render(question.Explanation) + "\n\n")
		b.WriteString(components.NewButton("Next Question", true, nil).View())
	}

	return b.String()
}

func (q *QuizScreen) Title() string {
	return "AI Quiz"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.phase {
	case phaseFailed:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseAnswered:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Back"},
		}
	}
}
