// Package flashcardscreen renders a flashcard session for one category.
package flashcardscreen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanjizen/internal/content"
	"github.com/abhisek/kanjizen/internal/flashcards"
	"github.com/abhisek/kanjizen/internal/screen"
	"github.com/abhisek/kanjizen/internal/speech"
	"github.com/abhisek/kanjizen/internal/ui/layout"
	"github.com/abhisek/kanjizen/internal/ui/theme"
)

// advanceDelay is how long the card shows its front face before moving on.
const advanceDelay = 150 * time.Millisecond

// advanceMsg fires after advanceDelay to complete a staged advance.
// Generation guards against ticks from a superseded session state.
type advanceMsg struct {
	generation int
	forward    bool
}

// FlashcardScreen drives one flashcard session.
type FlashcardScreen struct {
	session    *flashcards.Session
	speaker    *speech.Speaker
	generation int
	advancing  bool
}

var _ screen.Screen = (*FlashcardScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardScreen)(nil)

// New starts flashcards over the given category.
func New(category string, speaker *speech.Speaker, rng *rand.Rand) *FlashcardScreen {
	return &FlashcardScreen{
		session: flashcards.New(category, rng),
		speaker: speaker,
	}
}

func (f *FlashcardScreen) Init() tea.Cmd {
	return nil
}

func (f *FlashcardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		if msg.generation != f.generation || !f.advancing {
			return f, nil
		}
		f.advancing = false
		if msg.forward {
			f.session.Next()
		} else {
			f.session.Prev()
		}
		return f, nil

	case tea.KeyMsg:
		return f.handleKey(msg)
	}
	return f, nil
}

func (f *FlashcardScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if f.session.Empty() || f.advancing {
		return f, nil
	}

	switch msg.String() {
	case "enter", " ":
		f.session.Flip()
	case "right", "l", "n":
		return f, f.stageAdvance(true)
	case "left", "h", "p":
		return f, f.stageAdvance(false)
	case "s":
		f.generation++
		f.session.Shuffle()
	case "d":
		if f.session.Direction() == flashcards.PromptMeaning {
			f.session.SetDirection(flashcards.PromptCharacter)
		} else {
			f.session.SetDirection(flashcards.PromptMeaning)
		}
	case "v":
		if e, ok := f.session.Current(); ok {
			f.speaker.Say(e.Character)
		}
	}
	return f, nil
}

// stageAdvance clears the flip, waits briefly so the flip animation
// reads, then moves the cursor.
func (f *FlashcardScreen) stageAdvance(forward bool) tea.Cmd {
	f.session.Unflip()
	f.advancing = true
	gen := f.generation
	return tea.Tick(advanceDelay, func(time.Time) tea.Msg {
		return advanceMsg{generation: gen, forward: forward}
	})
}

func (f *FlashcardScreen) View(width, height int) string {
	if f.session.Empty() {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No cards in this set.")
	}

	e, _ := f.session.Current()

	counter := theme.Subtitle.Render(
		fmt.Sprintf("%s  ·  %d / %d", f.session.Category(), f.session.Position()+1, f.session.Len()))

	var card string
	if f.session.Flipped() {
		card = renderBack(e)
	} else {
		card = renderFront(e, f.session.Direction())
	}

	boxed := theme.Card.Width(min(width-8, 60)).Align(lipgloss.Center).Render(card)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(counter + "\n\n" + boxed)
}

func renderFront(e content.Entry, d flashcards.Direction) string {
	if d == flashcards.PromptCharacter {
		return theme.Glyph.Render(e.Character)
	}
	return theme.Body.Bold(true).Render(strings.Join(e.Meaning, ", "))
}

func renderBack(e content.Entry) string {
	var b strings.Builder

	b.WriteString(theme.Glyph.Render(e.Character) + "\n\n")
	b.WriteString(theme.Body.Render(strings.Join(e.Meaning, ", ")) + "\n")

	if e.IsKana() {
		b.WriteString(theme.Hint.Render("romaji: "+e.PrimaryMeaning()) + "\n")
	} else {
		if len(e.Onyomi) > 0 {
			b.WriteString(theme.Hint.Render("on: "+strings.Join(e.Onyomi, ", ")) + "\n")
		}
		if len(e.Kunyomi) > 0 {
			b.WriteString(theme.Hint.Render("kun: "+strings.Join(e.Kunyomi, ", ")) + "\n")
		}
	}

	b.WriteString("\n" + theme.Body.Render(e.Example))
	if len(e.Sentences) > 0 {
		s := e.Sentences[0]
		b.WriteString("\n\n" + theme.Body.Render(s.Text))
		b.WriteString("\n" + theme.Hint.Render(s.Romaji))
		b.WriteString("\n" + theme.Hint.Render(s.English))
	}
	return b.String()
}

func (f *FlashcardScreen) Title() string {
	return "Flashcards"
}

func (f *FlashcardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Flip"},
		{Key: "←→", Description: "Prev/Next"},
		{Key: "S", Description: "Shuffle"},
		{Key: "D", Description: "Direction"},
		{Key: "V", Description: "Speak"},
		{Key: "Esc", Description: "Back"},
	}
}
