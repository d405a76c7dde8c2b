// Package detail shows one character with readings, sentences, and an
// on-demand AI mnemonic.
package detail

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanjizen/internal/content"
	"github.com/abhisek/kanjizen/internal/router"
	"github.com/abhisek/kanjizen/internal/screen"
	"github.com/abhisek/kanjizen/internal/screens/chat"
	"github.com/abhisek/kanjizen/internal/speech"
	"github.com/abhisek/kanjizen/internal/tutor"
	"github.com/abhisek/kanjizen/internal/ui/layout"
	"github.com/abhisek/kanjizen/internal/ui/theme"
)

// mnemonicMsg delivers the generated mnemonic for one generation.
type mnemonicMsg struct {
	generation int
	text       string
}

// DetailScreen shows one entry of the corpus.
type DetailScreen struct {
	entry    content.Entry
	found    bool
	tutorSvc *tutor.Service
	speaker  *speech.Speaker

	mnemonic        string
	mnemonicLoading bool
	generation      int
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// New opens the detail view for the given entry id. tutorSvc may be nil.
func New(id string, tutorSvc *tutor.Service, speaker *speech.Speaker) *DetailScreen {
	e, ok := content.ByID(id)
	return &DetailScreen{
		entry:    e,
		found:    ok,
		tutorSvc: tutorSvc,
		speaker:  speaker,
	}
}

func (d *DetailScreen) Init() tea.Cmd {
	return nil
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case mnemonicMsg:
		if msg.generation != d.generation {
			return d, nil
		}
		d.mnemonicLoading = false
		d.mnemonic = msg.text
		return d, nil

	case tea.KeyMsg:
		return d.handleKey(msg)
	}
	return d, nil
}

func (d *DetailScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if !d.found {
		return d, nil
	}

	switch msg.String() {
	case "right", "l", "n":
		if next, ok := content.Next(d.entry.ID); ok {
			d.show(next)
		}
	case "left", "h", "p":
		if prev, ok := content.Prev(d.entry.ID); ok {
			d.show(prev)
		}
	case "v":
		d.speaker.Say(d.entry.Character)
	case "m":
		if d.tutorSvc == nil || d.mnemonicLoading || d.entry.IsKana() {
			return d, nil
		}
		d.mnemonicLoading = true
		gen := d.generation
		character, meaning := d.entry.Character, d.entry.PrimaryMeaning()
		return d, func() tea.Msg {
			text := d.tutorSvc.Mnemonic(context.Background(), character, meaning)
			return mnemonicMsg{generation: gen, text: text}
		}
	case "c":
		if d.tutorSvc == nil {
			return d, nil
		}
		phrase := "the character " + d.entry.Character
		return d, func() tea.Msg {
			return router.PushScreenMsg{Screen: chat.New(d.tutorSvc, phrase)}
		}
	}
	return d, nil
}

// show switches to another entry, resetting per-entry state. Bumping the
// generation orphans any mnemonic still in flight.
func (d *DetailScreen) show(e content.Entry) {
	d.entry = e
	d.mnemonic = ""
	d.mnemonicLoading = false
	d.generation++
}

func (d *DetailScreen) View(width, height int) string {
	if !d.found {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Character not found.")
	}

	e := d.entry
	var b strings.Builder

	b.WriteString(theme.Glyph.Render(e.Character) + "\n\n")
	b.WriteString(theme.Body.Bold(true).Render(strings.Join(e.Meaning, ", ")))
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("   %s · %d strokes", e.Level, e.Strokes)) + "\n\n")

	if e.IsKana() {
		b.WriteString(theme.Hint.Render("romaji: "+e.PrimaryMeaning()) + "\n")
	} else {
		b.WriteString(theme.Hint.Render("onyomi:  "+strings.Join(e.Onyomi, ", ")) + "\n")
		b.WriteString(theme.Hint.Render("kunyomi: "+strings.Join(e.Kunyomi, ", ")) + "\n")
	}
	b.WriteString("\n" + theme.Body.Render(e.Example) + "\n")

	for _, s := range e.Sentences {
		b.WriteString("\n" + theme.Body.Render(s.Text) + "\n")
		b.WriteString(theme.Hint.Render(s.Romaji+"  ·  "+s.English) + "\n")
	}

	if d.mnemonicLoading {
		b.WriteString("\n" + theme.Hint.Render("Consulting ancient scrolls...") + "\n")
	} else if d.mnemonic != "" {
		b.WriteString("\n" + theme.Selected.Render("Mnemonic: ") +
			theme.Body.Width(min(width-16, 60)).Render(d.mnemonic) + "\n")
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func (d *DetailScreen) Title() string {
	return "Character Detail"
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Prev/Next"},
		{Key: "V", Description: "Speak"},
	}
	if d.tutorSvc != nil {
		if !d.entry.IsKana() {
			hints = append(hints, layout.KeyHint{Key: "M", Description: "Mnemonic"})
		}
		hints = append(hints, layout.KeyHint{Key: "C", Description: "Ask Sensei"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}
