// Package library lists the character corpus by category and opens
// flashcards or the detail view.
package library

import (
	"fmt"
	"math/rand"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanjizen/internal/content"
	"github.com/abhisek/kanjizen/internal/router"
	"github.com/abhisek/kanjizen/internal/screen"
	"github.com/abhisek/kanjizen/internal/screens/detail"
	"github.com/abhisek/kanjizen/internal/screens/flashcardscreen"
	"github.com/abhisek/kanjizen/internal/speech"
	"github.com/abhisek/kanjizen/internal/tutor"
	"github.com/abhisek/kanjizen/internal/ui/layout"
	"github.com/abhisek/kanjizen/internal/ui/theme"
)

// mode selects which pane has focus.
type mode int

const (
	modeCategories mode = iota
	modeEntries
)

// LibraryScreen browses categories and their entries.
type LibraryScreen struct {
	categories []string
	catCursor  int

	mode      mode
	entries   []content.Entry
	entCursor int

	tutorSvc *tutor.Service
	speaker  *speech.Speaker
	rng      *rand.Rand
}

var _ screen.Screen = (*LibraryScreen)(nil)
var _ screen.KeyHintProvider = (*LibraryScreen)(nil)

// New creates the library browser.
func New(tutorSvc *tutor.Service, speaker *speech.Speaker, rng *rand.Rand) *LibraryScreen {
	return &LibraryScreen{
		categories: content.Categories(),
		tutorSvc:   tutorSvc,
		speaker:    speaker,
		rng:        rng,
	}
}

func (l *LibraryScreen) Init() tea.Cmd {
	return nil
}

func (l *LibraryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	if l.mode == modeCategories {
		return l.updateCategories(kmsg)
	}
	return l.updateEntries(kmsg)
}

func (l *LibraryScreen) updateCategories(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "up", "k":
		if l.catCursor > 0 {
			l.catCursor--
		}
	case "down", "j":
		if l.catCursor < len(l.categories)-1 {
			l.catCursor++
		}
	case "enter":
		l.entries = content.ByCategory(l.categories[l.catCursor])
		l.entCursor = 0
		l.mode = modeEntries
	case "s":
		// Study the highlighted category directly.
		category := l.categories[l.catCursor]
		return l, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: flashcardscreen.New(category, l.speaker, l.rng),
			}
		}
	}
	return l, nil
}

func (l *LibraryScreen) updateEntries(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "up", "k":
		if l.entCursor > 0 {
			l.entCursor--
		}
	case "down", "j":
		if l.entCursor < len(l.entries)-1 {
			l.entCursor++
		}
	case "left", "h", "backspace":
		l.mode = modeCategories
	case "enter":
		if len(l.entries) == 0 {
			return l, nil
		}
		id := l.entries[l.entCursor].ID
		return l, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: detail.New(id, l.tutorSvc, l.speaker),
			}
		}
	case "s":
		category := l.categories[l.catCursor]
		return l, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: flashcardscreen.New(category, l.speaker, l.rng),
			}
		}
	}
	return l, nil
}

func (l *LibraryScreen) View(width, height int) string {
	var b strings.Builder

	if l.mode == modeCategories {
		b.WriteString(theme.Subtitle.Render("Step 1: Kana   Step 2: Kanji") + "\n\n")
		for i, c := range l.categories {
			count := len(content.ByCategory(c))
			line := fmt.Sprintf("%s  (%d)", c, count)
			if i == l.catCursor {
				b.WriteString(theme.Selected.Render("  ▸ "+line) + "\n")
			} else {
				b.WriteString(theme.Unselected.Render("    "+line) + "\n")
			}
		}
	} else {
		b.WriteString(theme.Subtitle.Render(l.categories[l.catCursor]) + "\n\n")
		for i, e := range l.entries {
			line := fmt.Sprintf("%s  %s", e.Character, strings.Join(e.Meaning, ", "))
			if i == l.entCursor {
				b.WriteString(theme.Selected.Render("  ▸ "+line) + "\n")
			} else {
				b.WriteString(theme.Unselected.Render("    "+line) + "\n")
			}
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func (l *LibraryScreen) Title() string {
	return "Library"
}

func (l *LibraryScreen) KeyHints() []layout.KeyHint {
	if l.mode == modeCategories {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Open"},
			{Key: "S", Description: "Study"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Detail"},
		{Key: "S", Description: "Study"},
		{Key: "←", Description: "Categories"},
		{Key: "Esc", Description: "Back"},
	}
}
