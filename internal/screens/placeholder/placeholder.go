// Package placeholder shows a notice when an AI feature has no provider.
package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanjizen/internal/screen"
	"github.com/abhisek/kanjizen/internal/ui/theme"
)

// PlaceholderScreen explains that a feature needs an LLM provider.
type PlaceholderScreen struct {
	title string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a new PlaceholderScreen with the given feature title.
func New(title string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	body := p.title + " needs an AI provider.\n\n" +
		"Set one of GEMINI_API_KEY, OPENAI_API_KEY,\n" +
		"ANTHROPIC_API_KEY or OPENROUTER_API_KEY\n" +
		"and restart. Everything else works without it."

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(body)
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}
