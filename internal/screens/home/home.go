package home

import (
	"math/rand"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanjizen/internal/quiz"
	"github.com/abhisek/kanjizen/internal/router"
	"github.com/abhisek/kanjizen/internal/screen"
	"github.com/abhisek/kanjizen/internal/screens/chat"
	"github.com/abhisek/kanjizen/internal/screens/grammarref"
	"github.com/abhisek/kanjizen/internal/screens/library"
	"github.com/abhisek/kanjizen/internal/screens/pairinggame"
	"github.com/abhisek/kanjizen/internal/screens/placeholder"
	"github.com/abhisek/kanjizen/internal/screens/quizscreen"
	"github.com/abhisek/kanjizen/internal/speech"
	"github.com/abhisek/kanjizen/internal/tutor"
	"github.com/abhisek/kanjizen/internal/ui/components"
	"github.com/abhisek/kanjizen/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home menu. generator and tutorSvc may be nil when no
// LLM provider is configured; the AI entries then open an explanation
// screen instead.
func New(generator quiz.Generator, tutorSvc *tutor.Service, speaker *speech.Speaker, rng *rand.Rand) *HomeScreen {
	push := func(s screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}
	}

	items := []components.MenuItem{
		{Label: "CHARACTER LIBRARY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: library.New(tutorSvc, speaker, rng),
				}
			}
		}},
		{Label: "PAIRING GAME", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: pairinggame.New(speaker, rng)}
			}
		}},
		{Label: "AI QUIZ", Action: func() tea.Cmd {
			if generator == nil {
				return push(placeholder.New("AI Quiz"))()
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(generator, rng)}
			}
		}},
		{Label: "SENSEI CHAT", Action: func() tea.Cmd {
			if tutorSvc == nil {
				return push(placeholder.New("Sensei Chat"))()
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chat.New(tutorSvc, "")}
			}
		}},
		{Label: "GRAMMAR GUIDE", Action: push(grammarref.New(speaker))},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("漢字 KanjiZen")
	subtitle := theme.Subtitle.Render("Your zen path to JLPT N5")

	parts := []string{title, subtitle, "", h.menu.View()}
	content := strings.Join(parts, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
