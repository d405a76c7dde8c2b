// Package chat is the Sensei conversation screen.
package chat

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanjizen/internal/llm"
	"github.com/abhisek/kanjizen/internal/screen"
	"github.com/abhisek/kanjizen/internal/tutor"
	"github.com/abhisek/kanjizen/internal/ui/components"
	"github.com/abhisek/kanjizen/internal/ui/layout"
	"github.com/abhisek/kanjizen/internal/ui/theme"
)

// replyMsg delivers the tutor's response for one generation.
type replyMsg struct {
	generation int
	text       string
}

// ChatScreen renders the transcript and input line.
type ChatScreen struct {
	svc     *tutor.Service
	session *tutor.Session
	input   components.TextInput
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New opens a chat. A non-empty contextPhrase auto-asks Sensei about it.
func New(svc *tutor.Service, contextPhrase string) *ChatScreen {
	return &ChatScreen{
		svc:     svc,
		session: tutor.NewSession(contextPhrase),
		input:   components.NewTextInput("Ask Sensei...", false, 200),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{c.input.Init()}
	// A context-seeded session opens with a question already in flight.
	if c.session.Pending() {
		cmds = append(cmds, c.requestReply(c.session.Transcript(), c.session.Generation()))
	}
	return tea.Batch(cmds...)
}

func (c *ChatScreen) requestReply(transcript []llm.Message, generation int) tea.Cmd {
	return func() tea.Msg {
		text := c.svc.Reply(context.Background(), transcript)
		return replyMsg{generation: generation, text: text}
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		c.session.Receive(msg.generation, msg.text)
		return c, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			transcript, gen, ok := c.session.Send(c.input.Value())
			if !ok {
				return c, nil
			}
			c.input.Model.SetValue("")
			return c, c.requestReply(transcript, gen)
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ChatScreen) View(width, height int) string {
	maxLine := min(width-12, 70)

	var b strings.Builder
	for _, e := range c.session.Entries() {
		switch e.Speaker {
		case tutor.SpeakerUser:
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Accent).Bold(true).Render("You: ") +
				theme.Body.Width(maxLine).Render(e.Text) + "\n\n")
		case tutor.SpeakerTutor:
			b.WriteString(theme.Selected.Render("先生: ") +
				theme.Body.Width(maxLine).Render(e.Text) + "\n\n")
		}
	}
	if c.session.Pending() {
		b.WriteString(theme.Hint.Render("Sensei is thinking...") + "\n\n")
	}

	b.WriteString(theme.Body.Render("> ") + c.input.View())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(b.String())
}

func (c *ChatScreen) Title() string {
	return "Sensei Chat"
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}
