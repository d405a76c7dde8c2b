// Package grammarref renders the N5 grammar reference with
// expandable points.
package grammarref

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanjizen/internal/grammar"
	"github.com/abhisek/kanjizen/internal/screen"
	"github.com/abhisek/kanjizen/internal/speech"
	"github.com/abhisek/kanjizen/internal/ui/layout"
	"github.com/abhisek/kanjizen/internal/ui/theme"
)

// row locates one grammar point in the flattened section list.
type row struct {
	section int
	point   int
}

// GrammarScreen lists grammar points; one can be expanded at a time.
type GrammarScreen struct {
	sections []grammar.Section
	rows     []row
	cursor   int
	expanded int // index into rows, -1 when collapsed
	speaker  *speech.Speaker
}

var _ screen.Screen = (*GrammarScreen)(nil)
var _ screen.KeyHintProvider = (*GrammarScreen)(nil)

// New creates the grammar reference screen.
func New(speaker *speech.Speaker) *GrammarScreen {
	sections := grammar.Sections()
	var rows []row
	for si, sec := range sections {
		for pi := range sec.Points {
			rows = append(rows, row{section: si, point: pi})
		}
	}
	return &GrammarScreen{
		sections: sections,
		rows:     rows,
		expanded: -1,
		speaker:  speaker,
	}
}

func (g *GrammarScreen) Init() tea.Cmd {
	return nil
}

func (g *GrammarScreen) point(i int) grammar.Point {
	r := g.rows[i]
	return g.sections[r.section].Points[r.point]
}

func (g *GrammarScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if g.cursor > 0 {
			g.cursor--
		}
	case "down", "j":
		if g.cursor < len(g.rows)-1 {
			g.cursor++
		}
	case "enter":
		if g.expanded == g.cursor {
			g.expanded = -1
		} else {
			g.expanded = g.cursor
		}
	case "v":
		if g.expanded >= 0 {
			p := g.point(g.expanded)
			if len(p.Examples) > 0 {
				g.speaker.Say(p.Examples[0].Japanese)
			}
		}
	}
	return g, nil
}

func (g *GrammarScreen) View(width, height int) string {
	var b strings.Builder

	for i, r := range g.rows {
		if r.point == 0 {
			b.WriteString(theme.Subtitle.Render("★ "+g.sections[r.section].Title) + "\n")
		}

		p := g.point(i)
		if i == g.cursor {
			b.WriteString(theme.Selected.Render("  ▸ "+p.Title) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("    "+p.Title) + "\n")
		}

		if i == g.expanded {
			b.WriteString(g.renderExpanded(p, width))
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 6).
		Render(b.String())
}

func (g *GrammarScreen) renderExpanded(p grammar.Point, width int) string {
	wrap := min(width-20, 70)
	var b strings.Builder

	b.WriteString(theme.Hint.Width(wrap).Render(p.Description) + "\n")
	b.WriteString(theme.Body.Bold(true).Render("      "+p.Structure) + "\n")
	for _, ex := range p.Examples {
		b.WriteString(theme.Body.Render("      "+ex.Japanese) + "\n")
		b.WriteString(theme.Hint.Render("      "+ex.Romaji+"  ·  "+ex.English) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (g *GrammarScreen) Title() string {
	return "Grammar Guide"
}

func (g *GrammarScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Expand"},
		{Key: "V", Description: "Speak example"},
		{Key: "Esc", Description: "Back"},
	}
}
