// Package pairinggame renders the glyph/meaning matching game.
package pairinggame

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanjizen/internal/content"
	"github.com/abhisek/kanjizen/internal/pairing"
	"github.com/abhisek/kanjizen/internal/screen"
	"github.com/abhisek/kanjizen/internal/speech"
	"github.com/abhisek/kanjizen/internal/ui/components"
	"github.com/abhisek/kanjizen/internal/ui/layout"
	"github.com/abhisek/kanjizen/internal/ui/theme"
)

// mismatchDelay is how long mismatched tiles stay revealed.
const mismatchDelay = time.Second

const columns = 4

// resolveMsg fires after mismatchDelay to hide a mismatched pair.
// Generation guards against ticks from a restarted game.
type resolveMsg struct {
	generation int
}

// PairingScreen drives one matching game.
type PairingScreen struct {
	game       *pairing.Game
	speaker    *speech.Speaker
	rng        *rand.Rand
	cursor     int
	generation int
}

var _ screen.Screen = (*PairingScreen)(nil)
var _ screen.KeyHintProvider = (*PairingScreen)(nil)

// New starts a game over the kanji corpus.
func New(speaker *speech.Speaker, rng *rand.Rand) *PairingScreen {
	return &PairingScreen{
		game:    pairing.NewGame(content.Kanji(), pairing.DefaultPairs, rng),
		speaker: speaker,
		rng:     rng,
	}
}

func (p *PairingScreen) Init() tea.Cmd {
	return nil
}

func (p *PairingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resolveMsg:
		if msg.generation != p.generation {
			return p, nil
		}
		p.game.ResolveMismatch()
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *PairingScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	tiles := p.game.Tiles()

	switch msg.String() {
	case "left", "h":
		if p.cursor%columns > 0 {
			p.cursor--
		}
	case "right", "l":
		if p.cursor%columns < columns-1 && p.cursor+1 < len(tiles) {
			p.cursor++
		}
	case "up", "k":
		if p.cursor >= columns {
			p.cursor -= columns
		}
	case "down", "j":
		if p.cursor+columns < len(tiles) {
			p.cursor += columns
		}
	case "r":
		p.generation++
		p.game = pairing.NewGame(content.Kanji(), pairing.DefaultPairs, p.rng)
		p.cursor = 0
	case "enter", " ":
		if p.cursor >= len(tiles) {
			return p, nil
		}
		tile := tiles[p.cursor]
		switch p.game.Select(tile.Key) {
		case pairing.First:
			if tile.Face == pairing.FaceGlyph {
				p.speaker.Say(tile.Label)
			}
		case pairing.Matched:
			p.speaker.Say(tile.Label)
		case pairing.Mismatch:
			gen := p.generation
			return p, tea.Tick(mismatchDelay, func(time.Time) tea.Msg {
				return resolveMsg{generation: gen}
			})
		}
	}
	return p, nil
}

func (p *PairingScreen) View(width, height int) string {
	var b strings.Builder

	if p.game.Won() {
		b.WriteString(theme.Correct.Render("お見事! All pairs matched!") + "\n\n")
		b.WriteString(theme.Hint.Render("Press R to play again") + "\n\n")
	} else {
		b.WriteString(theme.Subtitle.Render("Match each kanji to its meaning") + "\n")
		label := fmt.Sprintf("%d / %d", p.game.MatchedCount(), p.game.Pairs())
		bar := components.NewProgressBar(label, float64(p.game.MatchedCount())/float64(p.game.Pairs()), false, 36)
		b.WriteString(bar.View() + "\n\n")
	}

	tiles := p.game.Tiles()
	var rows []string
	for start := 0; start < len(tiles); start += columns {
		end := min(start+columns, len(tiles))
		var cells []string
		for i := start; i < end; i++ {
			cells = append(cells, p.renderTile(tiles[i], i == p.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, cells...))
	}
	b.WriteString(strings.Join(rows, "\n"))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func (p *PairingScreen) renderTile(t pairing.Tile, underCursor bool) string {
	label := t.Label
	if w := lipgloss.Width(label); w < 10 {
		pad := (10 - w) / 2
		label = strings.Repeat(" ", pad) + label + strings.Repeat(" ", 10-w-pad)
	}

	style := theme.TileFaceUp
	switch {
	case p.game.IsMatched(t.Key):
		style = theme.TileMatched
	case p.game.IsSelected(t.Key) || p.game.InMismatch(t.Key):
		style = theme.TileSelected
	}
	if underCursor {
		style = style.BorderForeground(theme.Accent)
	}
	return style.Render(label)
}

func (p *PairingScreen) Title() string {
	return "Pairing Game"
}

func (p *PairingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓←→", Description: "Move"},
		{Key: "Enter", Description: "Select"},
		{Key: "R", Description: "Restart"},
		{Key: "Esc", Description: "Back"},
	}
}
