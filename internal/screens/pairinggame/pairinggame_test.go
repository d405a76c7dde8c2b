package pairinggame

import (
	"math/rand"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kanjizen/internal/pairing"
	"github.com/abhisek/kanjizen/internal/screen"
	"github.com/abhisek/kanjizen/internal/speech"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(t *testing.T) *PairingScreen {
	t.Setenv("KANJIZEN_NO_SPEECH", "1")
	return New(speech.NewSpeaker(), rand.New(rand.NewSource(1)))
}

// pairIndices finds a matching pair and a third tile from another pair.
func pairIndices(tiles []pairing.Tile) (first, second, other int) {
	first, second, other = -1, -1, -1
	for i := 1; i < len(tiles); i++ {
		if tiles[i].PairKey == tiles[0].PairKey {
			second = i
		} else if other == -1 {
			other = i
		}
	}
	return 0, second, other
}

func selectAt(t *testing.T, scr screen.Screen, index int) (screen.Screen, tea.Cmd) {
	t.Helper()
	ps := scr.(*PairingScreen)
	ps.cursor = index
	return ps.Update(specialKey(tea.KeyEnter))
}

func TestPairingScreen_MatchPair(t *testing.T) {
	p := testScreen(t)
	first, second, _ := pairIndices(p.game.Tiles())

	var scr screen.Screen = p
	scr, _ = selectAt(t, scr, first)
	scr, _ = selectAt(t, scr, second)

	ps := scr.(*PairingScreen)
	if !ps.game.IsMatched(ps.game.Tiles()[first].Key) {
		t.Error("expected pair matched")
	}
	if ps.game.MatchedCount() != 1 {
		t.Errorf("matched count = %d, want 1", ps.game.MatchedCount())
	}
}

func TestPairingScreen_MismatchResolvesOnTick(t *testing.T) {
	p := testScreen(t)
	first, _, other := pairIndices(p.game.Tiles())

	var scr screen.Screen = p
	scr, _ = selectAt(t, scr, first)
	scr, cmd := selectAt(t, scr, other)
	if cmd == nil {
		t.Fatal("expected a tick command after mismatch")
	}

	ps := scr.(*PairingScreen)
	key := ps.game.Tiles()[first].Key
	if !ps.game.InMismatch(key) {
		t.Fatal("expected tiles held in mismatch")
	}

	// A tick from a superseded game must not resolve anything.
	scr, _ = ps.Update(resolveMsg{generation: ps.generation + 1})
	ps = scr.(*PairingScreen)
	if !ps.game.InMismatch(key) {
		t.Error("expected stale tick to be dropped")
	}

	scr, _ = ps.Update(resolveMsg{generation: ps.generation})
	ps = scr.(*PairingScreen)
	if ps.game.InMismatch(key) {
		t.Error("expected mismatch resolved")
	}
	if ps.game.MatchedCount() != 0 {
		t.Error("expected no pairs matched after mismatch")
	}
}

func TestPairingScreen_Restart(t *testing.T) {
	p := testScreen(t)
	first, second, _ := pairIndices(p.game.Tiles())

	var scr screen.Screen = p
	scr, _ = selectAt(t, scr, first)
	scr, _ = selectAt(t, scr, second)

	scr, _ = scr.Update(keyPress('r'))
	ps := scr.(*PairingScreen)
	if ps.generation != 1 {
		t.Errorf("generation = %d, want 1", ps.generation)
	}
	if ps.cursor != 0 {
		t.Errorf("cursor = %d, want 0", ps.cursor)
	}
	if ps.game.MatchedCount() != 0 {
		t.Error("expected a fresh board after restart")
	}
}

func TestPairingScreen_CursorMovement(t *testing.T) {
	p := testScreen(t)

	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyRight))
	scr, _ = scr.Update(specialKey(tea.KeyDown))
	ps := scr.(*PairingScreen)
	if ps.cursor != columns+1 {
		t.Errorf("cursor = %d, want %d", ps.cursor, columns+1)
	}

	scr, _ = ps.Update(specialKey(tea.KeyLeft))
	scr, _ = scr.Update(specialKey(tea.KeyUp))
	ps = scr.(*PairingScreen)
	if ps.cursor != 0 {
		t.Errorf("cursor = %d, want 0", ps.cursor)
	}

	// Left edge stays put.
	scr, _ = ps.Update(specialKey(tea.KeyLeft))
	ps = scr.(*PairingScreen)
	if ps.cursor != 0 {
		t.Errorf("cursor = %d, want 0", ps.cursor)
	}
}

func TestPairingScreen_View(t *testing.T) {
	p := testScreen(t)
	if p.View(80, 24) == "" {
		t.Error("expected non-empty board view")
	}
}
