// Package pairing implements the memory-matching game over glyph/meaning
// tile pairs. The engine is pure state; the mismatch presentation delay is
// scheduled by the screen layer and resolved via ResolveMismatch.
package pairing

import (
	"math/rand"

	"github.com/abhisek/kanjizen/internal/content"
)

// Face tells which side of a pair a tile shows.
type Face int

const (
	FaceGlyph Face = iota
	FaceMeaning
)

// Tile is one selectable cell on the board.
type Tile struct {
	// Key is unique per tile, e.g. "48-glyph".
	Key string
	// PairKey is shared by the two tiles of one pair (the entry id).
	PairKey string
	// Label is the rendered text: the character or the primary meaning.
	Label string
	Face  Face
}

// SelectResult reports what a Select call did.
type SelectResult int

const (
	// Ignored: the click hit a matched tile, or arrived while a mismatch is
	// resolving or after the game was won.
	Ignored SelectResult = iota
	// Deselected: the selected tile was clicked again.
	Deselected
	// First: the tile became the selection; no pair judged yet.
	First
	// Matched: the second tile completed its pair.
	Matched
	// Mismatch: the second tile did not pair; both stay revealed until
	// ResolveMismatch.
	Mismatch
)

// DefaultPairs is the standard board size.
const DefaultPairs = 6

// Game is one round of the matching game.
type Game struct {
	tiles    []Tile
	matched  map[string]bool // pair keys
	selected string          // tile key, empty if none
	mismatch [2]string       // tile keys, zero values if none
	resolving bool
	pairs    int
}

// NewGame builds a board of pairs sampled without replacement from entries.
// If entries holds fewer than pairs candidates, the board shrinks to fit.
func NewGame(entries []content.Entry, pairs int, rng *rand.Rand) *Game {
	if pairs > len(entries) {
		pairs = len(entries)
	}
	sample := make([]content.Entry, len(entries))
	copy(sample, entries)
	rng.Shuffle(len(sample), func(i, j int) {
		sample[i], sample[j] = sample[j], sample[i]
	})
	sample = sample[:pairs]

	tiles := make([]Tile, 0, pairs*2)
	for _, e := range sample {
		tiles = append(tiles,
			Tile{Key: e.ID + "-glyph", PairKey: e.ID, Label: e.Character, Face: FaceGlyph},
			Tile{Key: e.ID + "-meaning", PairKey: e.ID, Label: e.PrimaryMeaning(), Face: FaceMeaning},
		)
	}
	rng.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})

	return &Game{
		tiles:   tiles,
		matched: make(map[string]bool, pairs),
		pairs:   pairs,
	}
}

// Tiles returns the board in display order.
func (g *Game) Tiles() []Tile {
	out := make([]Tile, len(g.tiles))
	copy(out, g.tiles)
	return out
}

// Pairs returns the number of pairs on the board.
func (g *Game) Pairs() int { return g.pairs }

// IsMatched reports whether the tile's pair has been found.
func (g *Game) IsMatched(tileKey string) bool {
	t, ok := g.tile(tileKey)
	return ok && g.matched[t.PairKey]
}

// IsSelected reports whether the tile is the current selection.
func (g *Game) IsSelected(tileKey string) bool {
	return tileKey != "" && g.selected == tileKey
}

// InMismatch reports whether the tile is part of an unresolved mismatch.
func (g *Game) InMismatch(tileKey string) bool {
	return g.resolving && (g.mismatch[0] == tileKey || g.mismatch[1] == tileKey)
}

// Resolving reports whether a mismatch is waiting on ResolveMismatch.
func (g *Game) Resolving() bool { return g.resolving }

// Won reports whether every pair has been matched.
func (g *Game) Won() bool { return len(g.matched) == g.pairs && g.pairs > 0 }

// MatchedCount returns the number of pairs found so far.
func (g *Game) MatchedCount() int { return len(g.matched) }

// Select processes a click on the given tile.
func (g *Game) Select(tileKey string) SelectResult {
	if g.resolving || g.Won() {
		return Ignored
	}
	t, ok := g.tile(tileKey)
	if !ok || g.matched[t.PairKey] {
		return Ignored
	}
	if g.selected == tileKey {
		g.selected = ""
		return Deselected
	}
	if g.selected == "" {
		g.selected = tileKey
		return First
	}

	prev, _ := g.tile(g.selected)
	if prev.PairKey == t.PairKey {
		g.matched[t.PairKey] = true
		g.selected = ""
		return Matched
	}
	g.mismatch = [2]string{g.selected, tileKey}
	g.resolving = true
	g.selected = ""
	return Mismatch
}

// ResolveMismatch clears the revealed mismatched tiles. No-op when no
// mismatch is pending.
func (g *Game) ResolveMismatch() {
	g.mismatch = [2]string{}
	g.resolving = false
}

func (g *Game) tile(key string) (Tile, bool) {
	for _, t := range g.tiles {
		if t.Key == key {
			return t, true
		}
	}
	return Tile{}, false
}
