package content

import "fmt"

// library holds the combined corpus with precomputed indices.
type library struct {
	entries    []Entry
	byID       map[string]*Entry
	byCategory map[string][]Entry
	categories []string
	order      map[string]int
}

// lib is the package-level singleton, set by init().
var lib *library

func init() {
	combined := make([]Entry, 0, len(kanaEntries)+len(kanjiEntries))
	combined = append(combined, kanaEntries...)
	combined = append(combined, kanjiEntries...)

	l, err := buildLibrary(combined)
	if err != nil {
		panic(fmt.Sprintf("content: corrupt corpus: %v", err))
	}
	lib = l
}

// buildLibrary constructs the library and its indices. Categories keep their
// first-appearance order, so kana sets precede kanji chapters.
func buildLibrary(entries []Entry) (*library, error) {
	l := &library{
		entries:    entries,
		byID:       make(map[string]*Entry, len(entries)),
		byCategory: make(map[string][]Entry),
		order:      make(map[string]int, len(entries)),
	}

	for i := range l.entries {
		e := &l.entries[i]
		if e.ID == "" {
			return nil, fmt.Errorf("entry %d has empty id", i)
		}
		if _, dup := l.byID[e.ID]; dup {
			return nil, fmt.Errorf("duplicate entry id %q", e.ID)
		}
		if len(e.Meaning) == 0 {
			return nil, fmt.Errorf("entry %q has no meanings", e.ID)
		}
		if e.Level != LevelKana && e.Level != LevelN5 {
			return nil, fmt.Errorf("entry %q has unknown level %q", e.ID, e.Level)
		}
		l.byID[e.ID] = e
		l.order[e.ID] = i
		if _, seen := l.byCategory[e.Category]; !seen {
			l.categories = append(l.categories, e.Category)
		}
		l.byCategory[e.Category] = append(l.byCategory[e.Category], *e)
	}
	return l, nil
}

// ByID returns the entry with the given id, or false if none exists.
func ByID(id string) (Entry, bool) {
	e, ok := lib.byID[id]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// ByCategory returns the entries of one category in corpus order.
// Unknown categories return an empty slice.
func ByCategory(category string) []Entry {
	src := lib.byCategory[category]
	out := make([]Entry, len(src))
	copy(out, src)
	return out
}

// Categories returns all category labels in corpus order
// (kana sets first, then kanji chapters).
func Categories() []string {
	out := make([]string, len(lib.categories))
	copy(out, lib.categories)
	return out
}

// All returns the full combined corpus in order.
func All() []Entry {
	out := make([]Entry, len(lib.entries))
	copy(out, lib.entries)
	return out
}

// Kanji returns every kanji entry in corpus order.
func Kanji() []Entry {
	return byLevel(LevelN5)
}

// Kana returns every kana entry in corpus order.
func Kana() []Entry {
	return byLevel(LevelKana)
}

// N5 returns the entries studied for JLPT N5, i.e. the kanji corpus.
func N5() []Entry {
	return byLevel(LevelN5)
}

func byLevel(level Level) []Entry {
	var out []Entry
	for _, e := range lib.entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Next returns the entry after id in corpus order, wrapping at the end.
// Unknown ids return false.
func Next(id string) (Entry, bool) {
	return step(id, 1)
}

// Prev returns the entry before id in corpus order, wrapping at the start.
func Prev(id string) (Entry, bool) {
	return step(id, -1)
}

func step(id string, delta int) (Entry, bool) {
	i, ok := lib.order[id]
	if !ok {
		return Entry{}, false
	}
	n := len(lib.entries)
	return lib.entries[((i+delta)%n+n)%n], true
}

// Len reports the size of the combined corpus.
func Len() int {
	return len(lib.entries)
}
