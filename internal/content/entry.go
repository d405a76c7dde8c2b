package content

// Level classifies an entry within the JLPT ladder.
// Kana entries sit below the numbered levels.
type Level string

const (
	LevelKana Level = "Kana"
	LevelN5   Level = "N5"
)

// Sentence is one example usage of an entry, with romanization and translation.
type Sentence struct {
	Text    string
	Romaji  string
	English string
}

// Entry is one character record (kanji or kana). Entries are loaded once at
// process start from the bundled corpus and never mutated.
type Entry struct {
	// ID is unique across the combined kana+kanji corpus.
	ID string

	// Character is the glyph itself.
	Character string

	// Onyomi lists the Chinese-derived readings. Empty for kana.
	Onyomi []string

	// Kunyomi lists the native Japanese readings. Empty for kana.
	Kunyomi []string

	// Meaning lists English meanings; the first is the primary meaning.
	// For kana this is the romaji reading. Never empty.
	Meaning []string

	// Strokes is the stroke count.
	Strokes int

	Level Level

	// Example is a common word using this character, e.g. "一つ (Hitotsu)".
	Example string

	// Category is the chapter label used to group entries for study,
	// e.g. "Chapter 1: Numbers" or "Hiragana 1: A - So".
	Category string

	Sentences []Sentence
}

// IsKana reports whether the entry is a kana rather than a kanji.
func (e Entry) IsKana() bool {
	return e.Level == LevelKana
}

// PrimaryMeaning returns the first meaning.
func (e Entry) PrimaryMeaning() string {
	return e.Meaning[0]
}
