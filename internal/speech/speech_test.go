package speech

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain japanese", "こんにちは", "こんにちは"},
		{"strips romaji parens", "一つ (Hitotsu)", "一つ"},
		{"strips latin letters", "abc山def", "山"},
		{"multiple parens", "山 (yama) と 川 (kawa)", "山 と 川"},
		{"only latin", "hello world", ""},
		{"empty", "", ""},
		{"whitespace", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSayDisabled(t *testing.T) {
	t.Setenv("KANJIZEN_NO_SPEECH", "1")
	s := NewSpeaker()
	// Must not panic or spawn anything.
	s.Say("こんにちは")
}

func TestSayEmptyAfterClean(t *testing.T) {
	s := NewSpeaker()
	s.Say("(romaji only)")
	s.Say("")
}
