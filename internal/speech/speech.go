// Package speech plays Japanese text through the platform speech
// synthesizer. Playback is fire-and-forget: no synthesizer, no sound,
// no error.
package speech

import (
	"os"
	"os/exec"
	"regexp"
	"strings"
	"sync"
)

var (
	parenthesized = regexp.MustCompile(`\([^)]*\)`)
	latinLetters  = regexp.MustCompile(`[a-zA-Z]`)
)

// Clean strips parenthesized romaji and stray latin letters so the
// synthesizer only sees Japanese text.
func Clean(text string) string {
	text = parenthesized.ReplaceAllString(text, "")
	text = latinLetters.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// Speaker plays text asynchronously through an external synthesizer.
type Speaker struct {
	once    sync.Once
	command []string
	found   bool
}

// NewSpeaker returns a Speaker. Synthesizer lookup is deferred to the
// first Say call. Set KANJIZEN_NO_SPEECH to disable playback entirely.
func NewSpeaker() *Speaker {
	return &Speaker{}
}

// Say speaks the cleaned text in the background. Empty text after
// cleaning, a disabled speaker, or a missing synthesizer all no-op.
func (s *Speaker) Say(text string) {
	if os.Getenv("KANJIZEN_NO_SPEECH") != "" {
		return
	}
	text = Clean(text)
	if text == "" {
		return
	}

	s.once.Do(s.detect)
	if !s.found {
		return
	}

	args := append(append([]string{}, s.command[1:]...), text)
	cmd := exec.Command(s.command[0], args...)
	go func() {
		_ = cmd.Run()
	}()
}

// detect probes for a usable synthesizer: macOS say with a Japanese
// voice, then espeak-ng/espeak. Rate is reduced for learners.
func (s *Speaker) detect() {
	candidates := [][]string{
		{"say", "-v", "Kyoko", "-r", "160"},
		{"espeak-ng", "-v", "ja", "-s", "130"},
		{"espeak", "-v", "ja", "-s", "130"},
	}
	for _, c := range candidates {
		if _, err := exec.LookPath(c[0]); err == nil {
			s.command = c
			s.found = true
			return
		}
	}
}
