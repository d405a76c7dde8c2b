// Package tutor is the conversational "Sensei" layer: free-text chat replies
// and kanji mnemonics. Provider failures surface as fixed fallback lines, not
// errors, so the chat never breaks mid-conversation.
package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/kanjizen/internal/llm"
)

// Fallback lines shown when the provider fails or returns nothing.
const (
	FallbackReply    = "Gomenasai (Sorry), I am having trouble thinking right now."
	FallbackMnemonic = "Could not retrieve wisdom at this moment."
	EmptyMnemonic    = "Sensei is meditating on this character..."
)

// Service answers chat messages and mnemonic requests.
type Service struct {
	provider  llm.Provider
	maxTokens int
}

// NewService creates a tutor Service on the given provider.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider, maxTokens: 1024}
}

// Reply generates the tutor's next message for the given transcript.
// The transcript must end with a user message. Failures return
// FallbackReply, never an error.
func (s *Service) Reply(ctx context.Context, transcript []llm.Message) string {
	ctx = llm.WithPurpose(ctx, "tutor-chat")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      senseiPrompt,
		Messages:    transcript,
		MaxTokens:   s.maxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return FallbackReply
	}

	text := decodeText(resp.Content)
	if text == "" {
		return FallbackReply
	}
	return text
}

// Mnemonic generates a short visual memory aid for a kanji.
// Failures return FallbackMnemonic; an empty model response returns
// EmptyMnemonic.
func (s *Service) Mnemonic(ctx context.Context, character, meaning string) string {
	ctx = llm.WithPurpose(ctx, "mnemonic")

	prompt := fmt.Sprintf(
		"Give me a short, memorable, visual mnemonic or story for the Japanese Kanji %q which means %q. "+
			"Keep it under 30 words. Focus on the shape of the character to help recall.",
		character, meaning)

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:   256,
		Temperature: 0.7,
	})
	if err != nil {
		return FallbackMnemonic
	}

	text := decodeText(resp.Content)
	if text == "" {
		return EmptyMnemonic
	}
	return text
}

// decodeText unwraps a schemaless response. Providers return raw text as a
// JSON string; tolerate plain text for safety.
func decodeText(content json.RawMessage) string {
	var s string
	if err := json.Unmarshal(content, &s); err != nil {
		s = string(content)
	}
	return strings.TrimSpace(s)
}
