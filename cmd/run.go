package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/kanjizen/internal/app"
	"github.com/abhisek/kanjizen/internal/llm"
	"github.com/abhisek/kanjizen/internal/quiz"
	"github.com/abhisek/kanjizen/internal/speech"
	"github.com/abhisek/kanjizen/internal/tutor"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	opts := app.Options{
		Speaker: speech.NewSpeaker(),
		Rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	cfg, ok := resolveLLMConfig()
	if !ok {
		fmt.Fprintln(os.Stderr, "No LLM API key found; the AI quiz and Sensei chat will be unavailable.")
		return app.Run(opts)
	}

	provider, err := llm.NewProvider(cmd.Context(), cfg, llm.NewUsageLog())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
		return app.Run(opts)
	}

	opts.Generator = quiz.New(provider, quiz.DefaultConfig())
	opts.TutorService = tutor.NewService(provider)
	return app.Run(opts)
}

// resolveLLMConfig prefers explicit KANJIZEN_* configuration, then probes
// the standard provider API key env vars.
func resolveLLMConfig() (llm.Config, bool) {
	if os.Getenv("KANJIZEN_LLM_PROVIDER") != "" {
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, "LLM config:", err)
			return llm.Config{}, false
		}
		return cfg, true
	}
	return llm.DiscoverConfig()
}
