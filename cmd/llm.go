package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/kanjizen/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM configuration",
}

var llmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Send a probe request and report latency, tokens, and cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, ok := resolveLLMConfig()
		if !ok {
			return fmt.Errorf("no LLM provider configured; set GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, or OPENROUTER_API_KEY")
		}

		usage := llm.NewUsageLog()
		provider, err := llm.NewProvider(cmd.Context(), cfg, usage)
		if err != nil {
			return fmt.Errorf("initialize provider: %w", err)
		}

		fmt.Printf("Provider: %s\n", cfg.Provider)
		fmt.Printf("Model:    %s\n", provider.ModelID())
		fmt.Println("Sending probe request...")

		ctx := llm.WithPurpose(cmd.Context(), "probe")
		resp, err := provider.Generate(ctx, llm.Request{
			Messages:  []llm.Message{{Role: llm.RoleUser, Content: "Reply with the single word: ok"}},
			MaxTokens: 16,
		})
		if err != nil {
			return fmt.Errorf("probe request failed: %w", err)
		}

		reply := strings.TrimSpace(strings.Trim(string(resp.Content), `"`))
		fmt.Printf("Reply:    %s\n", reply)

		sep := strings.Repeat("─", 48)
		fmt.Println(sep)
		for _, r := range usage.Records() {
			ok := "✓"
			if !r.Success {
				ok = "✗"
			}
			fmt.Printf("%-10s  %-28s  in %d / out %d  %dms  %s\n",
				r.Purpose, truncate(r.Model, 28), r.InputTokens, r.OutputTokens,
				r.Latency.Milliseconds(), ok)
		}

		in, out, cost := usage.Totals()
		fmt.Println(sep)
		if c := llm.LookupCost(provider.ModelID()); c != nil {
			fmt.Printf("Tokens: %d in / %d out  ·  estimated cost %s\n", in, out, formatCost(cost))
		} else {
			fmt.Printf("Tokens: %d in / %d out  ·  pricing unavailable for %s\n", in, out, provider.ModelID())
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmCmd.AddCommand(llmCheckCmd)
}
