package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kanjizen",
	Short: "Terminal Japanese tutor for JLPT N5",
	Long:  "KanjiZen — terminal app for learning hiragana, katakana, and N5 kanji, with AI-generated quizzes and a Sensei chat.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}
