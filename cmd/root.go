package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizdeck <bank-file>",
	Short: "Terminal flashcard and quiz player",
	Long: `quizdeck plays a bank of flashcards and multiple-choice questions in the
terminal. Questions are shuffled every round and multiple-choice options are
relettered on every showing. Rounds repeat until you quit.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runQuiz(cmd, args[0])
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides QUIZDECK_CONFIG env var)")
	rootCmd.PersistentFlags().Bool("strict-reason", false, "Require an answer reason on every card, including multiple-choice")

	rootCmd.Flags().String("ui", "", "Front-end: auto, tui or plain")
	rootCmd.Flags().Uint64("seed", 0, "Random seed for a reproducible order (0 = random)")
	rootCmd.Flags().Bool("no-shuffle-options", false, "Keep multiple-choice options in file order")
	rootCmd.Flags().String("log-file", "", "Append JSON debug logs to this file")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}
