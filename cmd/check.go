package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/bank"
)

var checkCmd = &cobra.Command{
	Use:   "check <bank-file>",
	Short: "Validate a bank file and print a summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		b, err := loadBank(args[0], cfg)
		if err != nil {
			return err
		}
		printStats(cmd.OutOrStdout(), args[0], b.Stats())
		return nil
	},
}

func printStats(w io.Writer, path string, s bank.Stats) {
	fmt.Fprintf(w, "%s: ok\n", path)
	fmt.Fprintf(w, "  cards:           %d\n", s.Cards)
	fmt.Fprintf(w, "  multiple-choice: %d (%d options)\n", s.MultipleChoice, s.Options)
	fmt.Fprintf(w, "  free-text:       %d\n", s.FreeText)
}
