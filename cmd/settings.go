package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/bank"
	"github.com/abhisek/quizdeck/internal/config"
)

// loadSettings reads the config file and applies explicitly set flags on
// top of it.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// applyFlags overrides cfg with every flag the user actually set. Flags a
// subcommand does not define are never Changed.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("strict-reason") {
		cfg.StrictReason, _ = flags.GetBool("strict-reason")
	}
	if flags.Changed("ui") {
		cfg.UI, _ = flags.GetString("ui")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("no-shuffle-options") {
		noShuffle, _ := flags.GetBool("no-shuffle-options")
		cfg.ShuffleOptions = !noShuffle
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

// loadBank reads path with the parse options from cfg.
func loadBank(path string, cfg config.Config) (*bank.Bank, error) {
	return bank.LoadFile(path, bank.ParseOptions{StrictReason: cfg.StrictReason})
}
