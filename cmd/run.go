package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/app"
	"github.com/abhisek/quizdeck/internal/applog"
	"github.com/abhisek/quizdeck/internal/plainui"
	"github.com/abhisek/quizdeck/internal/session"
)

// runQuiz loads the bank and plays it in the chosen front-end.
func runQuiz(cmd *cobra.Command, path string) error {
	ctx := cmd.Context()
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	b, err := loadBank(path, cfg)
	if err != nil {
		return err
	}

	logger, err := applog.Open(cfg.LogFile, slog.LevelDebug)
	if err != nil {
		return err
	}
	defer logger.Close()
	logger.Info("bank loaded", "path", path, "cards", b.Len(), "ui", cfg.UI, "seed", cfg.Seed)

	s, err := session.New(b, session.Options{
		ShuffleOptions: cfg.ShuffleOptions,
		Seed:           cfg.Seed,
		Logger:         logger.Logger,
	})
	if err != nil {
		return err
	}

	decision, err := resolveUIMode(cfg.UI, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	if decision.warning != "" {
		fmt.Fprintln(os.Stderr, decision.warning)
	}

	if decision.useTUI {
		err = app.Run(ctx, s, app.Options{BankName: filepath.Base(path), Stats: b.Stats()})
	} else {
		err = plainui.Run(ctx, s, os.Stdin, os.Stdout)
	}
	if err != nil {
		logger.Error("session failed", "error", err)
		return err
	}

	t := s.Tally()
	fmt.Fprintf(cmd.OutOrStdout(), "Answered %d, correct %d.\n", t.Answered, t.Correct)
	return nil
}
