package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/bank"
)

var exportCmd = &cobra.Command{
	Use:   "export <bank-file>",
	Short: "Convert a bank to JSON, YAML or text",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().String("format", "", "Output format: json, yaml or text (default: from -o extension, else json)")
	exportCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	formatVal, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	format, err := exportFormat(formatVal, output)
	if err != nil {
		return err
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	b, err := loadBank(args[0], cfg)
	if err != nil {
		return err
	}

	if output == "" {
		return exportTo(cmd.OutOrStdout(), b, format)
	}
	return writeExport(output, b, format)
}

// exportFormat picks the output format from the flag, then the output
// file extension, then JSON.
func exportFormat(flag, output string) (bank.Format, error) {
	if flag != "" {
		return bank.ParseFormat(flag)
	}
	if output != "" {
		return bank.FormatFromPath(output), nil
	}
	return bank.FormatJSON, nil
}

func writeExport(path string, b *bank.Bank, format bank.Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return exportTo(f, b, format)
}

func exportTo(w io.Writer, b *bank.Bank, format bank.Format) error {
	if err := bank.Export(w, b, format); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
