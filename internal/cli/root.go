// Package cli contains the gradexl commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/adnsv/gradexl/internal/config"
	"github.com/adnsv/gradexl/xl"
)

type app struct {
	configPath string
	verbose    bool
	noColor    bool
	jsonOutput bool

	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
}

type summary struct {
	File   string `json:"file"`
	Sheets int    `json:"sheets"`
	Rows   int    `json:"rows"`
	Bytes  int64  `json:"bytes"`
}

// NewRootCommand creates the root command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "gradexl",
		Short: "Export gradebook data to .xlsx spreadsheets",
		Long: `gradexl writes gradebook content and tabular data into Office Open XML
spreadsheets (.xlsx) without any spreadsheet application installed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return fmt.Errorf("could not load config: %w", err)
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Verbose = a.verbose
			}
			if a.noColor || !cfg.Color {
				color.NoColor = true
			}
			a.cfg = cfg
			a.stdout = cmd.OutOrStdout()
			a.stderr = cmd.ErrOrStderr()
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default ./gradexl.yaml)")
	rootCmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "Log every staged and archived part")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable ANSI color output")
	rootCmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "Output a machine-readable JSON summary")

	rootCmd.AddCommand(newExportCommand(a))
	rootCmd.AddCommand(newWriteCommand(a))

	return rootCmd
}

// Execute runs the root command and handles any returned errors.
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func (a *app) status(format string, args ...any) {
	color.New(color.FgGreen).Fprintf(a.stderr, format+"\n", args...)
}

// save writes wb according to the loaded configuration and reports the
// result.
func (a *app) save(wb *xl.Workbook, outputDir, stagingDir string) error {
	w := xl.Writer{
		Dir:        outputDir,
		StagingDir: stagingDir,
		Verbose:    a.cfg.Verbose,
		Logf:       a.status,
	}
	res, err := w.Write(wb)
	if err != nil {
		return fmt.Errorf("could not write workbook: %w", err)
	}

	rows := 0
	for _, sh := range wb.Sheets {
		rows += len(sh.Rows)
	}

	if a.jsonOutput {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary{
			File:   res.Path,
			Sheets: len(wb.Sheets),
			Rows:   rows,
			Bytes:  res.Size,
		})
	}

	fmt.Fprintf(a.stdout, "Wrote %s (%d sheets, %d rows)\n", res.Path, len(wb.Sheets), rows)
	return nil
}

// orDefault returns the flag value when it was set, the config value
// otherwise.
func orDefault(cmd *cobra.Command, flag, value, fallback string) string {
	if cmd.Flags().Changed(flag) {
		return value
	}
	return fallback
}
