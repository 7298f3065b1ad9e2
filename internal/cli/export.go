package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/adnsv/gradexl/reportcard"
)

func newExportCommand(a *app) *cobra.Command {
	var (
		contentPath string
		title       string
		outputDir   string
		stagingDir  string
		periods     []string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export report card content to <title>.xlsx",
		Long: `Converts gradebook content (JSON or YAML, courses keyed by class name) into a
workbook with a "Report Card" overview sheet and an "Assignments" sheet.`,
		Example: "  gradexl export --content content.json --title Grades",
		RunE: func(cmd *cobra.Command, args []string) error {
			if contentPath == "" {
				return errors.New("--content is required: provide a JSON or YAML content file")
			}

			content, err := reportcard.Load(contentPath)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("period") {
				periods = a.cfg.Periods
			}

			wb, err := reportcard.Workbook(orDefault(cmd, "title", title, a.cfg.Title), content, periods)
			if err != nil {
				return err
			}

			return a.save(wb,
				orDefault(cmd, "output-dir", outputDir, a.cfg.OutputDir),
				orDefault(cmd, "staging-dir", stagingDir, a.cfg.StagingDir))
		},
	}

	cmd.Flags().StringVar(&contentPath, "content", "", "Path to the content file (required)")
	cmd.Flags().StringVar(&title, "title", "", "Workbook title, names the output file")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for the .xlsx file")
	cmd.Flags().StringVar(&stagingDir, "staging-dir", "", "Parent directory for the temporary staging tree")
	cmd.Flags().StringSliceVar(&periods, "period", nil, "Grading period columns, in order (default: all periods in the content)")

	return cmd
}
