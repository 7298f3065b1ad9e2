package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/adnsv/gradexl/xl"
)

type writeInput struct {
	Title  string       `yaml:"title"`
	Sheets []writeSheet `yaml:"sheets"`
}

type writeSheet struct {
	Name    string   `yaml:"name"`
	Headers []string `yaml:"headers"`
	Rows    [][]any  `yaml:"rows"`
}

func newWriteCommand(a *app) *cobra.Command {
	var (
		dataPath   string
		title      string
		outputDir  string
		stagingDir string
	)

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Generate a spreadsheet from structured data",
		Long: `Creates an .xlsx file from JSON or YAML data. Numeric values become number
cells, everything else becomes text.

Data format:
  {"title": "Book", "sheets": [{"name": "Sheet1", "headers": ["A","B"], "rows": [["a1", 1]]}]}`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dataPath == "" {
				return errors.New("--data is required: provide a JSON/YAML data file or - for stdin")
			}

			var raw []byte
			var err error
			if dataPath == "-" {
				raw, err = io.ReadAll(cmd.InOrStdin())
			} else {
				raw, err = os.ReadFile(dataPath)
			}
			if err != nil {
				return fmt.Errorf("could not read data: %w", err)
			}

			var input writeInput
			if err := yaml.Unmarshal(raw, &input); err != nil {
				return fmt.Errorf("invalid data: %w", err)
			}

			t := a.cfg.Title
			if input.Title != "" {
				t = input.Title
			}
			wb, err := xl.NewWorkbook(orDefault(cmd, "title", title, t), buildSheets(input.Sheets)...)
			if err != nil {
				return err
			}

			return a.save(wb,
				orDefault(cmd, "output-dir", outputDir, a.cfg.OutputDir),
				orDefault(cmd, "staging-dir", stagingDir, a.cfg.StagingDir))
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "Path to the data file (or - for stdin)")
	cmd.Flags().StringVar(&title, "title", "", "Workbook title, overrides the title in the data")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for the .xlsx file")
	cmd.Flags().StringVar(&stagingDir, "staging-dir", "", "Parent directory for the temporary staging tree")

	return cmd
}

func buildSheets(input []writeSheet) []*xl.Sheet {
	var sheets []*xl.Sheet
	for i, s := range input {
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("Sheet%d", i+1)
		}
		sh := xl.NewSheet(name)

		if len(s.Headers) > 0 {
			row := sh.AddRow()
			for _, h := range s.Headers {
				row.Add(xl.String(h))
			}
		}
		for _, values := range s.Rows {
			row := sh.AddRow()
			for _, v := range values {
				row.Add(toCell(v))
			}
		}
		sheets = append(sheets, sh)
	}
	return sheets
}

func toCell(v any) xl.Cell {
	switch v := v.(type) {
	case nil:
		return xl.String("")
	case int:
		return xl.Int(int64(v))
	case int64:
		return xl.Int(v)
	case uint64:
		return xl.Number(fmt.Sprint(v))
	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return xl.String(fmt.Sprint(v))
		}
		return xl.Float(v)
	case string:
		return xl.String(v)
	default:
		return xl.String(fmt.Sprint(v))
	}
}
