// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/meeting-report/internal/logparse"
	"github.com/pdiddy/meeting-report/internal/pipeline"
	"github.com/pdiddy/meeting-report/internal/report"
	"github.com/pdiddy/meeting-report/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse <log-file>",
	Short: "Print the structured record extracted from a meeting log",
	Long: `Parse reads a meeting log and prints the meeting summary fields and the
question/answer pairs it contains. Relative names are resolved against the
logs directory. Lines outside the recognized sections are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	runner := newRunner(nil, nil)
	rec, err := logparse.ParseFile(runner.Resolve(args[0]))
	if err != nil {
		return err
	}
	return writeRecord(cmd.OutOrStdout(), rec, format)
}

func writeRecord(w io.Writer, rec *types.MeetingRecord, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encoding record: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q: want yaml or json", format)
	}
}

// newRunner builds a pipeline runner from the loaded config.
func newRunner(sender pipeline.Sender, recorder pipeline.Recorder) *pipeline.Runner {
	return pipeline.NewRunner(cfg.Report.LogsDir, report.NewRenderer(cfg.Report), sender, recorder, logger)
}

func init() {
	parseCmd.Flags().String("format", "yaml", "output format: yaml or json")

	rootCmd.AddCommand(parseCmd)
}
