// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <log-file>",
	Short: "Render a meeting log as an HTML report",
	Long: `Render parses a meeting log and writes the HTML report that send would
email. Without --out the document goes to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")
	if logo, _ := cmd.Flags().GetString("logo-url"); logo != "" {
		cfg.Report.LogoURL = logo
	}

	rep, err := newRunner(nil, nil).Build(args[0])
	if err != nil {
		return err
	}

	if out == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), rep.HTML)
		return err
	}

	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(out, []byte(rep.HTML), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	logger.Info().Str("out", out).Str("subject", rep.Subject).Msg("report written")
	return nil
}

func init() {
	renderCmd.Flags().String("out", "", "write the report to this file instead of stdout")
	renderCmd.Flags().String("logo-url", "", "override the logo shown in the report header")

	rootCmd.AddCommand(renderCmd)
}
