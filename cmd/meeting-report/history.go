// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/meeting-report/internal/ledger"
	"github.com/pdiddy/meeting-report/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past report deliveries",
	Long: `History lists the send attempts recorded in the delivery ledger, newest
first. Use --export to write the full ledger to deliveries.yaml and
deliveries.json in a directory.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	l, err := ledger.Open(cfg.Ledger)
	if err != nil {
		return err
	}
	defer l.Close()

	ctx := cmd.Context()

	if dir, _ := cmd.Flags().GetString("export"); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		if err := l.ExportYAML(ctx, filepath.Join(dir, "deliveries.yaml")); err != nil {
			return err
		}
		if err := l.ExportJSON(ctx, filepath.Join(dir, "deliveries.json")); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported ledger to %s\n", dir)
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	status, _ := cmd.Flags().GetString("status")
	to, _ := cmd.Flags().GetString("to")

	deliveries, err := l.List(ctx, ledger.ListOptions{
		Limit:     limit,
		Status:    types.DeliveryStatus(status),
		Recipient: to,
	})
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatHistory(cmd.OutOrStdout(), deliveries, jsonOutput)
}

func formatHistory(w io.Writer, deliveries []types.Delivery, jsonOutput bool) error {
	if jsonOutput {
		if deliveries == nil {
			deliveries = []types.Delivery{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(deliveries)
	}

	if len(deliveries) == 0 {
		fmt.Fprintln(w, "No deliveries recorded.")
		return nil
	}

	fmt.Fprintf(w, "%-20s  %-6s  %-28s  %-32s  %s\n", "Time", "Status", "Recipient", "Subject", "Log")
	fmt.Fprintln(w, strings.Repeat("-", 110))
	for _, d := range deliveries {
		fmt.Fprintf(w, "%-20s  %-6s  %-28s  %-32s  %s\n",
			d.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			d.Status, truncate(d.Recipient, 28), truncate(d.Subject, 32), d.LogFile)
		if d.Error != "" {
			fmt.Fprintf(w, "%20s  error: %s\n", "", d.Error)
		}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of deliveries to list")
	historyCmd.Flags().String("status", "", "filter by status: sent or failed")
	historyCmd.Flags().String("to", "", "filter by recipient")
	historyCmd.Flags().Bool("json", false, "output deliveries as JSON")
	historyCmd.Flags().String("export", "", "write the whole ledger as YAML and JSON into this directory")

	rootCmd.AddCommand(historyCmd)
}
