// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/meeting-report/internal/ledger"
	"github.com/pdiddy/meeting-report/internal/mailer"
	"github.com/pdiddy/meeting-report/internal/pipeline"
)

var sendCmd = &cobra.Command{
	Use:   "send <log-file>",
	Short: "Render a meeting log and email the report",
	Long: `Send parses the meeting log, renders the HTML report and emails it over
SMTP with the subject "Meeting Summary - <date>". The send is attempted once;
the outcome is recorded in the delivery ledger unless --no-ledger is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runSend,
}

func runSend(cmd *cobra.Command, args []string) error {
	to, _ := cmd.Flags().GetString("to")
	if to == "" {
		to = cfg.Report.Recipient
	}
	if to == "" {
		return fmt.Errorf("recipient required: pass --to or set report.recipient")
	}

	m, err := mailer.New(cfg.SMTP)
	if err != nil {
		return err
	}

	var recorder pipeline.Recorder
	if noLedger, _ := cmd.Flags().GetBool("no-ledger"); !noLedger {
		l, err := ledger.Open(cfg.Ledger)
		if err != nil {
			return err
		}
		defer l.Close()
		recorder = l
	}

	if !newRunner(m, recorder).ProcessAndSend(cmd.Context(), args[0], to) {
		return fmt.Errorf("report for %s was not sent", args[0])
	}
	fmt.Fprintf(cmd.OutOrStdout(), "sent: %s -> %s\n", args[0], to)
	return nil
}

func init() {
	sendCmd.Flags().String("to", "", "recipient address (default: report.recipient from config)")
	sendCmd.Flags().Bool("no-ledger", false, "do not record the delivery")

	rootCmd.AddCommand(sendCmd)
}
