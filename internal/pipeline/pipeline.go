// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline wires the report stages together: locate the meeting log,
// parse it, render the HTML report and hand it to the mail transport.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/pdiddy/meeting-report/internal/logparse"
	"github.com/pdiddy/meeting-report/internal/report"
	"github.com/pdiddy/meeting-report/pkg/types"
)

// Sender delivers one HTML report. *mailer.Mailer implements it.
type Sender interface {
	Send(ctx context.Context, recipient, html, subject string) error
}

// Recorder stores the outcome of a send attempt. *ledger.Ledger implements it.
type Recorder interface {
	Record(ctx context.Context, d types.Delivery) error
}

// Report is a rendered meeting log ready to send.
type Report struct {
	LogPath string
	Record  *types.MeetingRecord
	HTML    string
	Subject string
}

// Runner processes meeting logs found under a logs directory.
type Runner struct {
	logsDir  string
	renderer *report.Renderer
	sender   Sender
	recorder Recorder
	log      zerolog.Logger
}

// NewRunner returns a Runner. sender may be nil when only Build is used;
// recorder may be nil to skip the delivery ledger.
func NewRunner(logsDir string, renderer *report.Renderer, sender Sender, recorder Recorder, log zerolog.Logger) *Runner {
	return &Runner{
		logsDir:  logsDir,
		renderer: renderer,
		sender:   sender,
		recorder: recorder,
		log:      log,
	}
}

// Resolve maps a log file name to its path. Absolute paths are kept;
// anything else is taken relative to the logs directory.
func (r *Runner) Resolve(logFile string) string {
	if filepath.IsAbs(logFile) || r.logsDir == "" {
		return logFile
	}
	return filepath.Join(r.logsDir, logFile)
}

// Build parses and renders logFile.
func (r *Runner) Build(logFile string) (*Report, error) {
	path := r.Resolve(logFile)
	rec, err := logparse.ParseFile(path)
	if err != nil {
		return nil, err
	}

	html, err := r.renderer.Render(rec)
	if err != nil {
		return nil, err
	}

	return &Report{
		LogPath: path,
		Record:  rec,
		HTML:    html,
		Subject: report.Subject(rec),
	}, nil
}

// ProcessAndSend builds the report for logFile and emails it to recipient.
// Failures are logged and reported as false; nothing is retried.
func (r *Runner) ProcessAndSend(ctx context.Context, logFile, recipient string) bool {
	log := r.log.With().Str("log_file", logFile).Str("recipient", recipient).Logger()

	rep, err := r.Build(logFile)
	if err != nil {
		log.Error().Err(err).Msg("error processing meeting report")
		r.record(ctx, types.Delivery{
			LogFile:   logFile,
			Recipient: recipient,
			Subject:   report.Subject(nil),
			Status:    types.DeliveryFailed,
			Error:     err.Error(),
		})
		return false
	}

	d := types.Delivery{
		LogFile:   logFile,
		Recipient: recipient,
		Subject:   rep.Subject,
		Topics:    len(rep.Record.QAPairs),
		Status:    types.DeliverySent,
	}

	if err := r.send(ctx, recipient, rep); err != nil {
		log.Error().Err(err).Msg("failed to send email")
		d.Status = types.DeliveryFailed
		d.Error = err.Error()
		r.record(ctx, d)
		return false
	}

	log.Info().Str("subject", rep.Subject).Int("topics", d.Topics).Msg("email sent successfully")
	r.record(ctx, d)
	return true
}

func (r *Runner) send(ctx context.Context, recipient string, rep *Report) error {
	if r.sender == nil {
		return fmt.Errorf("no mail transport configured")
	}
	return r.sender.Send(ctx, recipient, rep.HTML, rep.Subject)
}

// record writes d to the ledger. A ledger failure is logged but does not
// change the outcome of the send.
func (r *Runner) record(ctx context.Context, d types.Delivery) {
	if r.recorder == nil {
		return
	}
	if err := r.recorder.Record(ctx, d); err != nil {
		r.log.Warn().Err(err).Str("log_file", d.LogFile).Msg("could not record delivery")
	}
}
