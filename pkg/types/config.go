// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DefaultLogoURL is the logo shown in the report header when none is configured.
const DefaultLogoURL = "https://i.ibb.co/27BWhrpG/images.jpg"

// DefaultReportTitle is the fixed heading of the report header.
const DefaultReportTitle = "Meeting Summary Report"

// SMTPConfig holds the transport settings used to deliver a report.
// It is passed to the mailer at construction time.
type SMTPConfig struct {
	// Server is the SMTP host name (default "smtp.gmail.com").
	Server string `json:"server" yaml:"server" mapstructure:"server" validate:"required,hostname|ip"`

	// Port is the SMTP submission port (default 587).
	Port int `json:"port" yaml:"port" mapstructure:"port" validate:"required,min=1,max=65535"`

	// SenderEmail is both the From address and the login user.
	SenderEmail string `json:"sender_email" yaml:"sender_email" mapstructure:"sender_email" validate:"required,email"`

	// SenderPassword authenticates SenderEmail against the server.
	SenderPassword string `json:"-" yaml:"-" mapstructure:"sender_password" validate:"required"`

	// Timeout bounds a single send (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// ReportConfig holds settings for locating logs and rendering reports.
type ReportConfig struct {
	// Title is the heading of the report header.
	Title string `json:"title" yaml:"title" mapstructure:"title"`

	// LogoURL is the image shown in the report header.
	LogoURL string `json:"logo_url" yaml:"logo_url" mapstructure:"logo_url"`

	// LogsDir is the directory relative log file names are resolved against.
	LogsDir string `json:"logs_dir" yaml:"logs_dir" mapstructure:"logs_dir"`

	// Recipient is the default address reports are sent to.
	Recipient string `json:"recipient" yaml:"recipient" mapstructure:"recipient"`
}

// LedgerConfig holds settings for the delivery ledger.
type LedgerConfig struct {
	// Dir is the directory holding deliveries.db.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
}

// LogFormat selects how log lines are written.
type LogFormat string

const (
	LogConsole LogFormat = "console"
	LogJSON    LogFormat = "json"
)

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is a zerolog level name (debug, info, warn, error).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is console or json.
	Format LogFormat `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups all settings for the meeting-report CLI.
type Config struct {
	SMTP   SMTPConfig   `json:"smtp" yaml:"smtp" mapstructure:"smtp"`
	Report ReportConfig `json:"report" yaml:"report" mapstructure:"report"`
	Ledger LedgerConfig `json:"ledger" yaml:"ledger" mapstructure:"ledger"`
	Log    LogConfig    `json:"log" yaml:"log" mapstructure:"log"`
}
