// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/meeting-report/pkg/types"
)

const envPrefix = "MEETING_REPORT"

// envAliases are the bare variable names accepted alongside the prefixed ones.
var envAliases = map[string]string{
	"smtp.server":          "SMTP_SERVER",
	"smtp.port":            "SMTP_PORT",
	"smtp.sender_email":    "SENDER_EMAIL",
	"smtp.sender_password": "SENDER_PASSWORD",
	"report.logo_url":      "LOGO_URL",
	"report.logs_dir":      "MEETING_LOGS_DIR",
	"report.recipient":     "REPORT_RECIPIENT",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("smtp.server", "smtp.gmail.com")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.sender_email", "")
	v.SetDefault("smtp.sender_password", "")
	v.SetDefault("smtp.timeout", 30*time.Second)

	v.SetDefault("report.title", types.DefaultReportTitle)
	v.SetDefault("report.logo_url", types.DefaultLogoURL)
	v.SetDefault("report.logs_dir", "meeting_logs")
	v.SetDefault("report.recipient", "")

	v.SetDefault("ledger.dir", ".meeting-report")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", string(types.LogConsole))
}

// loadConfig resolves the configuration from v: defaults, then the config
// file, then environment. Every key can be set as MEETING_REPORT_<SECTION>_<KEY>;
// the SMTP and report keys also accept the names in envAliases.
func loadConfig(v *viper.Viper) (types.Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, alias := range envAliases {
		prefixed := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, alias); err != nil {
			return types.Config{}, fmt.Errorf("binding env %s: %w", alias, err)
		}
	}

	var c types.Config
	if err := v.Unmarshal(&c); err != nil {
		return types.Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return c, nil
}
