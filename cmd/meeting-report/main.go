// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the meeting-report CLI.
// It reads meeting logs, renders them as HTML reports and emails them.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/meeting-report/internal/logging"
	"github.com/pdiddy/meeting-report/internal/secrets"
	"github.com/pdiddy/meeting-report/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// cfg is the resolved configuration, filled before any subcommand runs.
	cfg types.Config
	// logger is built from cfg.Log.
	logger = zerolog.Nop()
	// loadedSecrets holds credentials loaded from .secrets/ at startup.
	loadedSecrets map[string]string
)

// secretDefault returns value if set, otherwise the secret stored under key.
func secretDefault(key, value string) string {
	if value != "" {
		return value
	}
	return loadedSecrets[key]
}

// rootCmd is the base command for the meeting-report CLI.
var rootCmd = &cobra.Command{
	Use:   "meeting-report",
	Short: "Turn meeting logs into HTML summary reports and email them",
	Long: `meeting-report reads a plain-text meeting log, extracts the meeting summary
and the questions and responses, renders them as an HTML report and emails the
report over SMTP.

Each stage is available on its own: parse prints the structured record, render
writes the HTML, send runs the whole pipeline and history lists past sends.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		if err := secrets.LoadEnvFile(envFile); err != nil {
			return err
		}

		c, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}

		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			c.Log.Level = lvl
		}
		l, err := logging.New(os.Stderr, c.Log)
		if err != nil {
			return err
		}
		logger = l

		secretsDir, _ := cmd.Flags().GetString("secrets-dir")
		s, err := secrets.Load(secretsDir, logger)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			logger.Debug().Strs("keys", keys).Msg("loaded secrets")
		}

		c.SMTP.SenderEmail = secretDefault(secrets.KeySenderEmail, c.SMTP.SenderEmail)
		c.SMTP.SenderPassword = secretDefault(secrets.KeySenderPassword, c.SMTP.SenderPassword)
		cfg = c
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./meeting-report.yaml or ~/.config/meeting-report/config.yaml)")
	rootCmd.PersistentFlags().String("env-file", ".env", "dotenv file exported into the environment before config is read")
	rootCmd.PersistentFlags().String("secrets-dir", ".secrets", "directory of credential files (sender-email, sender-password)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("logs-dir", "", "directory meeting log names are resolved against")

	_ = viper.BindPFlag("report.logs_dir", rootCmd.PersistentFlags().Lookup("logs-dir"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("meeting-report")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "meeting-report"))
		}
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
