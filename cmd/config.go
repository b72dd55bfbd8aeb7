package cmd

import (
	"errors"
	"log/slog"
	"strings"

	"orders/internal/adapters/out/postgres"
	"orders/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	DatabaseURL          string
	LogLevel             string
	StatusReportSchedule string
}

// Validate reports every problem at once, joined with errors.Join.
func (c Config) Validate() error {
	var problems []error

	if strings.TrimSpace(c.HTTPPort) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("HTTP_PORT"))
	}
	if _, err := postgres.BuildDSN(c.ConnectionConfig()); err != nil {
		problems = append(problems, err)
	}
	if _, err := c.SlogLevel(); err != nil {
		problems = append(problems, err)
	}
	if c.StatusReportSchedule != "" {
		if _, err := cron.ParseStandard(c.StatusReportSchedule); err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("STATUS_REPORT_SCHEDULE", err))
		}
	}

	return errors.Join(problems...)
}

func (c Config) ConnectionConfig() postgres.ConnectionConfig {
	return postgres.ConnectionConfig{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSslMode,
		URL:      c.DatabaseURL,
	}
}

// SlogLevel parses LOG_LEVEL (debug, info, warn, error; case-insensitive).
// Empty means info.
func (c Config) SlogLevel() (slog.Level, error) {
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
	}
	return level, nil
}
