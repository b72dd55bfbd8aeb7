package cmd_test

import (
	"log/slog"
	"testing"

	"orders/cmd"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() cmd.Config {
	return cmd.Config{
		HTTPPort:             "8080",
		DBHost:               "localhost",
		DBPort:               "5432",
		DBUser:               "postgres",
		DBPassword:           "secret",
		DBName:               "orders",
		DBSslMode:            "disable",
		LogLevel:             "info",
		StatusReportSchedule: "@every 1m",
	}
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name     string
		mutate   func(c *cmd.Config)
		expected error
	}{
		{
			name:   "valid",
			mutate: func(*cmd.Config) {},
		},
		{
			name: "database_url_replaces_db_fields",
			mutate: func(c *cmd.Config) {
				c.DBHost, c.DBPort, c.DBUser, c.DBName = "", "", "", ""
				c.DatabaseURL = "postgres://app:secret@db:5432/orders?sslmode=disable"
			},
		},
		{
			name:   "status_report_disabled",
			mutate: func(c *cmd.Config) { c.StatusReportSchedule = "" },
		},
		{
			name:   "cron_expression",
			mutate: func(c *cmd.Config) { c.StatusReportSchedule = "*/5 * * * *" },
		},
		{
			name:     "missing_http_port",
			mutate:   func(c *cmd.Config) { c.HTTPPort = "" },
			expected: errs.ErrValueIsRequired,
		},
		{
			name:     "missing_db_host",
			mutate:   func(c *cmd.Config) { c.DBHost = "" },
			expected: errs.ErrValueIsRequired,
		},
		{
			name:     "bad_database_url",
			mutate:   func(c *cmd.Config) { c.DatabaseURL = "mysql://localhost/orders" },
			expected: errs.ErrValueIsInvalid,
		},
		{
			name:     "bad_log_level",
			mutate:   func(c *cmd.Config) { c.LogLevel = "loud" },
			expected: errs.ErrValueIsInvalid,
		},
		{
			name:     "bad_schedule",
			mutate:   func(c *cmd.Config) { c.StatusReportSchedule = "sometimes" },
			expected: errs.ErrValueIsInvalid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.expected == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestConfig_Validate_ReportsAllProblems(t *testing.T) {
	cfg := validConfig()
	cfg.HTTPPort = ""
	cfg.LogLevel = "loud"

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_PORT")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestConfig_SlogLevel(t *testing.T) {
	testCases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"Error": slog.LevelError,
	}

	for raw, expected := range testCases {
		cfg := cmd.Config{LogLevel: raw}
		level, err := cfg.SlogLevel()
		require.NoError(t, err, raw)
		assert.Equal(t, expected, level, raw)
	}
}

func TestConfig_ConnectionConfig(t *testing.T) {
	cfg := validConfig()
	cfg.DatabaseURL = "postgres://db/orders"

	conn := cfg.ConnectionConfig()

	assert.Equal(t, "localhost", conn.Host)
	assert.Equal(t, "5432", conn.Port)
	assert.Equal(t, "postgres", conn.User)
	assert.Equal(t, "secret", conn.Password)
	assert.Equal(t, "orders", conn.DBName)
	assert.Equal(t, "disable", conn.SSLMode)
	assert.Equal(t, "postgres://db/orders", conn.URL)
}
