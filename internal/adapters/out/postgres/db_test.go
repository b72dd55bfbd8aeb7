package postgres_test

import (
	"testing"

	postgres_adapter "orders/internal/adapters/out/postgres"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      postgres_adapter.ConnectionConfig
		expected string
	}{
		{
			name: "fields",
			cfg: postgres_adapter.ConnectionConfig{
				Host: "localhost", Port: "5432", User: "app", Password: "secret", DBName: "orders", SSLMode: "require",
			},
			expected: "host=localhost port=5432 user=app password=secret dbname=orders sslmode=require",
		},
		{
			name: "ssl mode defaults to disable",
			cfg: postgres_adapter.ConnectionConfig{
				Host: "localhost", Port: "5432", User: "app", DBName: "orders",
			},
			expected: "host=localhost port=5432 user=app password='' dbname=orders sslmode=disable",
		},
		{
			name: "password with a space",
			cfg: postgres_adapter.ConnectionConfig{
				Host: "localhost", Port: "5432", User: "app", Password: "top secret", DBName: "orders",
			},
			expected: "host=localhost port=5432 user=app password='top secret' dbname=orders sslmode=disable",
		},
		{
			name: "password with a quote and a backslash",
			cfg: postgres_adapter.ConnectionConfig{
				Host: "localhost", Port: "5432", User: "app", Password: `it's\here`, DBName: "orders",
			},
			expected: `host=localhost port=5432 user=app password='it\'s\\here' dbname=orders sslmode=disable`,
		},
		{
			name: "database name with a space",
			cfg: postgres_adapter.ConnectionConfig{
				Host: "localhost", Port: "5432", User: "app", Password: "secret", DBName: "my orders",
			},
			expected: "host=localhost port=5432 user=app password=secret dbname='my orders' sslmode=disable",
		},
		{
			name: "url wins over fields",
			cfg: postgres_adapter.ConnectionConfig{
				Host: "ignored",
				URL:  "postgres://app:secret@db:5432/orders?sslmode=disable",
			},
			expected: "dbname=orders host=db password=secret port=5432 sslmode=disable user=app",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dsn, err := postgres_adapter.BuildDSN(tc.cfg)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, dsn)
		})
	}
}

func TestBuildDSN_Errors(t *testing.T) {
	t.Run("missing fields are all reported", func(t *testing.T) {
		_, err := postgres_adapter.BuildDSN(postgres_adapter.ConnectionConfig{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		for _, key := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_NAME"} {
			assert.Contains(t, err.Error(), key)
		}
	})

	t.Run("malformed url", func(t *testing.T) {
		_, err := postgres_adapter.BuildDSN(postgres_adapter.ConnectionConfig{URL: "mysql://nope"})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "DATABASE_URL")
	})
}
