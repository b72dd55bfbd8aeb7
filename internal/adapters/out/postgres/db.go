package postgres

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/adapters/out/postgres/userrepo"
	"orders/internal/pkg/errs"

	"github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ConnectionConfig holds the connection settings. URL, when set, wins over
// the individual fields.
type ConnectionConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// BuildDSN returns a key/value DSN. A postgres:// URL is converted with
// pq.ParseURL; otherwise Host, Port, User and DBName are required and each
// value is quoted as libpq expects.
//
// Example:
//
//	dsn, err := BuildDSN(ConnectionConfig{URL: "postgres://app:secret@db:5432/orders?sslmode=disable"})
//	// dsn == "dbname=orders host=db password=secret port=5432 sslmode=disable user=app"
func BuildDSN(cfg ConnectionConfig) (string, error) {
	if cfg.URL != "" {
		dsn, err := pq.ParseURL(cfg.URL)
		if err != nil {
			return "", errs.NewValueIsInvalidErrorWithCause("DATABASE_URL", err)
		}
		return dsn, nil
	}

	if err := errors.Join(
		required("DB_HOST", cfg.Host),
		required("DB_PORT", cfg.Port),
		required("DB_USER", cfg.User),
		required("DB_NAME", cfg.DBName),
	); err != nil {
		return "", err
	}

	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		dsnValue(cfg.Host), dsnValue(cfg.Port), dsnValue(cfg.User),
		dsnValue(cfg.Password), dsnValue(cfg.DBName), dsnValue(sslMode)), nil
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// dsnValue quotes a key/value DSN value when libpq requires it: empty values
// and values holding whitespace, a quote or a backslash.
func dsnValue(v string) string {
	if v != "" && !strings.ContainsAny(v, " \t\n\r\f\v'\\") {
		return v
	}
	return "'" + dsnEscaper.Replace(v) + "'"
}

func required(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

// Open connects to PostgreSQL through GORM.
//
// TranslateError is enabled so unique and foreign key violations surface as
// gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated; the repositories
// rely on that to report conflicts.
func Open(dsn string, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(slog.NewLogLogger(logger.Handler(), slog.LevelWarn), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the users and orders tables, their indexes and
// the orders.user_id foreign key.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&userrepo.UserDTO{}, &orderrepo.OrderDTO{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
