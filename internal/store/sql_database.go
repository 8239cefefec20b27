package store

import (
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/migrations"
)

// Dialect is the goose dialect name of a connection, which is also the
// database/sql driver name.
type Dialect string

const (
	DialectPostgres Dialect = "pgx"
	DialectSQLite   Dialect = "sqlite3"
)

type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Question),
		errorClassificator: noRetryClassifier{},
		logger:             log,
	}
	if dialect == DialectPostgres {
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}
	return db
}

func (db *DB) Dialect() Dialect {
	return db.dialect
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// DialectForDSN picks the driver for dsn: PostgreSQL URLs use pgx, anything
// else is a SQLite path.
func DialectForDSN(dsn string) (Dialect, error) {
	switch {
	case dsn == "":
		return "", ErrUnsupportedDSN
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres, nil
	default:
		return DialectSQLite, nil
	}
}

type noRetryClassifier struct{}

func (noRetryClassifier) Classify(error) ErrorClassification { return NonRetryable }
