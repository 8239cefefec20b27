package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-config-resolver/internal/config"
	"github.com/MKhiriev/go-config-resolver/internal/logger"
)

// Storages groups the repositories of the process. SnapshotRepository is
// nil when no DSN is configured.
type Storages struct {
	SnapshotRepository SnapshotRepository

	db *DB
}

// NewStorages connects to the database named by cfg, applies the
// migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Info().Msg("no storage dsn configured, snapshot history disabled")
		return &Storages{}, nil
	}

	dialect, err := DialectForDSN(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	var db *DB
	switch dialect {
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	default:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating %s database: %w", dialect, err)
	}

	return &Storages{
		SnapshotRepository: NewSnapshotRepository(db, log),
		db:                 db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
