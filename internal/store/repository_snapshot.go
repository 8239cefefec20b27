package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/models"
)

// snapshotRepository is the SQL implementation of [SnapshotRepository].
// Placeholders follow the dialect of the underlying [DB].
type snapshotRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSnapshotRepository constructs a [SnapshotRepository] over db.
func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating snapshot repository")
	return &snapshotRepository{
		db:     db,
		logger: logger,
	}
}

// Save inserts snapshot. A duplicate (app_id, content_hash) is not an
// error, and a retryable failure is attempted once more.
func (r *snapshotRepository) Save(ctx context.Context, snapshot models.Snapshot) error {
	log := logger.FromContext(ctx)

	data, err := json.Marshal(snapshot.Data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingSnapshot, err)
	}

	query, args, err := buildSaveSnapshotQuery(r.db.builder, snapshot, string(data))
	if err != nil {
		log.Err(err).Str("func", "*snapshotRepository.Save").Msg("error building query")
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil && r.db.errorClassificator.Classify(err) == Retryable {
		log.Warn().Err(err).Str("func", "*snapshotRepository.Save").Msg("retrying snapshot insert")
		_, err = r.db.ExecContext(ctx, query, args...)
	}

	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return nil
	default:
		log.Err(err).Str("func", "*snapshotRepository.Save").Str("app_id", snapshot.AppID).Msg("error saving snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

func (r *snapshotRepository) Latest(ctx context.Context, appID string) (models.Snapshot, error) {
	snapshots, err := r.List(ctx, models.SnapshotQuery{AppID: appID, Limit: 1})
	if err != nil {
		return models.Snapshot{}, err
	}
	if len(snapshots) == 0 {
		return models.Snapshot{}, ErrSnapshotNotFound
	}
	return snapshots[0], nil
}

func (r *snapshotRepository) List(ctx context.Context, q models.SnapshotQuery) ([]models.Snapshot, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSnapshotsQuery(r.db.builder, q)
	if err != nil {
		log.Err(err).Str("func", "*snapshotRepository.List").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*snapshotRepository.List").Str("app_id", q.AppID).Msg("error querying snapshots")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	snapshots := make([]models.Snapshot, 0)
	for rows.Next() {
		var (
			s       models.Snapshot
			sources string
			data    string
		)
		if err = rows.Scan(&s.AppID, &s.ContentHash, &s.KeyCount, &sources, &data, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if err = json.Unmarshal([]byte(data), &s.Data); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodingSnapshot, err)
		}
		s.Sources = splitSources(sources)
		snapshots = append(snapshots, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return snapshots, nil
}
