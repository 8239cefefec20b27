package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-config-resolver/models"
)

const (
	snapshotsTable = "snapshots"

	// DefaultSnapshotLimit applies when a query does not set one.
	DefaultSnapshotLimit = 20
)

var snapshotColumns = []string{"app_id", "content_hash", "key_count", "sources", "data", "created_at"}

// buildSaveSnapshotQuery builds an INSERT that ignores an already stored
// (app_id, content_hash) pair.
func buildSaveSnapshotQuery(b sq.StatementBuilderType, s models.Snapshot, data string) (string, []any, error) {
	query, args, err := b.Insert(snapshotsTable).
		Columns(snapshotColumns...).
		Values(s.AppID, s.ContentHash, s.KeyCount, joinSources(s.Sources), data, s.CreatedAt.UTC()).
		Suffix("ON CONFLICT (app_id, content_hash) DO NOTHING").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListSnapshotsQuery selects the newest snapshots of one app.
func buildListSnapshotsQuery(b sq.StatementBuilderType, q models.SnapshotQuery) (string, []any, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultSnapshotLimit
	}

	query, args, err := b.Select(snapshotColumns...).
		From(snapshotsTable).
		Where(sq.Eq{"app_id": q.AppID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func joinSources(sources []models.SourceType) string {
	parts := make([]string, len(sources))
	for i, s := range sources {
		parts[i] = string(s)
	}
	return strings.Join(parts, ",")
}

func splitSources(s string) []models.SourceType {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]models.SourceType, len(parts))
	for i, p := range parts {
		out[i] = models.SourceType(p)
	}
	return out
}
