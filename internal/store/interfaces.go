package store

import (
	"context"

	"github.com/MKhiriev/go-config-resolver/models"
)

// SnapshotRepository keeps the history of merged configurations.
//
//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock
type SnapshotRepository interface {
	// Save stores snapshot. Saving the same (AppID, ContentHash) twice is
	// a no-op.
	Save(ctx context.Context, snapshot models.Snapshot) error
	// Latest returns the most recent snapshot of appID or ErrSnapshotNotFound.
	Latest(ctx context.Context, appID string) (models.Snapshot, error)
	// List returns snapshots newest first.
	List(ctx context.Context, query models.SnapshotQuery) ([]models.Snapshot, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
