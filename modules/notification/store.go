package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// PredictionStore persists predictor signups. A Service without a store
// skips persistence.
type PredictionStore interface {
	// UpsertPrediction inserts sub, or replaces the row with the same UniqueID.
	UpsertPrediction(ctx context.Context, sub PredictionSubmission) error
}

// DBTX is the subset of *pgxpool.Pool used by PostgresStore.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const upsertPredictionSQL = `
INSERT INTO predictions (unique_id, name, email, country, predictions, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (unique_id) DO UPDATE SET
	name = EXCLUDED.name,
	email = EXCLUDED.email,
	country = EXCLUDED.country,
	predictions = EXCLUDED.predictions,
	created_at = EXCLUDED.created_at`

// PostgresStore writes to the predictions table.
type PostgresStore struct {
	db DBTX
}

// NewPostgresStore creates a store on top of a pgx pool or transaction.
func NewPostgresStore(db DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

// UpsertPrediction implements PredictionStore.
func (s *PostgresStore) UpsertPrediction(ctx context.Context, sub PredictionSubmission) error {
	predictions := sub.Predictions
	if predictions == nil {
		predictions = map[string]any{}
	}
	payload, err := json.Marshal(predictions)
	if err != nil {
		return fmt.Errorf("%w: encode predictions: %w", ErrStoreWrite, err)
	}

	if _, err := s.db.Exec(ctx, upsertPredictionSQL,
		sub.UniqueID,
		sub.Name,
		sub.Email,
		sub.Country,
		payload,
		sub.CreatedAt,
	); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreWrite, err)
	}
	return nil
}
