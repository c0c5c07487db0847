package goal

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps the goal in a single-row table. Selected at startup
// when DATABASE_URL is configured; the upsert makes concurrent writers safe.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresStore(pool *pgxpool.Pool, logger *slog.Logger) *PostgresStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresStore{pool: pool, logger: logger}
}

// EnsureSchema creates the goal table if it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS fundraising_goal (
			id smallint PRIMARY KEY,
			amount double precision NOT NULL
		)`)
	return err
}

func (s *PostgresStore) Read(ctx context.Context) float64 {
	var value float64
	err := s.pool.QueryRow(ctx, `SELECT amount FROM fundraising_goal WHERE id = 1`).Scan(&value)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn("goal read failed", "error", err)
		}
		return DefaultGoal
	}
	return value
}

func (s *PostgresStore) Write(ctx context.Context, value float64) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO fundraising_goal (id, amount) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET amount = EXCLUDED.amount`, value)
	return err
}
