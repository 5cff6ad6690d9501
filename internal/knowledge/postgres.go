package knowledge

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository backs the knowledge store with a sage_knowledge
// table, selected when DATABASE_URL is configured. Appends are single
// parameterized inserts, so serialization comes from the database.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, databaseURL string) (*PostgresRepository, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS sage_knowledge (
			id uuid PRIMARY KEY,
			question text NOT NULL,
			answer text NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now()
		)`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure table: %w", err)
	}

	return &PostgresRepository{pool: pool}, nil
}

func (r *PostgresRepository) Close() {
	r.pool.Close()
}

// Exists maps the flat-file "table absent" bootstrap state to emptiness:
// the table itself is ensured at connect time.
func (r *PostgresRepository) Exists(ctx context.Context) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM sage_knowledge)`).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check store: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) Lookup(ctx context.Context, normalized string) (Match, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT question, answer FROM sage_knowledge ORDER BY created_at`)
	if err != nil {
		return Match{}, fmt.Errorf("query store: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.Question, &rec.Answer); err != nil {
			return Match{}, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return Match{}, fmt.Errorf("iterate records: %w", err)
	}

	return BestMatch(normalized, records), nil
}

func (r *PostgresRepository) Append(ctx context.Context, q, answer string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO sage_knowledge (id, question, answer)
		VALUES ($1, $2, $3)`,
		uuid.New(), q, answer,
	)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}
