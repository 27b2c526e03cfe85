package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"ontap-quiz-service/internal/domain"
)

// ResultStore appends quiz outcomes to the quiz_results table. Rows are
// never updated or deleted through this path.
type ResultStore struct {
	pool *pgxpool.Pool
}

func NewResultStore(pool *pgxpool.Pool) *ResultStore {
	return &ResultStore{pool: pool}
}

func (s *ResultStore) Append(ctx context.Context, rec domain.ResultRecord) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO quiz_results (username, score, quiz_name, taken_on) VALUES ($1, $2, $3, $4)`,
		rec.Username, rec.Score, rec.QuizName, rec.Date)
	if err != nil {
		return fmt.Errorf("append quiz result: %w", err)
	}
	return nil
}

func (s *ResultStore) List(ctx context.Context) ([]domain.ResultRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT username, score, quiz_name, taken_on FROM quiz_results ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list quiz results: %w", err)
	}
	defer rows.Close()

	var records []domain.ResultRecord
	for rows.Next() {
		var rec domain.ResultRecord
		if err := rows.Scan(&rec.Username, &rec.Score, &rec.QuizName, &rec.Date); err != nil {
			return nil, fmt.Errorf("scan quiz result: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
