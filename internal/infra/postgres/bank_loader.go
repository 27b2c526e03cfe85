package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"ontap-quiz-service/internal/domain"
)

// BankLoader reads the admin-edited question bank override from Postgres.
// The override lives as one JSONB document; admin imports replace it
// wholesale, which matches the last-write-wins semantics banks have always
// had.
type BankLoader struct {
	pool *pgxpool.Pool
}

func NewBankLoader(pool *pgxpool.Pool) *BankLoader {
	return &BankLoader{pool: pool}
}

func (l *BankLoader) LoadBank(ctx context.Context) (domain.Bank, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM question_banks ORDER BY updated_at DESC LIMIT 1`).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		// No override imported yet; defaults alone apply.
		return domain.Bank{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}
	var bank domain.Bank
	if err := json.Unmarshal(raw, &bank); err != nil {
		return nil, fmt.Errorf("unmarshal question bank: %w", err)
	}
	return bank, nil
}
