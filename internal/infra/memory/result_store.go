package memory

import (
	"context"
	"sync"

	"ontap-quiz-service/internal/domain"
)

// ResultStore is an in-memory append-only result log.
type ResultStore struct {
	mu      sync.RWMutex
	records []domain.ResultRecord
}

func NewResultStore() *ResultStore {
	return &ResultStore{}
}

func (s *ResultStore) Append(_ context.Context, rec domain.ResultRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return nil
}

func (s *ResultStore) List(_ context.Context) ([]domain.ResultRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ResultRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}
