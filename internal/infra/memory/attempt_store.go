package memory

import (
	"context"
	"sync"

	"ontap-quiz-service/internal/domain"
)

// AttemptStore keeps daily attempt counters in nested maps keyed
// username -> date -> quiz name. The single mutex makes the check-and-
// increment atomic for in-process callers.
type AttemptStore struct {
	mu       sync.Mutex
	attempts map[string]map[string]map[string]int
}

func NewAttemptStore() *AttemptStore {
	return &AttemptStore{
		attempts: make(map[string]map[string]map[string]int),
	}
}

func (s *AttemptStore) AttemptsUsed(_ context.Context, username, date, quizName string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts[username][date][quizName], nil
}

func (s *AttemptStore) TryRecordAttempt(_ context.Context, username, date, quizName string, limit int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := s.attempts[username][date][quizName]
	if count >= limit {
		return count, domain.ErrQuotaExceeded
	}

	if s.attempts[username] == nil {
		s.attempts[username] = make(map[string]map[string]int)
	}
	if s.attempts[username][date] == nil {
		s.attempts[username][date] = make(map[string]int)
	}
	s.attempts[username][date][quizName] = count + 1
	return count + 1, nil
}
