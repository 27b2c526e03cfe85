package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"ontap-quiz-service/internal/domain"
)

// AttemptStore keeps daily attempt counters in Redis hashes:
// HINCRBY quiz:attempts:{user}:{date} {quizName} 1.
// HINCRBY is atomic server-side, so two tabs racing at count 3 cannot both
// slip under the limit: the loser sees 5, is rolled back, and is rejected.
// Keys expire after ttl so past days' counters do not accumulate forever.
type AttemptStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAttemptStore(client *redis.Client, ttl time.Duration) *AttemptStore {
	return &AttemptStore{client: client, ttl: ttl}
}

func (s *AttemptStore) AttemptsUsed(ctx context.Context, username, date, quizName string) (int, error) {
	raw, err := s.client.HGet(ctx, s.key(username, date), quizName).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *AttemptStore) TryRecordAttempt(ctx context.Context, username, date, quizName string, limit int) (int, error) {
	key := s.key(username, date)
	count, err := s.client.HIncrBy(ctx, key, quizName, 1).Result()
	if err != nil {
		return 0, err
	}
	if int(count) > limit {
		// Roll the overshoot back so the stored count stays at the limit.
		_, _ = s.client.HIncrBy(ctx, key, quizName, -1).Result()
		return limit, domain.ErrQuotaExceeded
	}
	if s.ttl > 0 {
		_ = s.client.Expire(ctx, key, s.ttl).Err()
	}
	return int(count), nil
}

func (s *AttemptStore) key(username, date string) string {
	return "quiz:attempts:" + username + ":" + date
}
