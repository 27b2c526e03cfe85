package redis

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"ontap-quiz-service/internal/domain"
)

const resultsKey = "quiz:results"

// ResultStore appends result records to a Redis list, preserving submission
// order for history and leaderboard reads.
type ResultStore struct {
	client *redis.Client
}

func NewResultStore(client *redis.Client) *ResultStore {
	return &ResultStore{client: client}
}

func (s *ResultStore) Append(ctx context.Context, rec domain.ResultRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.client.RPush(ctx, resultsKey, data).Err()
}

func (s *ResultStore) List(ctx context.Context) ([]domain.ResultRecord, error) {
	raw, err := s.client.LRange(ctx, resultsKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	records := make([]domain.ResultRecord, 0, len(raw))
	for _, item := range raw {
		var rec domain.ResultRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
