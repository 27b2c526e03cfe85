package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"ontap-quiz-service/internal/domain"
)

const bankOverrideKey = "quiz:bank:override"

// BankLoader fetches the admin-edited bank override from a backing store.
type BankLoader interface {
	LoadBank(ctx context.Context) (domain.Bank, error)
}

// BankRepository caches the bank override JSON in Redis and merges it over
// the built-in defaults on every read. The cache is shared across
// instances; a loader miss is filled once per key thanks to singleflight.
type BankRepository struct {
	client   *redis.Client
	defaults domain.Bank
	loader   BankLoader
	ttl      time.Duration
	sf       singleflight.Group
	rnd      *rand.Rand
}

func NewBankRepository(client *redis.Client, defaults domain.Bank, loader BankLoader, ttl time.Duration) *BankRepository {
	return &BankRepository{
		client:   client,
		defaults: defaults,
		loader:   loader,
		ttl:      ttl,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *BankRepository) GetBank(ctx context.Context) (domain.Bank, error) {
	raw, err := r.client.Get(ctx, bankOverrideKey).Result()
	if err == nil {
		var override domain.Bank
		if err := json.Unmarshal([]byte(raw), &override); err == nil {
			return domain.MergeBanks(r.defaults, override), nil
		}
		// Corrupt cache entry falls through to a reload.
	}

	result, err, _ := r.sf.Do(bankOverrideKey, func() (interface{}, error) {
		raw, err := r.client.Get(ctx, bankOverrideKey).Result()
		if err == nil {
			var override domain.Bank
			if err := json.Unmarshal([]byte(raw), &override); err == nil {
				return override, nil
			}
		}

		override, err := r.loader.LoadBank(ctx)
		if err != nil {
			return domain.Bank(nil), err
		}
		data, err := json.Marshal(override)
		if err != nil {
			return domain.Bank(nil), err
		}
		_ = r.client.Set(ctx, bankOverrideKey, data, r.ttlWithJitter()).Err()
		return override, nil
	})
	if err != nil {
		return nil, err
	}
	return domain.MergeBanks(r.defaults, result.(domain.Bank)), nil
}

func (r *BankRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
