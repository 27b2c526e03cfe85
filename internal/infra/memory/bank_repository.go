package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"ontap-quiz-service/internal/domain"
)

// BankLoader fetches the admin-edited bank override from a backing store.
type BankLoader interface {
	LoadBank(ctx context.Context) (domain.Bank, error)
}

// BankRepository serves the merged question bank: a compile-time default
// overlaid with the loader's override, cached with TTL to avoid repeated
// backing-store hits. Sessions snapshot their questions at start, so a
// concurrent admin edit in the override never affects a running exam.
type BankRepository struct {
	defaults domain.Bank
	loader   BankLoader
	ttl      time.Duration
	clock    func() time.Time
	sf       singleflight.Group
	rnd      *rand.Rand

	mu        sync.RWMutex
	cached    domain.Bank
	expiresAt time.Time
}

func NewBankRepository(defaults domain.Bank, loader BankLoader, ttl time.Duration) *BankRepository {
	return &BankRepository{
		defaults: defaults,
		loader:   loader,
		ttl:      ttl,
		clock:    time.Now,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *BankRepository) GetBank(ctx context.Context) (domain.Bank, error) {
	now := r.clock()

	r.mu.RLock()
	if r.cached != nil && r.expiresAt.After(now) {
		bank := r.cached
		r.mu.RUnlock()
		return bank, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do("bank", func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if r.cached != nil && r.expiresAt.After(now) {
			bank := r.cached
			r.mu.RUnlock()
			return bank, nil
		}
		r.mu.RUnlock()

		override, err := r.loader.LoadBank(ctx)
		if err != nil {
			return domain.Bank(nil), err
		}
		merged := domain.MergeBanks(r.defaults, override)

		r.mu.Lock()
		r.cached = merged
		r.expiresAt = now.Add(r.ttlWithJitter())
		r.mu.Unlock()
		return merged, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(domain.Bank), nil
}

// StaticBankLoader serves a fixed override map (tests/demos).
type StaticBankLoader struct {
	bank domain.Bank
}

func NewStaticBankLoader(bank domain.Bank) *StaticBankLoader {
	return &StaticBankLoader{bank: bank}
}

func (l *StaticBankLoader) LoadBank(_ context.Context) (domain.Bank, error) {
	return l.bank, nil
}

func (r *BankRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
