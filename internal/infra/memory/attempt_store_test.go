package memory

import (
	"context"
	"errors"
	"testing"

	"ontap-quiz-service/internal/domain"
)

func TestAttemptStoreEnforcesDailyLimit(t *testing.T) {
	ctx := context.Background()
	store := NewAttemptStore()

	for i := 1; i <= 4; i++ {
		count, err := store.TryRecordAttempt(ctx, "an", "2026-08-30", "TOÁN - LỚP 3 - Vòng 1: Khởi động", 4)
		if err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
		if count != i {
			t.Fatalf("expected count %d, got %d", i, count)
		}
	}

	_, err := store.TryRecordAttempt(ctx, "an", "2026-08-30", "TOÁN - LỚP 3 - Vòng 1: Khởi động", 4)
	if !errors.Is(err, domain.ErrQuotaExceeded) {
		t.Fatalf("expected quota error, got %v", err)
	}
	used, err := store.AttemptsUsed(ctx, "an", "2026-08-30", "TOÁN - LỚP 3 - Vòng 1: Khởi động")
	if err != nil || used != 4 {
		t.Fatalf("expected count to stay 4, got %d (%v)", used, err)
	}
}

func TestAttemptStoreScopesByUserDateAndQuiz(t *testing.T) {
	ctx := context.Background()
	store := NewAttemptStore()

	if _, err := store.TryRecordAttempt(ctx, "an", "2026-08-30", "quiz-a", 4); err != nil {
		t.Fatalf("record: %v", err)
	}

	for _, key := range []struct{ user, date, quiz string }{
		{"binh", "2026-08-30", "quiz-a"},
		{"an", "2026-08-31", "quiz-a"},
		{"an", "2026-08-30", "quiz-b"},
	} {
		used, err := store.AttemptsUsed(ctx, key.user, key.date, key.quiz)
		if err != nil || used != 0 {
			t.Fatalf("expected 0 for %+v, got %d (%v)", key, used, err)
		}
	}
}
