package redis

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"

	"ontap-quiz-service/internal/domain"
)

func TestResultStoreKeepsSubmissionOrder(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	store := NewResultStore(newClient(mr))

	first := domain.ResultRecord{Username: "an", Score: 70, QuizName: "TOÁN - LỚP 3 - Vòng 1: Khởi động", Date: "30/8/2026"}
	second := domain.ResultRecord{Username: "binh", Score: 100, QuizName: "TOÁN - LỚP 3 - Vòng 1: Khởi động", Date: "30/8/2026"}
	if err := store.Append(ctx, first); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.Append(ctx, second); err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 || records[0] != first || records[1] != second {
		t.Fatalf("unexpected records %+v", records)
	}
}
