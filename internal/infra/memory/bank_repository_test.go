package memory

import (
	"context"
	"testing"
	"time"

	"ontap-quiz-service/internal/domain"
)

func TestBankRepositoryCachesMergedBank(t *testing.T) {
	loader := &countingLoader{
		BankLoader: NewStaticBankLoader(domain.Bank{
			"ÔN TẬP TIẾNG ANH": {"LỚP 1": {{Text: "cat?", Options: []string{"mèo", "chó"}, CorrectIndex: 0}}},
		}),
	}
	repo := NewBankRepository(defaultBank(), loader, time.Minute)

	bank, err := repo.GetBank(context.Background())
	if err != nil {
		t.Fatalf("get bank: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}
	if len(bank.Lookup("TOÁN", "LỚP 1")) != 1 {
		t.Fatalf("expected default subject to survive merge")
	}
	if len(bank.Lookup("TIẾNG ANH", "LỚP 1")) != 1 {
		t.Fatalf("expected override subject present")
	}

	if _, err := repo.GetBank(context.Background()); err != nil {
		t.Fatalf("get bank 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls)
	}
}

type countingLoader struct {
	BankLoader
	calls int
}

func (l *countingLoader) LoadBank(ctx context.Context) (domain.Bank, error) {
	l.calls++
	return l.BankLoader.LoadBank(ctx)
}

func defaultBank() domain.Bank {
	return domain.Bank{
		"ÔN TẬP MÔN TOÁN": {
			"LỚP 1": {{Text: "2 + 7 = ?", Options: []string{"8", "9", "10", "6"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy}},
		},
	}
}
