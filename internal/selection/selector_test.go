package selection

import (
	"fmt"
	"math/rand"
	"testing"

	"ontap-quiz-service/internal/domain"
)

func TestRound1DrawsThirtyEasy(t *testing.T) {
	questions := makeQuestions(40, domain.DifficultyEasy)
	questions = append(questions, makeQuestions(10, domain.DifficultyHard)...)

	picked := testPicker().Pick(questions, "Vòng 1: Khởi động", 0)
	if len(picked) != 30 {
		t.Fatalf("expected 30 questions, got %d", len(picked))
	}
	for _, q := range picked {
		if q.Difficulty != domain.DifficultyEasy {
			t.Fatalf("expected only easy questions, got %q for %q", q.Difficulty, q.Text)
		}
	}
	assertNoDuplicates(t, picked)
}

func TestRound2BackfillsShortEasyPool(t *testing.T) {
	questions := makeQuestions(5, domain.DifficultyEasy)
	questions = append(questions, makeQuestions(50, domain.DifficultyMedium)...)

	picked := testPicker().Pick(questions, "Vòng 2: Vượt chướng ngại vật", 0)
	if len(picked) != 30 {
		t.Fatalf("expected backfill to 30 questions, got %d", len(picked))
	}
	easy := 0
	for _, q := range picked {
		if q.Difficulty == domain.DifficultyEasy {
			easy++
		}
	}
	if easy != 5 {
		t.Fatalf("expected all 5 easy questions used, got %d", easy)
	}
	assertNoDuplicates(t, picked)
}

func TestDefaultPolicyForUnknownRound(t *testing.T) {
	questions := makeQuestions(20, domain.DifficultyEasy)
	questions = append(questions, makeQuestions(20, domain.DifficultyMedium)...)
	questions = append(questions, makeQuestions(20, domain.DifficultyHard)...)

	picked := testPicker().Pick(questions, "Vòng đặc biệt", 0)
	if len(picked) != 30 {
		t.Fatalf("expected 30 questions, got %d", len(picked))
	}
	counts := map[domain.Difficulty]int{}
	for _, q := range picked {
		counts[q.Difficulty]++
	}
	for _, d := range []domain.Difficulty{domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard} {
		if counts[d] != 10 {
			t.Fatalf("expected 10 %s questions, got %d", d, counts[d])
		}
	}
}

func TestUnsetDifficultyCountsAsMedium(t *testing.T) {
	questions := make([]domain.Question, 15)
	for i := range questions {
		questions[i] = domain.Question{Text: fmt.Sprintf("q%d", i), Options: options(), CorrectIndex: 0}
	}

	picked := testPicker().Pick(questions, "Vòng 4: Về đích", 0)
	// Round 4 wants 15 medium + 15 hard; only 15 unset-difficulty questions
	// exist, so they all serve as the medium quota and nothing backfills hard.
	if len(picked) != 15 {
		t.Fatalf("expected 15 questions, got %d", len(picked))
	}
}

func TestPickNeverExceedsAvailable(t *testing.T) {
	questions := makeQuestions(7, domain.DifficultyEasy)
	picked := testPicker().Pick(questions, "Vòng 1: Khởi động", 0)
	if len(picked) != 7 {
		t.Fatalf("expected all 7 available, got %d", len(picked))
	}

	if got := testPicker().Pick(nil, "Vòng 1: Khởi động", 0); len(got) != 0 {
		t.Fatalf("expected empty set for empty bank, got %d", len(got))
	}
}

func TestPickRespectsCap(t *testing.T) {
	questions := makeQuestions(60, domain.DifficultyEasy)
	picked := testPicker().Pick(questions, "Vòng 1: Khởi động", 10)
	if len(picked) != 10 {
		t.Fatalf("expected cap of 10, got %d", len(picked))
	}
}

func testPicker() *Picker {
	return NewWithRand(rand.New(rand.NewSource(42)))
}

func makeQuestions(n int, d domain.Difficulty) []domain.Question {
	questions := make([]domain.Question, n)
	for i := range questions {
		questions[i] = domain.Question{
			Text:         fmt.Sprintf("%s-%d", d, i),
			Options:      options(),
			CorrectIndex: i % 4,
			Difficulty:   d,
		}
	}
	return questions
}

func options() []string {
	return []string{"A", "B", "C", "D"}
}

func assertNoDuplicates(t *testing.T, questions []domain.Question) {
	t.Helper()
	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		if seen[q.Text] {
			t.Fatalf("duplicate question %q in selection", q.Text)
		}
		seen[q.Text] = true
	}
}
