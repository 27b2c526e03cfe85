package app

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"ontap-quiz-service/internal/domain"
)

func testQuestions(n int) []domain.Question {
	questions := make([]domain.Question, n)
	for i := range questions {
		questions[i] = domain.Question{
			Text:         fmt.Sprintf("q%d", i),
			Options:      []string{"A", "B", "C", "D"},
			CorrectIndex: i % 4,
			Difficulty:   domain.DifficultyEasy,
		}
	}
	return questions
}

func testSession(n int, d time.Duration) *Session {
	quiz := domain.QuizID{Subject: "TOÁN", Class: "LỚP 3", Round: "Vòng 1: Khởi động"}
	return newSession("s1", domain.User{Username: "an", Class: "LỚP 3"}, quiz, testQuestions(n), d)
}

func TestScoring(t *testing.T) {
	s := testSession(30, 10*time.Minute)

	// First ten right, next ten wrong, last ten untouched.
	for i := 0; i < 10; i++ {
		if err := s.SelectAnswer(i, s.questions[i].CorrectIndex); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}
	for i := 10; i < 20; i++ {
		wrong := (s.questions[i].CorrectIndex + 1) % 4
		if err := s.SelectAnswer(i, wrong); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}

	summary, err := s.Submit(TriggerSubmit)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if summary.CorrectCount != 10 {
		t.Errorf("correct = %d, want 10", summary.CorrectCount)
	}
	if summary.AnsweredCount != 20 {
		t.Errorf("answered = %d, want 20", summary.AnsweredCount)
	}
	if summary.TotalScore != 100 {
		t.Errorf("score = %d, want 100", summary.TotalScore)
	}
	if summary.TotalQuestions != 30 {
		t.Errorf("total = %d, want 30", summary.TotalQuestions)
	}
}

func TestTerminationIsIdempotent(t *testing.T) {
	s := testSession(5, time.Second)

	var mu sync.Mutex
	finishes := 0
	s.onFinish = func(*Session, domain.ResultSummary, Trigger) {
		mu.Lock()
		finishes++
		mu.Unlock()
	}

	// Timer expiry and an escape press race on the same tick.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.tick()
	}()
	go func() {
		defer wg.Done()
		_, _ = s.Submit(TriggerEscape)
	}()
	wg.Wait()

	// Late triggers are no-ops.
	_, _ = s.Submit(TriggerDisconnect)
	s.tick()

	if finishes != 1 {
		t.Fatalf("expected exactly one finish, got %d", finishes)
	}
	if s.statusValue() != domain.StatusFinished {
		t.Fatalf("expected finished status, got %s", s.statusValue())
	}
}

func TestTickCountdownExpires(t *testing.T) {
	s := testSession(3, 2*time.Second)

	s.tick()
	if state := s.State(); state.RemainingSecs != 1 || state.Status != domain.StatusInProgress {
		t.Fatalf("unexpected state after first tick: %+v", state)
	}

	s.tick()
	if state := s.State(); state.Status != domain.StatusFinished {
		t.Fatalf("expected timeout to finish session, got %+v", state)
	}
	if _, ok := s.Summary(); !ok {
		t.Fatalf("expected summary after timeout")
	}
}

func TestSelectAnswerValidatesIndexes(t *testing.T) {
	s := testSession(3, time.Minute)

	for _, c := range []struct{ q, opt int }{{-1, 0}, {3, 0}, {0, -1}, {0, 4}} {
		if err := s.SelectAnswer(c.q, c.opt); !errors.Is(err, domain.ErrInvalidIndex) {
			t.Errorf("SelectAnswer(%d, %d) = %v, want ErrInvalidIndex", c.q, c.opt, err)
		}
	}
	if err := s.SelectAnswer(2, 3); err != nil {
		t.Fatalf("valid answer rejected: %v", err)
	}
	// Overwriting is allowed.
	if err := s.SelectAnswer(2, 1); err != nil {
		t.Fatalf("overwrite rejected: %v", err)
	}
}

func TestNavigateIsRandomAccess(t *testing.T) {
	s := testSession(5, time.Minute)

	if err := s.Navigate(4); err != nil {
		t.Fatalf("navigate: %v", err)
	}
	if err := s.Navigate(0); err != nil {
		t.Fatalf("navigate back: %v", err)
	}
	if err := s.Navigate(5); !errors.Is(err, domain.ErrInvalidIndex) {
		t.Fatalf("expected ErrInvalidIndex, got %v", err)
	}
	if got := s.State().CurrentIndex; got != 0 {
		t.Fatalf("current = %d, want 0", got)
	}
}

func TestMutationsRejectedAfterFinish(t *testing.T) {
	s := testSession(3, time.Minute)
	if _, err := s.Submit(TriggerSubmit); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := s.SelectAnswer(0, 1); !errors.Is(err, domain.ErrSessionFinished) {
		t.Fatalf("expected ErrSessionFinished, got %v", err)
	}
	if err := s.Navigate(1); !errors.Is(err, domain.ErrSessionFinished) {
		t.Fatalf("expected ErrSessionFinished, got %v", err)
	}
}

func TestReviewIsNonMutating(t *testing.T) {
	s := testSession(3, time.Minute)
	_ = s.SelectAnswer(0, s.questions[0].CorrectIndex)
	_ = s.SelectAnswer(1, (s.questions[1].CorrectIndex+1)%4)

	if _, err := s.Review(); !errors.Is(err, domain.ErrSessionInProgress) {
		t.Fatalf("expected review to be gated until finish, got %v", err)
	}

	first, err := s.Submit(TriggerSubmit)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	for i := 0; i < 3; i++ {
		entries, err := s.Review()
		if err != nil {
			t.Fatalf("review %d: %v", i, err)
		}
		if len(entries) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(entries))
		}
		if !entries[0].Correct || !entries[0].Answered {
			t.Fatalf("entry 0 should be answered and correct: %+v", entries[0])
		}
		if entries[1].Correct || !entries[1].Answered {
			t.Fatalf("entry 1 should be answered and wrong: %+v", entries[1])
		}
		if entries[2].Answered {
			t.Fatalf("entry 2 should be unanswered: %+v", entries[2])
		}
	}

	after, ok := s.Summary()
	if !ok || after != first {
		t.Fatalf("summary changed by review: %+v vs %+v", after, first)
	}
}

func TestAbandonSkipsScoring(t *testing.T) {
	s := testSession(3, time.Minute)
	finished := false
	s.onFinish = func(*Session, domain.ResultSummary, Trigger) { finished = true }

	s.abandon()
	if finished {
		t.Fatalf("abandon must not score")
	}
	if _, err := s.Submit(TriggerSubmit); !errors.Is(err, domain.ErrSessionFinished) {
		t.Fatalf("expected ErrSessionFinished after abandon, got %v", err)
	}
	if _, ok := s.Summary(); ok {
		t.Fatalf("abandoned session must have no summary")
	}
}

func TestSubscribeReceivesStateUpdates(t *testing.T) {
	s := testSession(3, time.Minute)
	ch, cancel := s.subscribe()
	defer cancel()

	<-ch // initial snapshot

	if err := s.SelectAnswer(1, 2); err != nil {
		t.Fatalf("answer: %v", err)
	}
	update := <-ch
	if update.AnsweredCount != 1 || update.Answers[1] != 2 {
		t.Fatalf("unexpected update %+v", update)
	}
}
