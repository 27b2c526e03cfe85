package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ontap-quiz-service/internal/domain"
	"ontap-quiz-service/internal/selection"
)

// dateKey is the calendar-day format attempts are bucketed under. Local
// device time, no timezone normalization: crossing midnight mid-quiz does
// not refund the attempt consumed at start.
const dateKey = "2006-01-02"

// resultDateFormat mirrors the vi-VN locale date (d/M/yyyy) results have
// always been stored with.
const resultDateFormat = "2/1/2006"

// BankRepository serves the merged question bank.
type BankRepository interface {
	GetBank(ctx context.Context) (domain.Bank, error)
}

// AttemptStore tracks daily attempt counters per (user, date, quiz name).
// TryRecordAttempt must be atomic with respect to concurrent callers: it
// either increments under the limit and returns the new count, or fails
// with domain.ErrQuotaExceeded leaving the count untouched.
type AttemptStore interface {
	AttemptsUsed(ctx context.Context, username, date, quizName string) (int, error)
	TryRecordAttempt(ctx context.Context, username, date, quizName string, limit int) (int, error)
}

// ResultStore is the append-only log of quiz outcomes.
type ResultStore interface {
	Append(ctx context.Context, rec domain.ResultRecord) error
	List(ctx context.Context) ([]domain.ResultRecord, error)
}

// SessionRepository holds live sessions by ID.
type SessionRepository interface {
	Put(session *Session)
	Get(id string) (*Session, bool)
	Delete(id string)
}

// ExamService runs timed exam sessions: question selection, quota gating,
// answer tracking, termination, scoring, and result persistence.
type ExamService struct {
	banks    BankRepository
	quotas   AttemptStore
	results  ResultStore
	sessions SessionRepository
	log      *zap.Logger

	picker       *selection.Picker
	clock        func() time.Time
	duration     time.Duration
	maxAttempts  int
	maxQuestions int
}

// Option tweaks service defaults, mainly for tests.
type Option func(*ExamService)

func WithClock(now func() time.Time) Option {
	return func(s *ExamService) { s.clock = now }
}

func WithDuration(d time.Duration) Option {
	return func(s *ExamService) { s.duration = d }
}

func WithPicker(p *selection.Picker) Option {
	return func(s *ExamService) { s.picker = p }
}

func WithMaxAttempts(n int) Option {
	return func(s *ExamService) { s.maxAttempts = n }
}

func WithMaxQuestions(n int) Option {
	return func(s *ExamService) { s.maxQuestions = n }
}

func NewExamService(banks BankRepository, quotas AttemptStore, results ResultStore, sessions SessionRepository, log *zap.Logger, opts ...Option) *ExamService {
	s := &ExamService{
		banks:        banks,
		quotas:       quotas,
		results:      results,
		sessions:     sessions,
		log:          log,
		picker:       selection.New(),
		clock:        time.Now,
		duration:     10 * time.Minute,
		maxAttempts:  domain.MaxDailyAttempts,
		maxQuestions: selection.MaxQuestions,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartQuiz assembles a question set for the quiz identity and opens a
// session. The question lookup runs before the quota gate, so an unknown
// quiz never burns an attempt; a started-and-abandoned quiz does.
func (s *ExamService) StartQuiz(ctx context.Context, user domain.User, id domain.QuizID) (*Session, error) {
	bank, err := s.banks.GetBank(ctx)
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}

	questions := s.picker.Pick(bank.Lookup(id.Subject, id.Class), id.Round, s.maxQuestions)
	if len(questions) == 0 {
		return nil, fmt.Errorf("%s: %w", id, domain.ErrQuizNotFound)
	}

	if !user.Anonymous() {
		date := s.clock().Format(dateKey)
		count, err := s.quotas.TryRecordAttempt(ctx, user.Username, date, id.String(), s.maxAttempts)
		if err != nil {
			return nil, err
		}
		s.log.Info("attempt recorded",
			zap.String("user", user.Username),
			zap.String("quiz", id.String()),
			zap.Int("attempts_today", count))
	}

	session := newSession(uuid.NewString(), user, id, questions, s.duration)
	session.onFinish = s.persistResult
	s.sessions.Put(session)
	session.start()

	s.log.Info("exam started",
		zap.String("session", session.ID()),
		zap.String("quiz", id.String()),
		zap.Int("questions", len(questions)))
	return session, nil
}

// Session looks up a live session.
func (s *ExamService) Session(id string) (*Session, bool) {
	return s.sessions.Get(id)
}

// Submit fires a termination trigger against a session.
func (s *ExamService) Submit(sessionID string, trigger Trigger) (domain.ResultSummary, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.ResultSummary{}, domain.ErrSessionNotFound
	}
	return session.Submit(trigger)
}

// Subscribe returns a channel fed with session state snapshots (answers,
// cursor, countdown) until the subscription is cancelled. The caller must
// invoke the cancel function to avoid leaks.
func (s *ExamService) Subscribe(sessionID string) (<-chan domain.SessionState, func(), error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, nil, domain.ErrSessionNotFound
	}
	ch, cancel := session.subscribe()
	return ch, cancel, nil
}

// Abandon discards a session without scoring and reclaims its timer. On an
// already-finished session it only removes the registry entry.
func (s *ExamService) Abandon(sessionID string) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return
	}
	session.abandon()
	s.sessions.Delete(sessionID)
}

// persistResult appends the outcome for authenticated users. Write failures
// are logged and swallowed: the participant always sees their score even
// when the leaderboard misses it.
func (s *ExamService) persistResult(session *Session, summary domain.ResultSummary, trigger Trigger) {
	s.log.Info("exam finished",
		zap.String("session", session.ID()),
		zap.String("trigger", string(trigger)),
		zap.Int("score", summary.TotalScore))

	if session.User().Anonymous() {
		return
	}

	rec := domain.ResultRecord{
		Username: session.User().Username,
		Score:    summary.TotalScore,
		QuizName: session.QuizName(),
		Date:     s.clock().Format(resultDateFormat),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.results.Append(ctx, rec); err != nil {
		s.log.Warn("save quiz result failed",
			zap.String("session", session.ID()),
			zap.Error(err))
		return
	}
	session.setRecord(rec)
}

// AttemptsUsed reports today's attempt count for one quiz.
func (s *ExamService) AttemptsUsed(ctx context.Context, user domain.User, id domain.QuizID) (int, error) {
	if user.Anonymous() {
		return 0, nil
	}
	return s.quotas.AttemptsUsed(ctx, user.Username, s.clock().Format(dateKey), id.String())
}

// AttemptsSummary builds the subject-by-round remainders shown to a student
// on login.
func (s *ExamService) AttemptsSummary(ctx context.Context, user domain.User) ([]domain.SubjectAttempts, error) {
	date := s.clock().Format(dateKey)
	summary := make([]domain.SubjectAttempts, 0, len(domain.Subjects))
	for _, subject := range domain.Subjects {
		rounds := make([]domain.RoundAttempts, 0, len(domain.Rounds))
		for _, round := range domain.Rounds {
			id := domain.NewQuizID(subject, user.Class, round)
			used := 0
			if !user.Anonymous() {
				var err error
				used, err = s.quotas.AttemptsUsed(ctx, user.Username, date, id.String())
				if err != nil {
					return nil, fmt.Errorf("attempts for %s: %w", id, err)
				}
			}
			rounds = append(rounds, domain.RoundAttempts{Round: round, Left: s.maxAttempts - used})
		}
		summary = append(summary, domain.SubjectAttempts{Subject: subject, Rounds: rounds})
	}
	return summary, nil
}

// Leaderboard returns the top results by score, insertion order breaking
// ties (earlier submissions first).
func (s *ExamService) Leaderboard(ctx context.Context, limit int) ([]domain.ResultRecord, error) {
	records, err := s.results.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Score > records[j].Score
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// History returns one user's results in submission order.
func (s *ExamService) History(ctx context.Context, username string) ([]domain.ResultRecord, error) {
	records, err := s.results.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	var out []domain.ResultRecord
	for _, rec := range records {
		if rec.Username == username {
			out = append(out, rec)
		}
	}
	return out, nil
}
