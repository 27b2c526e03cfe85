package app

import (
	"sync"
	"sync/atomic"
	"time"

	"ontap-quiz-service/internal/domain"
)

// Trigger names the event that terminated a session. Whichever fires first
// wins; the rest become no-ops.
type Trigger string

const (
	TriggerSubmit     Trigger = "submit"
	TriggerTimeout    Trigger = "timeout"
	TriggerEscape     Trigger = "escape"
	TriggerDisconnect Trigger = "disconnect"
)

const (
	statusInProgress int32 = iota
	statusFinished
	statusAbandoned
)

// Session is one student's in-flight exam. The question set is fixed at
// start; answers and the countdown mutate until a terminal trigger fires.
// Termination is guarded by a compare-and-swap on the status word, so
// concurrent triggers (timer expiry racing an escape key, say) score and
// persist exactly once.
type Session struct {
	id        string
	user      domain.User
	quiz      domain.QuizID
	questions []domain.Question
	status    int32

	mu          sync.RWMutex
	answers     []int
	current     int
	remaining   int
	summary     domain.ResultSummary
	record      *domain.ResultRecord
	subscribers map[chan domain.SessionState]struct{}

	stopTicker chan struct{}
	stopOnce   sync.Once

	// onFinish persists the outcome; set by the service before start.
	onFinish func(*Session, domain.ResultSummary, Trigger)
}

func newSession(id string, user domain.User, quiz domain.QuizID, questions []domain.Question, duration time.Duration) *Session {
	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = domain.Unanswered
	}
	return &Session{
		id:          id,
		user:        user,
		quiz:        quiz,
		questions:   questions,
		answers:     answers,
		remaining:   int(duration / time.Second),
		subscribers: make(map[chan domain.SessionState]struct{}),
		stopTicker:  make(chan struct{}),
	}
}

// NewSessionForTest builds a detached session with a fixed clock budget.
// Exported for infrastructure tests that need a session without a service.
func NewSessionForTest(id string, user domain.User, quiz domain.QuizID, questions []domain.Question, duration time.Duration) *Session {
	return newSession(id, user, quiz, questions, duration)
}

func (s *Session) ID() string          { return s.id }
func (s *Session) User() domain.User   { return s.user }
func (s *Session) Quiz() domain.QuizID { return s.quiz }
func (s *Session) QuizName() string    { return s.quiz.String() }

// Questions returns the fixed question set in session order.
func (s *Session) Questions() []domain.Question {
	out := make([]domain.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// start launches the one-second countdown. The goroutine exits on any
// terminal transition or abandon, so a torn-down session never ticks.
func (s *Session) start() {
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.tick()
			case <-s.stopTicker:
				return
			}
		}
	}()
}

func (s *Session) stop() {
	s.stopOnce.Do(func() { close(s.stopTicker) })
}

// tick advances the countdown by one second and fires the timeout trigger
// when it reaches zero.
func (s *Session) tick() {
	if atomic.LoadInt32(&s.status) != statusInProgress {
		return
	}
	s.mu.Lock()
	if s.remaining > 0 {
		s.remaining--
	}
	expired := s.remaining <= 0
	s.broadcastLocked()
	s.mu.Unlock()

	if expired {
		s.finish(TriggerTimeout)
	}
}

// SelectAnswer records (or overwrites) the answer for a question.
func (s *Session) SelectAnswer(questionIdx, optionIdx int) error {
	if atomic.LoadInt32(&s.status) != statusInProgress {
		return domain.ErrSessionFinished
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if questionIdx < 0 || questionIdx >= len(s.questions) {
		return domain.ErrInvalidIndex
	}
	if optionIdx < 0 || optionIdx >= len(s.questions[questionIdx].Options) {
		return domain.ErrInvalidIndex
	}
	s.answers[questionIdx] = optionIdx
	s.broadcastLocked()
	return nil
}

// Navigate moves the cursor to any question; all positions stay reachable
// regardless of answered state.
func (s *Session) Navigate(questionIdx int) error {
	if atomic.LoadInt32(&s.status) != statusInProgress {
		return domain.ErrSessionFinished
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if questionIdx < 0 || questionIdx >= len(s.questions) {
		return domain.ErrInvalidIndex
	}
	s.current = questionIdx
	s.broadcastLocked()
	return nil
}

// Submit drives the session to Finished. Safe to call from any trigger any
// number of times; only the first call scores and persists.
func (s *Session) Submit(trigger Trigger) (domain.ResultSummary, error) {
	if atomic.LoadInt32(&s.status) == statusAbandoned {
		return domain.ResultSummary{}, domain.ErrSessionFinished
	}
	s.finish(trigger)
	summary, _ := s.Summary()
	return summary, nil
}

func (s *Session) finish(trigger Trigger) {
	if !atomic.CompareAndSwapInt32(&s.status, statusInProgress, statusFinished) {
		return
	}
	s.stop()

	s.mu.Lock()
	summary := s.scoreLocked()
	s.summary = summary
	s.mu.Unlock()

	// Persist before broadcasting so subscribers observing the finished
	// state can already see whether the result was saved.
	if s.onFinish != nil {
		s.onFinish(s, summary, trigger)
	}

	s.mu.Lock()
	s.broadcastLocked()
	s.mu.Unlock()
}

// abandon discards the session without scoring. Already-finished sessions
// keep their result; only the ticker is reclaimed.
func (s *Session) abandon() {
	atomic.CompareAndSwapInt32(&s.status, statusInProgress, statusAbandoned)
	s.stop()
}

func (s *Session) scoreLocked() domain.ResultSummary {
	correct, answered := 0, 0
	for i, a := range s.answers {
		if a == domain.Unanswered {
			continue
		}
		answered++
		if a == s.questions[i].CorrectIndex {
			correct++
		}
	}
	name := s.user.Username
	if s.user.Anonymous() {
		name = domain.GuestName
	}
	return domain.ResultSummary{
		ParticipantName: name,
		AnsweredCount:   answered,
		CorrectCount:    correct,
		TotalScore:      correct * 10,
		TotalQuestions:  len(s.questions),
	}
}

// Summary returns the scored outcome once the session is finished.
func (s *Session) Summary() (domain.ResultSummary, bool) {
	if atomic.LoadInt32(&s.status) != statusFinished {
		return domain.ResultSummary{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summary, true
}

// Record returns the persisted result, if any. Guests and failed writes
// leave it unset while the summary stays available.
func (s *Session) Record() (domain.ResultRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.record == nil {
		return domain.ResultRecord{}, false
	}
	return *s.record, true
}

func (s *Session) setRecord(rec domain.ResultRecord) {
	s.mu.Lock()
	s.record = &rec
	s.mu.Unlock()
}

// Review builds the read-only per-question report. It never mutates session
// state, so toggling in and out of review is free.
func (s *Session) Review() ([]domain.ReviewEntry, error) {
	if atomic.LoadInt32(&s.status) != statusFinished {
		return nil, domain.ErrSessionInProgress
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]domain.ReviewEntry, len(s.questions))
	for i, q := range s.questions {
		given := s.answers[i]
		entries[i] = domain.ReviewEntry{
			Question: q,
			Given:    given,
			Answered: given != domain.Unanswered,
			Correct:  given == q.CorrectIndex,
		}
	}
	return entries, nil
}

// State snapshots the session for rendering.
func (s *Session) State() domain.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() domain.SessionState {
	answered := 0
	answers := make([]int, len(s.answers))
	for i, a := range s.answers {
		answers[i] = a
		if a != domain.Unanswered {
			answered++
		}
	}
	return domain.SessionState{
		SessionID:      s.id,
		QuizName:       s.quiz.String(),
		Status:         s.statusValue(),
		CurrentIndex:   s.current,
		RemainingSecs:  s.remaining,
		Answers:        answers,
		AnsweredCount:  answered,
		TotalQuestions: len(s.questions),
	}
}

func (s *Session) statusValue() domain.SessionStatus {
	switch atomic.LoadInt32(&s.status) {
	case statusFinished:
		return domain.StatusFinished
	case statusAbandoned:
		return domain.StatusAbandoned
	default:
		return domain.StatusInProgress
	}
}

// subscribe returns a channel fed with state snapshots on every change and
// tick. The cancel function must be called to avoid leaks.
func (s *Session) subscribe() (<-chan domain.SessionState, func()) {
	ch := make(chan domain.SessionState, 8)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	initial := s.snapshotLocked()
	s.mu.Unlock()

	ch <- initial

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Session) broadcastLocked() {
	state := s.snapshotLocked()
	for ch := range s.subscribers {
		select {
		case ch <- state:
		default:
			// Drop the stale snapshot so a slow reader never blocks the tick.
			select {
			case <-ch:
			default:
			}
			ch <- state
		}
	}
}
