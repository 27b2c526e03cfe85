package domain

import "strings"

// Difficulty buckets questions for the round policies. Questions without a
// difficulty are treated as medium.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Unanswered marks a question position with no recorded answer.
const Unanswered = -1

// Question is a single multiple-choice question. JSON tags match the shape
// the admin tooling stores, so imported banks deserialize as-is.
type Question struct {
	Text         string     `json:"question"`
	Options      []string   `json:"options"`
	CorrectIndex int        `json:"correctAnswerIndex"`
	Difficulty   Difficulty `json:"difficulty,omitempty"`
	ImageURL     string     `json:"image,omitempty"`
}

// EffectiveDifficulty resolves the unset case.
func (q Question) EffectiveDifficulty() Difficulty {
	if q.Difficulty == "" {
		return DifficultyMedium
	}
	return q.Difficulty
}

// Bank maps subject label -> class label -> question list.
type Bank map[string]map[string][]Question

// Lookup finds the question list for a short subject name and class. Subject
// matching is case-insensitive substring against the full labels, since quiz
// names carry only the short form ("TOÁN" for "ÔN TẬP MÔN TOÁN").
func (b Bank) Lookup(subjectShort, class string) []Question {
	full, ok := b.ResolveSubject(subjectShort)
	if !ok {
		return nil
	}
	return b[full][class]
}

// ResolveSubject maps a short subject name back to a full bank key.
func (b Bank) ResolveSubject(subjectShort string) (string, bool) {
	want := strings.ToUpper(subjectShort)
	if want == "" {
		return "", false
	}
	for full := range b {
		if strings.Contains(strings.ToUpper(full), want) {
			return full, true
		}
	}
	return "", false
}

// MergeBanks lays override on top of base, subject by subject. A subject
// present in the override replaces the base subject entirely (shallow merge,
// override wins), matching how imported banks have always been applied.
func MergeBanks(base, override Bank) Bank {
	merged := make(Bank, len(base)+len(override))
	for subject, classes := range base {
		merged[subject] = classes
	}
	for subject, classes := range override {
		merged[subject] = classes
	}
	return merged
}

// User is the authenticated identity handed to the engine by the auth layer.
// A zero Username means the caller is an anonymous guest.
type User struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Class    string `json:"className"`
}

// Anonymous reports whether the user is a guest. Guests can sit a quiz and
// see their score, but nothing is persisted for them.
func (u User) Anonymous() bool {
	return u.Username == ""
}

// GuestName is what anonymous participants are called in result summaries.
const GuestName = "Khách"

// ResultRecord is one persisted quiz outcome. The "className" JSON key is
// historical: the stored field has always carried the full quiz name.
type ResultRecord struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
	QuizName string `json:"className"`
	Date     string `json:"date"`
}

// ResultSummary is the in-memory outcome shown to the participant. It exists
// even when persistence fails or the participant is a guest.
type ResultSummary struct {
	ParticipantName string `json:"participantName"`
	AnsweredCount   int    `json:"answeredCount"`
	CorrectCount    int    `json:"correctCount"`
	TotalScore      int    `json:"totalScore"`
	TotalQuestions  int    `json:"totalQuestions"`
}

// SessionStatus is the lifecycle of an exam session.
type SessionStatus string

const (
	StatusInProgress SessionStatus = "in_progress"
	StatusFinished   SessionStatus = "finished"
	StatusAbandoned  SessionStatus = "abandoned"
)

// SessionState is a renderable snapshot of a running session.
type SessionState struct {
	SessionID      string        `json:"sessionId"`
	QuizName       string        `json:"quizName"`
	Status         SessionStatus `json:"status"`
	CurrentIndex   int           `json:"currentIndex"`
	RemainingSecs  int           `json:"remainingSeconds"`
	Answers        []int         `json:"answers"`
	AnsweredCount  int           `json:"answeredCount"`
	TotalQuestions int           `json:"totalQuestions"`
}

// ReviewEntry pairs a question with the answer given for the read-only
// post-submission review.
type ReviewEntry struct {
	Question Question `json:"question"`
	Given    int      `json:"given"`
	Answered bool     `json:"answered"`
	Correct  bool     `json:"correct"`
}
