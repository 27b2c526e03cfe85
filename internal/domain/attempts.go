package domain

// MaxDailyAttempts is the default per-quiz, per-day attempt cap.
const MaxDailyAttempts = 4

// RoundAttempts reports how many attempts remain for one round today.
type RoundAttempts struct {
	Round string `json:"name"`
	Left  int    `json:"left"`
}

// SubjectAttempts groups the per-round remainders shown on login.
type SubjectAttempts struct {
	Subject string          `json:"subject"`
	Rounds  []RoundAttempts `json:"rounds"`
}
