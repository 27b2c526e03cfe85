package domain

import "errors"

var (
	// ErrQuotaExceeded is returned when a user already spent all daily
	// attempts for a quiz.
	ErrQuotaExceeded = errors.New("daily attempt quota exceeded")
	// ErrQuizNotFound indicates the requested subject/class has no questions.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrSessionNotFound is returned for operations on an unknown session.
	ErrSessionNotFound = errors.New("exam session not found")
	// ErrSessionFinished is returned for mutations after a terminal trigger.
	ErrSessionFinished = errors.New("exam session already finished")
	// ErrSessionInProgress guards reads that only make sense post-submission.
	ErrSessionInProgress = errors.New("exam session still in progress")
	// ErrInvalidIndex flags an out-of-range question or option index. It is
	// a caller bug, not a user-facing condition.
	ErrInvalidIndex = errors.New("index out of range")
)
