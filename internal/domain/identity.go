package domain

import (
	"fmt"
	"strings"
)

// Subjects are the built-in subject labels offered on the landing page.
var Subjects = []string{
	"ÔN TẬP MÔN TOÁN",
	"ÔN TẬP TIẾNG VIỆT",
	"ÔN TẬP TIẾNG ANH",
}

// Rounds are the four exam tiers in ascending difficulty mix.
var Rounds = []string{
	"Vòng 1: Khởi động",
	"Vòng 2: Vượt chướng ngại vật",
	"Vòng 3: Tăng tốc",
	"Vòng 4: Về đích",
}

// subjectPrefixes are stripped from subject labels when building quiz names.
// Order matters: the longer prefix must be tried first.
var subjectPrefixes = []string{"ÔN TẬP MÔN ", "ÔN TẬP "}

// ShortSubject strips the fixed label prefixes, e.g.
// "ÔN TẬP MÔN TOÁN" -> "TOÁN".
func ShortSubject(label string) string {
	for _, p := range subjectPrefixes {
		if strings.HasPrefix(label, p) {
			return strings.TrimPrefix(label, p)
		}
	}
	return label
}

// QuizID identifies one (subject, class, round) exam. It replaces the loose
// "<subject> - <class> - <round>" string that used to be parsed at every
// call site; String and ParseQuizID are the only places aware of that form,
// which is still the join key for stored attempts and results.
type QuizID struct {
	Subject string // short subject name, e.g. "TOÁN"
	Class   string // e.g. "LỚP 3"
	Round   string // e.g. "Vòng 1: Khởi động"
}

// NewQuizID builds an identity from a full subject label.
func NewQuizID(subjectLabel, class, round string) QuizID {
	return QuizID{Subject: ShortSubject(subjectLabel), Class: class, Round: round}
}

// String renders the legacy storage key.
func (id QuizID) String() string {
	return id.Subject + " - " + id.Class + " - " + id.Round
}

// ParseQuizID splits a quiz name on " - ". The round label may itself
// contain free text, so everything past the second separator belongs to the
// round.
func ParseQuizID(name string) (QuizID, error) {
	parts := strings.SplitN(name, " - ", 3)
	if len(parts) < 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return QuizID{}, fmt.Errorf("malformed quiz name %q: %w", name, ErrQuizNotFound)
	}
	return QuizID{Subject: parts[0], Class: parts[1], Round: parts[2]}, nil
}
