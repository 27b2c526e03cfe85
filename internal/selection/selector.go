// Package selection assembles the question set for one exam session.
//
// The full class list is shuffled, partitioned by difficulty, and drawn
// against the round's quota (e.g. round 3 wants 10 easy, 15 medium, 5 hard).
// When a difficulty pool runs short the remainder is backfilled from the
// combined pool so a thin bank still yields the largest possible set.
package selection

import (
	"math/rand"
	"strings"
	"time"

	"ontap-quiz-service/internal/domain"
)

// MaxQuestions caps a session's question set.
const MaxQuestions = 30

// quota is one (difficulty, count) draw target.
type quota struct {
	difficulty domain.Difficulty
	count      int
}

// roundQuotas maps the "Vòng N" token embedded in a round label to its mix.
var roundQuotas = []struct {
	token  string
	quotas []quota
}{
	{"Vòng 1", []quota{{domain.DifficultyEasy, 30}}},
	{"Vòng 2", []quota{{domain.DifficultyEasy, 15}, {domain.DifficultyMedium, 15}}},
	{"Vòng 3", []quota{{domain.DifficultyEasy, 10}, {domain.DifficultyMedium, 15}, {domain.DifficultyHard, 5}}},
	{"Vòng 4", []quota{{domain.DifficultyMedium, 15}, {domain.DifficultyHard, 15}}},
}

// defaultQuotas applies when the round label matches no known token.
var defaultQuotas = []quota{
	{domain.DifficultyEasy, 10},
	{domain.DifficultyMedium, 10},
	{domain.DifficultyHard, 10},
}

// Picker selects randomized question sets. Selection is intentionally
// re-randomized per call so retaking a round yields a different subset.
type Picker struct {
	rnd *rand.Rand
}

func New() *Picker {
	return &Picker{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewWithRand fixes the random source for deterministic tests.
func NewWithRand(rnd *rand.Rand) *Picker {
	return &Picker{rnd: rnd}
}

// Pick draws up to max questions (MaxQuestions if max <= 0) from the class
// list per the round's difficulty quota. An empty input yields an empty set;
// the caller decides whether that is an error.
func (p *Picker) Pick(questions []domain.Question, round string, max int) []domain.Question {
	if max <= 0 {
		max = MaxQuestions
	}
	if len(questions) == 0 {
		return nil
	}

	shuffled := make([]domain.Question, len(questions))
	copy(shuffled, questions)
	p.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	var easy, medium, hard []int
	for i, q := range shuffled {
		switch q.EffectiveDifficulty() {
		case domain.DifficultyEasy:
			easy = append(easy, i)
		case domain.DifficultyHard:
			hard = append(hard, i)
		default:
			medium = append(medium, i)
		}
	}
	pools := map[domain.Difficulty][]int{
		domain.DifficultyEasy:   easy,
		domain.DifficultyMedium: medium,
		domain.DifficultyHard:   hard,
	}
	// Combined pool keeps easy-first order as the backfill source.
	combined := make([]int, 0, len(shuffled))
	combined = append(combined, easy...)
	combined = append(combined, medium...)
	combined = append(combined, hard...)

	used := make(map[int]bool, max)
	var picked []int
	for _, q := range quotasFor(round) {
		picked = append(picked, draw(pools[q.difficulty], combined, q.count, used)...)
	}

	if len(picked) > max {
		picked = picked[:max]
	}
	result := make([]domain.Question, len(picked))
	for i, idx := range picked {
		result[i] = shuffled[idx]
	}
	return result
}

func quotasFor(round string) []quota {
	for _, rq := range roundQuotas {
		if strings.Contains(round, rq.token) {
			return rq.quotas
		}
	}
	return defaultQuotas
}

// draw takes up to count unused questions from the primary pool, then tops
// up from the combined pool.
func draw(primary, combined []int, count int, used map[int]bool) []int {
	selected := make([]int, 0, count)
	for _, pool := range [][]int{primary, combined} {
		for _, idx := range pool {
			if len(selected) >= count {
				return selected
			}
			if used[idx] {
				continue
			}
			used[idx] = true
			selected = append(selected, idx)
		}
	}
	return selected
}
