package problemgen

import (
	"fmt"
	"strings"
)

// MathProblem is one generated exercise. Field names match the JSON the
// model is asked to produce.
type MathProblem struct {
	// Question is the problem statement in Vietnamese.
	Question string `json:"question"`

	// Answer is the numeric solution.
	Answer float64 `json:"answer"`

	// Explanation is a short worked solution in Vietnamese.
	Explanation string `json:"explanation"`

	// Hint is a small nudge shown on request.
	Hint string `json:"hint"`
}

// Difficulty selects how hard the generated problem should be.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists every difficulty from easiest to hardest.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

var difficultyLabels = map[Difficulty]string{
	DifficultyEasy:   "Dễ",
	DifficultyMedium: "Trung bình",
	DifficultyHard:   "Khó",
}

// Label returns the Vietnamese name shown to learners and sent in the prompt.
func (d Difficulty) Label() string {
	if l, ok := difficultyLabels[d]; ok {
		return l
	}
	return string(d)
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	_, ok := difficultyLabels[d]
	return ok
}

func (d Difficulty) String() string { return string(d) }

// ParseDifficulty accepts the English identifier or the Vietnamese label,
// case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.TrimSpace(s)
	for _, d := range Difficulties {
		if strings.EqualFold(s, string(d)) || strings.EqualFold(s, d.Label()) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
}
