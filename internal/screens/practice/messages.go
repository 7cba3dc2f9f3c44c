package practice

import (
	"time"

	"github.com/abhisek/toanvui/internal/problemgen"
)

// difficultyChosenMsg is sent when the learner picks a difficulty.
type difficultyChosenMsg struct {
	Difficulty problemgen.Difficulty
}

// problemReadyMsg carries the outcome of one generation call.
type problemReadyMsg struct {
	Problem *problemgen.MathProblem
	Err     error
}

// spinnerTickMsg animates the loading line.
type spinnerTickMsg time.Time
