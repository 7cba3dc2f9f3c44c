package problemgen

import "context"

// Generator produces math problems.
type Generator interface {
	// Generate produces one problem at the given difficulty. Failures are
	// *GenerationError values, ErrInFlight, or an invalid difficulty error.
	Generate(ctx context.Context, difficulty Difficulty) (*MathProblem, error)
}
