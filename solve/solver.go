package solve

// vectors is the guess/target pair every solver is constructed around.
// Dimensionality is fixed at construction; SetInitialGuess may replace the
// values but never the length.
type vectors struct {
	guess  []float64
	target []float64
}

// newVectors validates and copies the construction-time pair. square
// demands len(guess) == len(target); the least-squares solver relaxes it
// because its target lives in the row space of a rectangular matrix.
func newVectors(guess, target []float64, square bool) (vectors, error) {
	if guess == nil {
		return vectors{}, ErrNilGuess
	}
	if target == nil {
		return vectors{}, ErrNilTarget
	}
	if len(guess) == 0 || len(target) == 0 {
		return vectors{}, ErrDimensionMismatch
	}
	if square && len(guess) != len(target) {
		return vectors{}, ErrDimensionMismatch
	}

	return vectors{guess: clone(guess), target: clone(target)}, nil
}

// SetInitialGuess replaces the starting iterate used by subsequent Learn
// calls. Returns ErrNilGuess for a nil vector and ErrDimensionMismatch for
// a length change; the previous guess is retained on failure.
func (v *vectors) SetInitialGuess(guess []float64) error {
	if guess == nil {
		return ErrNilGuess
	}
	if len(guess) != len(v.guess) {
		return ErrDimensionMismatch
	}
	copy(v.guess, guess)

	return nil
}

// InitialGuess returns a copy of the configured starting iterate.
func (v *vectors) InitialGuess() []float64 { return clone(v.guess) }

// Target returns a copy of the configured right-hand side.
func (v *vectors) Target() []float64 { return clone(v.target) }

func clone(s []float64) []float64 {
	return append([]float64(nil), s...)
}
