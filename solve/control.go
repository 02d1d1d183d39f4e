package solve

// Defaults for iteration control. These constants are the single source of
// truth for zero-configuration behavior.
const (
	// DefaultTolerance is the residual-norm convergence threshold.
	DefaultTolerance = 1e-10

	// DefaultMaxIterations bounds a single Learn call. Large on purpose:
	// callers who care about budgets set their own.
	DefaultMaxIterations = 1_000_000
)

// State is the lifecycle position of a solver's most recent run.
type State uint8

const (
	// StateNotStarted — Learn has not been called yet.
	StateNotStarted State = iota
	// StateIterating — a Learn call is in progress.
	StateIterating
	// StateConverged — the residual norm fell to the tolerance or below.
	StateConverged
	// StateMaxIterations — the iteration budget ran out first.
	StateMaxIterations
	// StateStopped — a listener requested an early stop, or a step failed.
	StateStopped
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "NotStarted"
	case StateIterating:
		return "Iterating"
	case StateConverged:
		return "Converged"
	case StateMaxIterations:
		return "MaxIterationsReached"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Listener observes the iteration lifecycle. All callbacks run synchronously
// on the Learn goroutine; a listener wanting to end a run early calls the
// solver's RequestStop, which the loop polls once per completed step.
type Listener interface {
	// AlgorithmStarted fires once per Learn call, before any step.
	AlgorithmStarted(dim int)
	// StepStarted fires before each iteration; iterations count from 1.
	StepStarted(iteration int)
	// StepFinished fires after each iteration with the residual norm of
	// the updated iterate.
	StepFinished(iteration int, residualNorm float64)
	// AlgorithmFinished fires once per Learn call with the terminal state
	// and the number of iterations actually run.
	AlgorithmFinished(final State, iterations int)
}

// Result is the input-output pair produced by a Learn call. Both slices are
// copies owned by the caller.
type Result struct {
	// Input is the initial guess the run started from.
	Input []float64
	// Output is the final iterate.
	Output []float64
}

// Control is the iteration state machine shared by all solvers. Solvers
// embed it by value, so its configuration and inspection methods promote
// onto every solver type.
//
// A Control is not safe for concurrent use; RequestStop is intended to be
// called from a listener callback, which already runs on the Learn
// goroutine.
type Control struct {
	tolerance     float64
	maxIterations int

	iteration   int
	state       State
	resultValid bool
	stop        bool

	listeners []Listener
}

func newControl() Control {
	return Control{
		tolerance:     DefaultTolerance,
		maxIterations: DefaultMaxIterations,
		state:         StateNotStarted,
	}
}

// SetTolerance replaces the convergence threshold.
// Returns ErrNegativeTolerance (previous value retained) when tol < 0.
func (c *Control) SetTolerance(tol float64) error {
	if tol < 0 {
		return ErrNegativeTolerance
	}
	c.tolerance = tol

	return nil
}

// Tolerance returns the configured convergence threshold.
func (c *Control) Tolerance() float64 { return c.tolerance }

// SetMaxIterations replaces the iteration budget.
// Returns ErrNonPositiveMaxIterations (previous value retained) when n ≤ 0.
func (c *Control) SetMaxIterations(n int) error {
	if n <= 0 {
		return ErrNonPositiveMaxIterations
	}
	c.maxIterations = n

	return nil
}

// MaxIterations returns the configured iteration budget.
func (c *Control) MaxIterations() int { return c.maxIterations }

// Iteration reports how many iterations the most recent run completed.
func (c *Control) Iteration() int { return c.iteration }

// State reports the lifecycle state of the most recent run.
func (c *Control) State() State { return c.state }

// ResultValid reports whether the most recent run converged, as opposed to
// exhausting its budget or being stopped while still iterating.
func (c *Control) ResultValid() bool { return c.resultValid }

// AddListener registers a lifecycle listener. Listeners fire in
// registration order.
func (c *Control) AddListener(l Listener) {
	if l == nil {
		return
	}
	c.listeners = append(c.listeners, l)
}

// RemoveListener unregisters the first listener equal to l. Listeners are
// matched with ==, so they must be of a comparable dynamic type; pointer
// listeners (the usual case) always are.
func (c *Control) RemoveListener(l Listener) {
	for i, have := range c.listeners {
		if have == l {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)

			return
		}
	}
}

// RequestStop asks the running solver to terminate after the current step.
func (c *Control) RequestStop() { c.stop = true }

// run drives the shared loop. step performs one solver-specific update and
// reports the residual norm of the updated iterate; initialResidual is the
// norm before any step, so an already-satisfied guess converges with zero
// iterations. On a step error the run stops with StateStopped and the error
// is returned unchanged.
func (c *Control) run(dim int, initialResidual float64, step func(iteration int) (float64, error)) error {
	c.iteration = 0
	c.state = StateIterating
	c.resultValid = false
	c.stop = false

	for _, l := range c.listeners {
		l.AlgorithmStarted(dim)
	}

	if initialResidual <= c.tolerance {
		c.state = StateConverged
		c.resultValid = true
		c.finish()

		return nil
	}

	for {
		it := c.iteration + 1
		for _, l := range c.listeners {
			l.StepStarted(it)
		}

		res, err := step(it)
		if err != nil {
			c.state = StateStopped
			c.finish()

			return err
		}
		c.iteration = it
		for _, l := range c.listeners {
			l.StepFinished(it, res)
		}

		switch {
		case res <= c.tolerance:
			c.state = StateConverged
			c.resultValid = true
		case c.stop:
			c.state = StateStopped
		case c.iteration >= c.maxIterations:
			c.state = StateMaxIterations
		default:
			continue
		}
		c.finish()

		return nil
	}
}

func (c *Control) finish() {
	for _, l := range c.listeners {
		l.AlgorithmFinished(c.state, c.iteration)
	}
}
