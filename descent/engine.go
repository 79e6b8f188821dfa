package descent

import (
	"github.com/katalvlaran/gradix/core"
	"github.com/katalvlaran/gradix/entropy"
	"github.com/katalvlaran/gradix/gradient"
)

// Engine holds the per-instance resources of the search: the reusable
// gradient scratch and the random source. Construct with New, release
// with Close. Not safe for concurrent use.
type Engine struct {
	opts   Options
	rng    *entropy.Source
	grad   gradient.Vector // reusable scratch; grown on demand, never shrunk
	closed bool
}

// New builds an Engine from the given options.
//
// Returns an error if the platform entropy source cannot be opened.
func New(opts ...Option) (*Engine, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	rng, err := entropy.NewSource(cfg.ReseedInterval)
	if err != nil {
		return nil, err
	}

	return &Engine{
		opts: cfg,
		rng:  rng,
		grad: make(gradient.Vector, 0, initialGradientCap),
	}, nil
}

// Close releases the engine's random source and scratch buffer.
// Subsequent optimization calls return ErrClosed. Closing twice
// returns ErrClosed on the second call.
func (e *Engine) Close() error {
	if e == nil || e.closed {
		return ErrClosed
	}
	e.closed = true
	e.grad = nil

	return e.rng.Close()
}

// check validates an entry-point call against the lifecycle and input
// contracts shared by all four operations.
func (e *Engine) check(f core.Objective, x core.Vector) error {
	if e == nil || e.closed {
		return ErrClosed
	}
	if f == nil {
		return core.ErrNilObjective
	}
	if len(x) == 0 {
		return core.ErrEmptyVector
	}

	return nil
}

// buildGradient estimates the gradient of f at x into the engine
// scratch. Costs exactly 2·len(x) evaluations.
func (e *Engine) buildGradient(f core.Objective, x core.Vector, f0 int64) gradient.Vector {
	e.grad = gradient.Build(f, x, f0, e.grad)

	return e.grad
}

// perturb flips one random bit in the low byte of one random
// coordinate of x.
func (e *Engine) perturb(x core.Vector) {
	i := e.rng.Intn(len(x))
	bit := uint8(1) << uint(e.rng.Intn(8))
	x[i] = core.XorByte(x[i], bit)
}
