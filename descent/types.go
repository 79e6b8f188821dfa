// Package descent defines the engine configuration, functional
// options and sentinel errors for the gradix search engine.
package descent

import "errors"

const (
	// DefaultMaxEpochs bounds the outer optimization loop.
	DefaultMaxEpochs = 1000

	// DefaultMaxRandomInput is the number of plateau-escape
	// perturbations attempted before a stationary gradient ends the
	// search. The shipped value of 0 keeps the escape path dormant.
	DefaultMaxRandomInput = 0

	// DefaultMomentum is the β of the gradient-weight blend. 0 reduces
	// the blend to plain normalization.
	DefaultMomentum = 0.0

	// initialGradientCap is the starting capacity of the reusable
	// gradient scratch; it grows on demand and never shrinks.
	initialGradientCap = 10

	// refineSkipPct is descend's phase-2 threshold: coordinates with a
	// smaller weight are not refined. Ascend skips only exact zeros;
	// the asymmetry is observable and intentional.
	refineSkipPct = 0.01
)

// Sentinel errors for engine lifecycle and option validation.
var (
	// ErrClosed indicates a call on a closed (or zero-value) Engine.
	ErrClosed = errors.New("descent: engine is closed")

	// ErrBadMaxEpochs indicates MaxEpochs < 1.
	ErrBadMaxEpochs = errors.New("descent: MaxEpochs must be at least 1")

	// ErrBadMaxRandomInput indicates a negative MaxRandomInput.
	ErrBadMaxRandomInput = errors.New("descent: MaxRandomInput must be non-negative")

	// ErrBadMomentum indicates Momentum outside [0, 1).
	ErrBadMomentum = errors.New("descent: Momentum must be in [0, 1)")
)

// Options configures an Engine.
//
//	MaxEpochs      - upper bound on outer-loop epochs per call.
//	MaxRandomInput - plateau-escape perturbation attempts (0 = dormant).
//	Momentum       - β of the weight blend; 0 = plain normalization.
//	ReseedInterval - draws between RNG reseeds; 0 selects the entropy
//	                 package default (10 000).
type Options struct {
	MaxEpochs      int
	MaxRandomInput int
	Momentum       float64
	ReseedInterval uint64
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns the shipped configuration.
func DefaultOptions() Options {
	return Options{
		MaxEpochs:      DefaultMaxEpochs,
		MaxRandomInput: DefaultMaxRandomInput,
		Momentum:       DefaultMomentum,
		ReseedInterval: 0,
	}
}

// WithMaxEpochs caps the number of epochs per optimization call.
// Must be at least 1; when New applies an invalid value it panics
// with the message of ErrBadMaxEpochs (a string, not the error).
func WithMaxEpochs(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadMaxEpochs.Error())
		}
		o.MaxEpochs = n
	}
}

// WithMaxRandomInput sets how many random single-bit perturbations a
// plateau may absorb before the search gives up. When New applies a
// negative value it panics with the message of ErrBadMaxRandomInput.
func WithMaxRandomInput(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxRandomInput.Error())
		}
		o.MaxRandomInput = n
	}
}

// WithMomentum sets the β of the gradient-weight blend. Must lie in
// [0, 1); when New applies an invalid value it panics with the message
// of ErrBadMomentum.
func WithMomentum(beta float64) Option {
	return func(o *Options) {
		if beta < 0 || beta >= 1 {
			panic(ErrBadMomentum.Error())
		}
		o.Momentum = beta
	}
}

// WithReseedInterval sets the number of RNG draws between reseeds from
// the platform entropy source. 0 selects the entropy package default.
func WithReseedInterval(draws uint64) Option {
	return func(o *Options) {
		o.ReseedInterval = draws
	}
}
