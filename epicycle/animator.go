package epicycle

import (
	"fmt"
	"iter"

	"github.com/npillmayer/epicycles"
	"github.com/npillmayer/epicycles/fourier"
)

// Animator sweeps a chain of epicycles over one period in a fixed number of
// steps. It is an immutable value; restarting an animation means starting
// again at step 0.
type Animator struct {
	components []fourier.Polar
	steps      int
}

// NewAnimator creates an animator for components, dividing one period into
// steps frames.
func NewAnimator(components []fourier.Polar, steps int) (Animator, error) {
	if err := Validate(components); err != nil {
		return Animator{}, err
	}
	if steps <= 0 {
		return Animator{}, fmt.Errorf("%w: number of steps must be positive, got %d",
			epicycles.ErrInvalidParameter, steps)
	}
	cs := make([]fourier.Polar, len(components))
	copy(cs, components)
	tracer().Debugf("animator with %d components, %d steps", len(cs), steps)
	return Animator{components: cs, steps: steps}, nil
}

// Steps is the number of frames per period.
func (a Animator) Steps() int {
	return a.steps
}

// TimeAt returns the time of frame step.
func (a Animator) TimeAt(step int) float64 {
	return Period * float64(step) / float64(a.steps)
}

// Frame computes frame step. Steps outside [0, Steps) are allowed and repeat
// periodically.
func (a Animator) Frame(step int) Frame {
	return chain(a.components, a.TimeAt(step))
}

// Frames iterates over the frames of one period, in order.
func (a Animator) Frames() iter.Seq2[int, Frame] {
	return func(yield func(int, Frame) bool) {
		for step := 0; step < a.steps; step++ {
			if !yield(step, a.Frame(step)) {
				return
			}
		}
	}
}

// Trace returns the tips of all frames of one period.
func (a Animator) Trace() []epicycles.Pair {
	trace := make([]epicycles.Pair, 0, a.steps)
	for _, f := range a.Frames() {
		trace = append(trace, f.Tip())
	}
	return trace
}
