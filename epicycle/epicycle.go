/*
Package epicycle turns polar Fourier components into chains of rotating
vectors.

Component i rotates at Frequency(i) (see package fourier): the constant
term stands still, the two members of pair n turn in opposite directions at
rate n. Time t is measured in degrees of the slowest rotation, so every chain
repeats after Period = 360.

Computing a frame is a pure function of the components and t; nothing is
remembered between frames. Accumulating the trace of tips is up to the
consumer (see package render).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package epicycle

import (
	"fmt"
	"math"

	"github.com/npillmayer/epicycles"
	"github.com/npillmayer/epicycles/fourier"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'epicycles'
func tracer() tracing.Trace {
	return tracing.Select("epicycles")
}

// Period is the time after which every chain of epicycles repeats, in degrees.
const Period = 360.0

// Offset returns the angle in degrees which component i has turned at time t.
func Offset(i int, t float64) float64 {
	return float64(fourier.Frequency(i)) * t
}

// Validate checks that components consist of the constant term followed by
// complete (+n,-n) pairs. A valid sequence therefore has odd length: an
// even-length sequence is rejected, as its last frequency lacks a partner.
// Violations are reported as wrapped epicycles.ErrInvalidParameter.
func Validate(components []fourier.Polar) error {
	if len(components) == 0 {
		return fmt.Errorf("%w: no epicycle components", epicycles.ErrInvalidParameter)
	}
	if (len(components)-1)%2 != 0 {
		return fmt.Errorf("%w: %d rotating components cannot be paired",
			epicycles.ErrInvalidParameter, len(components)-1)
	}
	return nil
}

// Rotated returns the components turned to time t, with angles reduced to
// (-180,180].
func Rotated(components []fourier.Polar, t float64) ([]fourier.Polar, error) {
	if err := Validate(components); err != nil {
		return nil, err
	}
	rotated := make([]fourier.Polar, len(components))
	for i, c := range components {
		rotated[i] = fourier.Polar{
			Magnitude: c.Magnitude,
			Angle:     reduceAngle(c.Angle + Offset(i, t)),
		}
	}
	return rotated, nil
}

// Reduce an angle in degrees to fit into (-180,180].
func reduceAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a > 180 {
		a -= 360
	} else if a <= -180 {
		a += 360
	}
	return a
}

// Frame is the state of a chain of epicycles at time T.
type Frame struct {
	T         float64          // time in degrees
	Endpoints []epicycles.Pair // tip of vector i, after adding vectors 0 … i
}

// NewFrame computes the chain of vectors for components at time t. Starting
// at the origin, each component is added as a vector of length Magnitude and
// direction Angle + Offset(i, t); the endpoint after each addition is recorded.
//
// NewFrame fails with epicycles.ErrInvalidParameter if components is empty or
// contains an incomplete pair (see Validate).
func NewFrame(components []fourier.Polar, t float64) (Frame, error) {
	if err := Validate(components); err != nil {
		tracer().Errorf("cannot compute frame: %v", err)
		return Frame{}, err
	}
	return chain(components, t), nil
}

func chain(components []fourier.Polar, t float64) Frame {
	f := Frame{T: t, Endpoints: make([]epicycles.Pair, len(components))}
	pos := epicycles.Origin
	for i, c := range components {
		pos += epicycles.Polar(c.Magnitude, c.Angle+Offset(i, t))
		f.Endpoints[i] = pos
	}
	return f
}

// Tip returns the endpoint of the last vector, i.e. the point of the drawing
// at time T.
func (f Frame) Tip() epicycles.Pair {
	if len(f.Endpoints) == 0 {
		return epicycles.Origin
	}
	return f.Endpoints[len(f.Endpoints)-1]
}

// Vector is one link of a chain of epicycles.
type Vector struct {
	Tail, Head epicycles.Pair
}

// Radius is the length of v, i.e. the radius of the circle its head moves on.
func (v Vector) Radius() float64 {
	return (v.Head - v.Tail).Abs()
}

// Vectors returns the links of the chain, starting at the origin.
func (f Frame) Vectors() []Vector {
	vs := make([]Vector, len(f.Endpoints))
	tail := epicycles.Origin
	for i, head := range f.Endpoints {
		vs[i] = Vector{Tail: tail, Head: head}
		tail = head
	}
	return vs
}
