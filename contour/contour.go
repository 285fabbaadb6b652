/*
Package contour holds ordered point sequences describing a drawable path, and
the two geometric preparation steps applied before Fourier analysis:
arc-length resampling and per-axis normalization.

A Contour is implicitly closed for drawing purposes (the last point connects
to the first), but the algorithms in this package treat it as an open sampled
sequence.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package contour

import (
	"bytes"
	"fmt"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/epicycles"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'epicycles'
func tracer() tracing.Trace {
	return tracing.Select("epicycles")
}

// Contour is an ordered sequence of points.
type Contour []epicycles.Pair

// Null creates an empty contour, to be extended by Knot.
//
//	c := contour.Null().Knot(epicycles.P(0, 0)).Knot(epicycles.P(1, 3)).Knot(epicycles.P(3, 0))
func Null() Contour {
	return Contour{}
}

// Knot appends a point to a contour. Part of builder functionality.
// c is left unchanged, so several contours may be built from a common base.
func (c Contour) Knot(p epicycles.Pair) Contour {
	return append(c[:len(c):len(c)], p)
}

// FromXY creates a contour from separate coordinate slices, which must have
// equal length.
func FromXY(xs, ys []float64) (Contour, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: coordinate slices differ in length (%d ≠ %d)",
			epicycles.ErrInvalidParameter, len(xs), len(ys))
	}
	c := make(Contour, len(xs))
	for i := range xs {
		c[i] = epicycles.P(xs[i], ys[i])
	}
	return c, nil
}

// Box creates a rectangular contour from two diagonal corners,
// counter-clockwise starting at the lower left corner.
func Box(ll, ur epicycles.Pair) Contour {
	x0, x1 := min(ll.X(), ur.X()), max(ll.X(), ur.X())
	y0, y1 := min(ll.Y(), ur.Y()), max(ll.Y(), ur.Y())
	return Null().Knot(epicycles.P(x0, y0)).Knot(epicycles.P(x1, y0)).
		Knot(epicycles.P(x1, y1)).Knot(epicycles.P(x0, y1))
}

// N returns the number of points of a contour.
func (c Contour) N() int {
	return len(c)
}

// XY splits a contour into coordinate slices.
func (c Contour) XY() (xs, ys []float64) {
	xs, ys = make([]float64, len(c)), make([]float64, len(c))
	for i, p := range c {
		xs[i], ys[i] = p.X(), p.Y()
	}
	return
}

// Polyclip converts a contour into a polyclip-go contour.
func (c Contour) Polyclip() polyclip.Contour {
	pc := make(polyclip.Contour, len(c))
	for i, p := range c {
		pc[i] = polyclip.Point{X: p.X(), Y: p.Y()}
	}
	return pc
}

// BoundingBox returns the lower left and upper right corners of the smallest
// axis-aligned rectangle containing all points of c.
func (c Contour) BoundingBox() (ll, ur epicycles.Pair) {
	if len(c) == 0 {
		return epicycles.Origin, epicycles.Origin
	}
	bb := c.Polyclip().BoundingBox()
	return epicycles.P(bb.Min.X, bb.Min.Y), epicycles.P(bb.Max.X, bb.Max.Y)
}

// Validate checks the invariants of a contour: at least 2 points, finite
// coordinates, and no consecutive points which coincide exactly. Short
// segments are fine, whatever the scale of the coordinates.
// Violations are reported as wrapped epicycles.ErrDegenerateContour.
func (c Contour) Validate() error {
	n := len(c)
	if n < 2 {
		return fmt.Errorf("%w: contour needs at least 2 points, got %d", epicycles.ErrDegenerateContour, n)
	}
	for i, p := range c {
		if !p.IsFinite() {
			return fmt.Errorf("%w: non-finite coordinate at point %d", epicycles.ErrDegenerateContour, i)
		}
	}
	for i := 1; i < n; i++ {
		if c[i] == c[i-1] {
			return fmt.Errorf("%w: coincident points %d and %d", epicycles.ErrDegenerateContour, i-1, i)
		}
	}
	return nil
}

// AsString returns a contour in MetaPost-like notation, with "cycle" appended.
func AsString(c Contour) string {
	var b bytes.Buffer
	for i, p := range c {
		if i > 0 {
			b.WriteString(" -- ")
		}
		b.WriteString(p.String())
	}
	if len(c) > 0 {
		b.WriteString(" -- cycle")
	}
	return b.String()
}
