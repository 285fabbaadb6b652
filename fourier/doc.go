/*
Package fourier computes discrete Fourier series coefficients of a contour and
converts them into polar form.

The points of a contour are read as complex numbers p(t) = x + iy,
t = 0 … N-1. The coefficient for integer frequency f is

	c(f) = 1/N · Σ p(t) · exp(-i·2π·f·t/N)

# Ordering

Coefficients are not stored in ascending frequency. Index 0 holds the
constant term c(0), the centroid of the contour. It is followed by pairs
of opposite frequencies:

	index      0   1   2   3   4   5  …  2M-1  2M
	frequency  0  +1  -1  +2  -2  +3  …   +M   -M

Function Frequency maps an index to its frequency, Index maps back.
Package epicycle relies on this ordering when it rotates vectors, so every
producer of coefficients has to respect it.

A request for k rotating components (k even) yields M = k/2 pairs, i.e.
k+1 coefficients including the constant term.

# Analyzers

Direct performs the summation above for every frequency, optionally spreading
frequencies over a number of goroutines. FFT computes the full spectrum with
gonum's complex FFT and picks the requested frequencies from it. Both return
the same ordering and agree up to floating point rounding.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package fourier

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'epicycles'
func tracer() tracing.Trace {
	return tracing.Select("epicycles")
}
