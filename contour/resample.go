package contour

import (
	"fmt"
	"sort"

	"github.com/npillmayer/epicycles"
	"gonum.org/v1/gonum/floats"
)

// ArcLengths returns the cumulative arc length at every point of c, starting
// with 0 for the first point. The last entry is the total length of the open
// polyline.
func ArcLengths(c Contour) []float64 {
	if len(c) == 0 {
		return nil
	}
	seglen := make([]float64, len(c))
	for i := 1; i < len(c); i++ {
		seglen[i] = (c[i] - c[i-1]).Abs()
	}
	return floats.CumSum(make([]float64, len(c)), seglen)
}

// Resample re-parametrizes c by arc length. The result has exactly numPoints
// points, uniformly spaced in cumulative distance between the first and the
// last point of c. Positions are linearly interpolated between the original
// points.
//
// The first result point equals the first point of c; the last result point
// equals the last point of c up to rounding.
//
// Resample fails with epicycles.ErrInvalidParameter if numPoints is not
// positive, and with epicycles.ErrDegenerateContour if c violates the
// contour invariants (see Validate).
func Resample(c Contour, numPoints int) (Contour, error) {
	if numPoints <= 0 {
		tracer().Errorf("cannot resample to %d points", numPoints)
		return nil, fmt.Errorf("%w: number of points must be positive, got %d",
			epicycles.ErrInvalidParameter, numPoints)
	}
	if err := c.Validate(); err != nil {
		tracer().Errorf("cannot resample contour: %v", err)
		return nil, err
	}
	cumulative := ArcLengths(c)
	total := cumulative[len(cumulative)-1]
	tracer().Debugf("resample %d points of arc length %g to %d points", len(c), total, numPoints)
	if numPoints == 1 {
		return Contour{c[0]}, nil
	}
	samples := floats.Span(make([]float64, numPoints), 0, total)
	resampled := make(Contour, numPoints)
	for i, s := range samples {
		resampled[i] = interpolate(cumulative, c, s)
	}
	return resampled, nil
}

// interpolate linearly interpolates a point at arc length s. Outside the
// range of knots the nearest segment is extended.
// knots must be strictly increasing and have at least 2 entries.
func interpolate(knots []float64, c Contour, s float64) epicycles.Pair {
	hi := sort.SearchFloat64s(knots, s)
	if hi < 1 {
		hi = 1
	} else if hi > len(knots)-1 {
		hi = len(knots) - 1
	}
	lo := hi - 1
	frac := (s - knots[lo]) / (knots[hi] - knots[lo])
	return c[lo] + (c[hi]-c[lo])*epicycles.Pair(complex(frac, 0))
}
