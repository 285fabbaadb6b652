package contour

import (
	"fmt"

	"github.com/npillmayer/epicycles"
)

// Default target range of NormalizeUnit.
const (
	DefaultMin = -1.0
	DefaultMax = 1.0
)

// NormalizeUnit maps c into [-1,1] × [-1,1]. See Normalize.
func NormalizeUnit(c Contour) (Contour, error) {
	return Normalize(c, DefaultMin, DefaultMax)
}

// Normalize maps the x-values and the y-values of c independently into
// [minV, maxV], using the axis extents of the bounding box of c:
//
//	v' = (maxV - minV) * (v - vmin) / (vmax - vmin) + minV
//
// The aspect ratio of the contour is not preserved.
//
// Normalize fails with epicycles.ErrDegenerateContour if c is empty or one of
// the axes has no extent, and with epicycles.ErrInvalidParameter if
// minV ≥ maxV.
func Normalize(c Contour, minV, maxV float64) (Contour, error) {
	if !(minV < maxV) {
		return nil, fmt.Errorf("%w: normalization range [%g,%g] is empty",
			epicycles.ErrInvalidParameter, minV, maxV)
	}
	if len(c) == 0 {
		return nil, fmt.Errorf("%w: cannot normalize empty contour", epicycles.ErrDegenerateContour)
	}
	ll, ur := c.BoundingBox()
	dx, dy := ur.X()-ll.X(), ur.Y()-ll.Y()
	if dx == 0 || dy == 0 {
		tracer().Errorf("contour has extent %g × %g", dx, dy)
		return nil, fmt.Errorf("%w: axis without extent (%g × %g)", epicycles.ErrDegenerateContour, dx, dy)
	}
	scale := maxV - minV
	normalized := make(Contour, len(c))
	for i, p := range c {
		normalized[i] = epicycles.P(
			scale*(p.X()-ll.X())/dx+minV,
			scale*(p.Y()-ll.Y())/dy+minV,
		)
	}
	return normalized, nil
}
