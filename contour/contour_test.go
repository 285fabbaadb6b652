package contour

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/epicycles"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func circle(n int) Contour {
	c := Null()
	for i := 0; i < n; i++ {
		phi := 2 * math.Pi * float64(i) / float64(n)
		c = c.Knot(epicycles.P(math.Cos(phi), math.Sin(phi)))
	}
	return c
}

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := Null().Knot(epicycles.P(0, 0)).Knot(epicycles.P(1, 3)).Knot(epicycles.P(3, 0))
	tracer().Infof("c = %s", AsString(c))
	if c.N() != 3 {
		t.Fail()
	}
	assert.Equal(t, "(0,0) -- (1,3) -- (3,0) -- cycle", AsString(c))
}

func TestBuilderKeepsBase(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	base := make(Contour, 0, 8).Knot(epicycles.P(0, 0))
	a := base.Knot(epicycles.P(1, 1))
	b := base.Knot(epicycles.P(2, 2))
	assert.Equal(t, 1, base.N())
	assert.Equal(t, epicycles.P(1, 1), a[1])
	assert.Equal(t, epicycles.P(2, 2), b[1])
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(epicycles.P(0, 5), epicycles.P(4, 1))
	tracer().Infof("box = %s", AsString(box))
	if box.N() != 4 {
		t.Fail()
	}
	ll, ur := box.BoundingBox()
	assert.True(t, ll.Equal(epicycles.P(0, 1)), "ll = %v", ll)
	assert.True(t, ur.Equal(epicycles.P(4, 5)), "ur = %v", ur)
}

func TestFromXY(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := FromXY([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	xs, ys := c.XY()
	assert.Equal(t, []float64{1, 2}, xs)
	assert.Equal(t, []float64{3, 4}, ys)
	_, err = FromXY([]float64{1}, nil)
	assert.True(t, errors.Is(err, epicycles.ErrInvalidParameter))
}

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.NoError(t, Box(epicycles.P(0, 0), epicycles.P(1, 1)).Validate())
	for name, c := range map[string]Contour{
		"empty":      Null(),
		"single":     Null().Knot(epicycles.P(1, 1)),
		"coincident": Null().Knot(epicycles.P(0, 0)).Knot(epicycles.P(1, 1)).Knot(epicycles.P(1, 1)),
		"nan":        Null().Knot(epicycles.P(0, 0)).Knot(epicycles.P(math.NaN(), 1)),
	} {
		err := c.Validate()
		assert.True(t, errors.Is(err, epicycles.ErrDegenerateContour), "%s: expected degenerate contour, got %v", name, err)
	}
	tiny := Null().Knot(epicycles.P(0, 0)).Knot(epicycles.P(1e-9, 0)).Knot(epicycles.P(1e-9, 1e-9))
	assert.NoError(t, tiny.Validate())
}

func TestArcLengths(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := Null().Knot(epicycles.P(0, 0)).Knot(epicycles.P(3, 4)).Knot(epicycles.P(3, 5))
	assert.Equal(t, []float64{0, 5, 6}, ArcLengths(c))
	assert.Nil(t, ArcLengths(Null()))
}
