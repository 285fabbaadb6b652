package epicycle

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/epicycles"
	"github.com/npillmayer/epicycles/contour"
	"github.com/npillmayer/epicycles/fourier"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitCircleComponents(t *testing.T) []fourier.Polar {
	t.Helper()
	c := contour.Null()
	for i := 0; i < 100; i++ {
		phi := 2 * math.Pi * float64(i) / 100
		c = c.Knot(epicycles.P(math.Cos(phi), math.Sin(phi)))
	}
	r, err := contour.Resample(c, 100)
	require.NoError(t, err)
	n, err := contour.NormalizeUnit(r)
	require.NoError(t, err)
	cs, err := fourier.Analyze(n, 2)
	require.NoError(t, err)
	return fourier.ToPolar(cs)
}

var someComponents = []fourier.Polar{
	{Magnitude: 0.3, Angle: 10},
	{Magnitude: 1.0, Angle: 45},
	{Magnitude: 0.5, Angle: -120},
	{Magnitude: 0.25, Angle: 180},
	{Magnitude: 0.1, Angle: 0},
}

func TestOffsets(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, 0.0, Offset(0, 77))
	assert.Equal(t, 30.0, Offset(1, 30))
	assert.Equal(t, -30.0, Offset(2, 30))
	assert.Equal(t, 60.0, Offset(3, 30))
	assert.Equal(t, -60.0, Offset(4, 30))
}

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := NewFrame(nil, 0)
	assert.True(t, errors.Is(err, epicycles.ErrInvalidParameter), "got %v", err)
	_, err = NewFrame(someComponents[:2], 0)
	assert.True(t, errors.Is(err, epicycles.ErrInvalidParameter), "got %v", err)
	_, err = NewFrame(someComponents[:1], 0)
	assert.NoError(t, err)
	_, err = NewFrame(someComponents, 0)
	assert.NoError(t, err)
}

func TestFrameAtZero(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f, err := NewFrame(someComponents, 0)
	require.NoError(t, err)
	require.Len(t, f.Endpoints, len(someComponents))
	pos := epicycles.Origin
	for i, c := range someComponents {
		pos += epicycles.Polar(c.Magnitude, c.Angle)
		assert.True(t, f.Endpoints[i].Equal(pos), "endpoint %d: %v ≠ %v", i, f.Endpoints[i], pos)
	}
	assert.Equal(t, f.Endpoints[len(f.Endpoints)-1], f.Tip())
}

func TestFrameDeterministic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f1, err := NewFrame(someComponents, 123.4)
	require.NoError(t, err)
	f2, err := NewFrame(someComponents, 123.4)
	require.NoError(t, err)
	assert.Equal(t, f1, f2)
}

func TestFramePeriodic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, tm := range []float64{0, 17, 90, 271.5} {
		f1, err := NewFrame(someComponents, tm)
		require.NoError(t, err)
		f2, err := NewFrame(someComponents, tm+Period)
		require.NoError(t, err)
		for i := range f1.Endpoints {
			assert.InDelta(t, f1.Endpoints[i].X(), f2.Endpoints[i].X(), 1e-9)
			assert.InDelta(t, f1.Endpoints[i].Y(), f2.Endpoints[i].Y(), 1e-9)
		}
	}
}

func TestDCDoesNotRotate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, tm := range []float64{0, 33, 200} {
		f, err := NewFrame(someComponents, tm)
		require.NoError(t, err)
		assert.True(t, f.Endpoints[0].Equal(epicycles.Polar(0.3, 10)))
	}
}

func TestUnitCircleScenario(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ps := unitCircleComponents(t)
	require.Len(t, ps, 3)
	assert.InDelta(t, 0, ps[0].Magnitude, 1e-9)
	assert.InDelta(t, 1, ps[1].Magnitude+ps[2].Magnitude, 1e-9)
	for _, tm := range []float64{0, 45, 100, 359} {
		assert.Equal(t, Offset(1, tm), -Offset(2, tm))
		f, err := NewFrame(ps, tm)
		require.NoError(t, err)
		assert.InDelta(t, 1, f.Tip().Abs(), 1e-9, "tip at t=%g is %v", tm, f.Tip())
		want := epicycles.Polar(1, tm)
		assert.True(t, f.Tip().Equal(want), "tip at t=%g is %v, want %v", tm, f.Tip(), want)
	}
}

func TestRotated(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r, err := Rotated(someComponents, 90)
	require.NoError(t, err)
	want := []float64{10, 135, 150, 0, 180}
	for i := range want {
		assert.InDelta(t, want[i], r[i].Angle, 1e-9, "angle %d", i)
		assert.Equal(t, someComponents[i].Magnitude, r[i].Magnitude)
	}
	assert.InDelta(t, 180, reduceAngle(-180), 1e-12)
	assert.InDelta(t, -90, reduceAngle(270), 1e-12)
}

func TestVectors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f, err := NewFrame(someComponents, 42)
	require.NoError(t, err)
	vs := f.Vectors()
	require.Len(t, vs, len(someComponents))
	assert.True(t, vs[0].Tail.IsOrigin())
	for i, v := range vs {
		assert.InDelta(t, someComponents[i].Magnitude, v.Radius(), 1e-12)
		if i > 0 {
			assert.Equal(t, vs[i-1].Head, v.Tail)
		}
	}
}
