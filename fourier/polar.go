package fourier

import (
	"math"
	"math/cmplx"

	"github.com/npillmayer/epicycles"
)

// Polar is a Fourier coefficient in polar form. Angle is in degrees,
// within (-180, 180].
type Polar struct {
	Magnitude float64 `yaml:"magnitude" json:"magnitude"`
	Angle     float64 `yaml:"angle" json:"angle"`
}

// PolarOf converts a complex number into polar form.
// A coefficient of magnitude 0 gets angle 0.
func PolarOf(c complex128) Polar {
	r := cmplx.Abs(c)
	if r == 0 {
		return Polar{}
	}
	deg := math.Atan2(imag(c), real(c)) * epicycles.Rad2Deg
	if deg <= -180 {
		deg = 180
	}
	return Polar{Magnitude: r, Angle: deg}
}

// Cartesian converts p back into a complex number.
func (p Polar) Cartesian() complex128 {
	return p.Vector().C()
}

// Vector returns p as a 2D vector.
func (p Polar) Vector() epicycles.Pair {
	return epicycles.Polar(p.Magnitude, p.Angle)
}

// ToPolar converts a coefficient sequence into polar form, keeping the order.
func ToPolar(cs Coefficients) []Polar {
	ps := make([]Polar, len(cs))
	for i, c := range cs {
		ps[i] = PolarOf(c)
	}
	return ps
}

// FromPolar converts polar components back into a coefficient sequence.
func FromPolar(ps []Polar) Coefficients {
	cs := make(Coefficients, len(ps))
	for i, p := range ps {
		cs[i] = p.Cartesian()
	}
	return cs
}

// Evaluate sums the truncated Fourier series of cs at parameter s, where
// s = t/N for sample index t of the analyzed contour:
//
//	Σ c(f) · exp(i·2π·f·s)
//
// Evaluating at s = 0, 1/N, …, (N-1)/N approximates the analyzed contour.
func Evaluate(cs Coefficients, s float64) epicycles.Pair {
	var sum complex128
	for i, c := range cs {
		sum += c * cmplx.Exp(complex(0, 2*math.Pi*float64(Frequency(i))*s))
	}
	return epicycles.C2P(sum)
}
