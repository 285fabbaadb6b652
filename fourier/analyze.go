package fourier

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
	"sync"

	"github.com/npillmayer/epicycles"
	"github.com/npillmayer/epicycles/contour"
	gofourier "gonum.org/v1/gonum/dsp/fourier"
)

// Coefficients is a sequence of Fourier coefficients in the order described
// by Frequency.
type Coefficients []complex128

// Frequencies lists the frequency of every coefficient of cs.
func (cs Coefficients) Frequencies() []int {
	fs := make([]int, len(cs))
	for i := range cs {
		fs[i] = Frequency(i)
	}
	return fs
}

// At returns the coefficient for frequency f, or 0 if cs does not contain f.
func (cs Coefficients) At(f int) complex128 {
	if i := Index(f); i < len(cs) {
		return cs[i]
	}
	return 0
}

// Analyzer computes numComponents rotating components plus the constant term
// of a contour. numComponents has to be even and at least 2.
type Analyzer interface {
	Analyze(c contour.Contour, numComponents int) (Coefficients, error)
}

// Analysis methods known to NewAnalyzer.
const (
	MethodDirect   = "direct"
	MethodParallel = "parallel"
	MethodFFT      = "fft"
)

// NewAnalyzer returns an analyzer for a method name: "direct", "parallel"
// or "fft". An empty name selects "direct".
func NewAnalyzer(method string) (Analyzer, error) {
	switch strings.ToLower(method) {
	case "", MethodDirect:
		return Direct{}, nil
	case MethodParallel:
		return Direct{Workers: 4}, nil
	case MethodFFT:
		return FFT{}, nil
	}
	return nil, fmt.Errorf("%w: unknown analysis method %q", epicycles.ErrInvalidParameter, method)
}

// Analyze computes the coefficients of c with the direct summation method.
//
// The result holds numComponents+1 coefficients,
//
//	[c(0), c(1), c(-1), c(2), c(-2), …, c(M), c(-M)]   with M = numComponents/2.
//
// Analyze fails with epicycles.ErrInvalidParameter if numComponents is odd
// or less than 2, and with epicycles.ErrDegenerateContour for an empty contour.
func Analyze(c contour.Contour, numComponents int) (Coefficients, error) {
	return Direct{}.Analyze(c, numComponents)
}

func checkParameters(c contour.Contour, numComponents int) error {
	if numComponents < 2 || numComponents%2 != 0 {
		tracer().Errorf("number of components must be even, is %d", numComponents)
		return fmt.Errorf("%w: number of components must be even and ≥ 2, got %d",
			epicycles.ErrInvalidParameter, numComponents)
	}
	if len(c) == 0 {
		return fmt.Errorf("%w: cannot analyze empty contour", epicycles.ErrDegenerateContour)
	}
	return nil
}

// Coefficient computes the discrete Fourier series coefficient of c for
// frequency f. c must not be empty.
func Coefficient(c contour.Contour, f int) complex128 {
	n := float64(len(c))
	var sum complex128
	for t, p := range c {
		sum += p.C() * cmplx.Exp(complex(0, -2*math.Pi*float64(f)*float64(t)/n))
	}
	return sum / complex(n, 0)
}

// --- Direct summation ------------------------------------------------------

// Direct computes every coefficient by direct summation, O(N·K) for N points
// and K components. With Workers > 1, frequencies are distributed over that
// many goroutines; the result is identical to the sequential computation.
type Direct struct {
	Workers int
}

// Analyze is part of interface Analyzer.
func (d Direct) Analyze(c contour.Contour, numComponents int) (Coefficients, error) {
	if err := checkParameters(c, numComponents); err != nil {
		return nil, err
	}
	cs := make(Coefficients, Count(numComponents))
	tracer().Debugf("direct analysis of %d points, %d coefficients, %d workers",
		len(c), len(cs), d.Workers)
	if d.Workers <= 1 {
		for i := range cs {
			cs[i] = Coefficient(c, Frequency(i))
		}
		return cs, nil
	}
	indices := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < d.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				cs[i] = Coefficient(c, Frequency(i))
			}
		}()
	}
	for i := range cs {
		indices <- i
	}
	close(indices)
	wg.Wait()
	return cs, nil
}

// --- FFT -------------------------------------------------------------------

// FFT computes the spectrum of a contour with a fast Fourier transform and
// re-orders it. Frequencies at or beyond the number of points alias to
// f mod N, exactly as in direct summation.
type FFT struct{}

// Analyze is part of interface Analyzer.
func (FFT) Analyze(c contour.Contour, numComponents int) (Coefficients, error) {
	if err := checkParameters(c, numComponents); err != nil {
		return nil, err
	}
	n := len(c)
	seq := make([]complex128, n)
	for i, p := range c {
		seq[i] = p.C()
	}
	spectrum := gofourier.NewCmplxFFT(n).Coefficients(nil, seq)
	cs := make(Coefficients, Count(numComponents))
	tracer().Debugf("FFT analysis of %d points, %d coefficients", n, len(cs))
	scale := complex(float64(n), 0)
	for i := range cs {
		cs[i] = spectrum[spectrumIndex(Frequency(i), n)] / scale
	}
	return cs, nil
}

// spectrumIndex maps frequency f onto its position in an unshifted spectrum
// of length n.
func spectrumIndex(f, n int) int {
	return ((f % n) + n) % n
}
