/*
Package drawing connects the steps from a raw contour to epicycle components:

	raw points → resample → normalize → analyze → polar form

and memoizes the results for named datasets.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package drawing

import (
	"github.com/npillmayer/epicycles/contour"
	"github.com/npillmayer/epicycles/fourier"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'epicycles'
func tracer() tracing.Trace {
	return tracing.Select("epicycles")
}

// Prepare resamples and, if requested, normalizes a raw contour.
func Prepare(c contour.Contour, s Settings) (contour.Contour, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	prepared, err := contour.Resample(c, s.NumPoints)
	if err != nil {
		return nil, err
	}
	if s.Normalize {
		if prepared, err = contour.Normalize(prepared, s.MinV, s.MaxV); err != nil {
			return nil, err
		}
	}
	return prepared, nil
}

// Coefficients runs the pipeline up to the Fourier coefficients.
func Coefficients(c contour.Contour, s Settings) (fourier.Coefficients, error) {
	prepared, err := Prepare(c, s)
	if err != nil {
		return nil, err
	}
	analyzer, err := fourier.NewAnalyzer(s.Method)
	if err != nil {
		return nil, err
	}
	return analyzer.Analyze(prepared, s.NumComponents)
}

// Components runs the full pipeline, returning epicycle components in polar
// form, ordered as described in package fourier.
func Components(c contour.Contour, s Settings) ([]fourier.Polar, error) {
	cs, err := Coefficients(c, s)
	if err != nil {
		tracer().Errorf("pipeline failed: %v", err)
		return nil, err
	}
	tracer().Debugf("computed %d components for %d points (%s)", len(cs), len(c), s)
	return fourier.ToPolar(cs), nil
}
