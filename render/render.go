/*
Package render draws frames of an epicycle animation into raster images.

A Renderer is the consumer side of package epicycle: for every frame it draws
the chain of vectors, the circle each vector tip moves on, the axes, and the
trace of all tips seen so far. Keeping the trace is the renderer's job, so
frames themselves stay free of history.

Drawing is done with github.com/gogpu/gg. A Renderer is not safe for
concurrent use.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package render

import (
	"errors"
	"image"
	"image/color"
	"io"
	"math"
	"slices"

	"github.com/gogpu/gg"
	"github.com/npillmayer/epicycles"
	"github.com/npillmayer/epicycles/epicycle"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/colornames"
)

// tracer writes to trace with key 'epicycles'
func tracer() tracing.Trace {
	return tracing.Select("epicycles")
}

// Options configure a Renderer. Zero values select defaults.
type Options struct {
	Width, Height int     // image size in pixels, default 600 × 600
	Limit         float64 // visible area is [-Limit,Limit]², 0 = fit to content
	LineWidth     float64 // vector line width in pixels, default 1
	MarkerSize    float64 // radius of trace dots in pixels, default 1.5
	Background    color.Color
	VectorColor   color.Color
	CircleColor   color.Color
	TraceColor    color.Color
	AxisColor     color.Color
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 600
	}
	if o.Height <= 0 {
		o.Height = 600
	}
	if o.LineWidth <= 0 {
		o.LineWidth = 1
	}
	if o.MarkerSize <= 0 {
		o.MarkerSize = 1.5
	}
	if o.Background == nil {
		o.Background = colornames.White
	}
	if o.VectorColor == nil {
		o.VectorColor = colornames.Blue
	}
	if o.CircleColor == nil {
		o.CircleColor = colornames.Lightsteelblue
	}
	if o.TraceColor == nil {
		o.TraceColor = colornames.Red
	}
	if o.AxisColor == nil {
		o.AxisColor = colornames.Black
	}
	return o
}

// Renderer draws frames and accumulates the trace of frame tips.
type Renderer struct {
	opts  Options
	dc    *gg.Context
	trace []epicycles.Pair
}

// New creates a renderer.
func New(opts Options) *Renderer {
	opts = opts.withDefaults()
	return &Renderer{
		opts: opts,
		dc:   gg.NewContext(opts.Width, opts.Height),
	}
}

// Trace returns a copy of the tips of all frames drawn since creation or the
// last Reset.
func (r *Renderer) Trace() []epicycles.Pair {
	return slices.Clone(r.trace)
}

// Reset forgets the accumulated trace, e.g. when an animation restarts.
func (r *Renderer) Reset() {
	r.trace = nil
}

// Draw renders frame f on a cleared canvas, after adding its tip to the trace.
func (r *Renderer) Draw(f epicycle.Frame) error {
	r.trace = append(r.trace, f.Tip())
	limit := r.limit(f)
	m := r.viewport(limit)
	scale := math.Min(float64(r.opts.Width), float64(r.opts.Height)) / (2 * limit)
	r.dc.ClearWithColor(gg.FromColor(r.opts.Background))
	err := errors.Join(
		r.drawAxes(m, limit),
		r.drawVectors(m, scale, f),
		r.drawTrace(m),
	)
	if err != nil {
		tracer().Errorf("drawing frame at t=%g: %v", f.T, err)
	}
	return err
}

// limit returns the half-width of the visible area. Without a configured
// limit, the area fits the largest absolute coordinate of trace and chain.
func (r *Renderer) limit(f epicycle.Frame) float64 {
	if r.opts.Limit > 0 {
		return r.opts.Limit
	}
	var l float64
	for _, pts := range [][]epicycles.Pair{r.trace, f.Endpoints} {
		for _, p := range pts {
			l = math.Max(l, math.Max(math.Abs(p.X()), math.Abs(p.Y())))
		}
	}
	if epicycles.Is0(l) {
		return 1
	}
	return l * 1.1
}

// viewport maps [-limit,limit]² onto the image, y pointing upwards.
func (r *Renderer) viewport(limit float64) epicycles.AT {
	w, h := float64(r.opts.Width), float64(r.opts.Height)
	s := math.Min(w, h) / (2 * limit)
	return epicycles.Scaling(s, -s).Combine(epicycles.Translation(epicycles.P(w/2, h/2)))
}

func (r *Renderer) drawAxes(m epicycles.AT, limit float64) error {
	r.dc.SetColor(r.opts.AxisColor)
	r.dc.SetLineWidth(0.5)
	line(r.dc, m.Transform(epicycles.P(-limit, 0)), m.Transform(epicycles.P(limit, 0)))
	line(r.dc, m.Transform(epicycles.P(0, -limit)), m.Transform(epicycles.P(0, limit)))
	return r.dc.Stroke()
}

func (r *Renderer) drawVectors(m epicycles.AT, scale float64, f epicycle.Frame) error {
	vs := f.Vectors()
	r.dc.SetColor(r.opts.CircleColor)
	r.dc.SetLineWidth(0.5)
	r.dc.SetDash(2, 2)
	for _, v := range vs {
		if rad := v.Radius() * scale; rad >= 1 {
			c := m.Transform(v.Tail)
			r.dc.DrawCircle(c.X(), c.Y(), rad)
		}
	}
	err := r.dc.Stroke()
	r.dc.ClearDash()
	r.dc.SetColor(r.opts.VectorColor)
	r.dc.SetLineWidth(r.opts.LineWidth)
	for _, v := range vs {
		line(r.dc, m.Transform(v.Tail), m.Transform(v.Head))
	}
	return errors.Join(err, r.dc.Stroke())
}

func (r *Renderer) drawTrace(m epicycles.AT) error {
	if len(r.trace) == 0 {
		return nil
	}
	r.dc.SetColor(r.opts.TraceColor)
	r.dc.SetLineWidth(r.opts.LineWidth)
	for i, p := range r.trace {
		q := m.Transform(p)
		if i == 0 {
			r.dc.MoveTo(q.X(), q.Y())
		} else {
			r.dc.LineTo(q.X(), q.Y())
		}
	}
	err := r.dc.Stroke()
	for _, p := range r.trace {
		q := m.Transform(p)
		r.dc.DrawPoint(q.X(), q.Y(), r.opts.MarkerSize)
	}
	return errors.Join(err, r.dc.Fill())
}

func line(dc *gg.Context, from, to epicycles.Pair) {
	dc.MoveTo(from.X(), from.Y())
	dc.LineTo(to.X(), to.Y())
}

// Image returns the current canvas.
func (r *Renderer) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG writes the current canvas as PNG.
func (r *Renderer) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// SavePNG writes the current canvas to a PNG file.
func (r *Renderer) SavePNG(path string) error {
	return r.dc.SavePNG(path)
}

// Close releases the drawing context.
func (r *Renderer) Close() error {
	return r.dc.Close()
}
