/*
Package dataset provides input contours: a small set of built-in drawings and
a decoder for point lists stored as JSON or YAML.

A dataset is a list of [x, y] pairs, e.g.

	[[591.77, 329.35], [573.82, 302.82], …]

or, in YAML, optionally wrapped in a mapping with key "points":

	points:
	  - [591.77, 329.35]
	  - [573.82, 302.82]

Coordinates may be given as numbers or numeric strings.

Nothing is loaded when the package is initialized; clients call Builtin,
Decode or Loader.Load explicitly.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package dataset

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/npillmayer/epicycles"
	"github.com/npillmayer/epicycles/contour"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'epicycles'
func tracer() tracing.Trace {
	return tracing.Select("epicycles")
}

var (
	// ErrNotFound indicates that no dataset of a given name exists.
	ErrNotFound = errors.New("dataset not found")
	// ErrMalformed indicates that a dataset is not a list of at least 2
	// numeric [x, y] pairs.
	ErrMalformed = errors.New("dataset is not correctly formatted")
)

//go:embed data/*.json
var builtins embed.FS

// Extensions are the file extensions Loader looks for, in order.
var Extensions = []string{".json", ".yaml", ".yml"}

// Names returns the names of the built-in datasets, sorted.
func Names() []string {
	entries, err := fs.ReadDir(builtins, "data")
	if err != nil { // data/ is embedded at compile time
		panic(err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// Builtin returns the built-in dataset name ("rabbit", "ellipse" or "line").
func Builtin(name string) (contour.Contour, error) {
	data, err := builtins.ReadFile(path.Join("data", name+".json"))
	if err != nil {
		return nil, fmt.Errorf("%w: no built-in dataset %q", ErrNotFound, name)
	}
	c, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("built-in dataset %q: %w", name, err)
	}
	return c, nil
}

// Decode reads a dataset from r.
func Decode(r io.Reader) (contour.Contour, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return decode(data)
}

func decode(data []byte) (contour.Contour, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if m, ok := doc.(map[string]interface{}); ok {
		doc = m["points"]
	}
	entries, ok := doc.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: expected a list of points", ErrMalformed)
	}
	if len(entries) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, have %d", ErrMalformed, len(entries))
	}
	c := make(contour.Contour, len(entries))
	for i, entry := range entries {
		pair, ok := entry.([]interface{})
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("%w: entry %d is not an [x, y] pair", ErrMalformed, i)
		}
		x, err := cast.ToFloat64E(pair[0])
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrMalformed, i, err)
		}
		y, err := cast.ToFloat64E(pair[1])
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrMalformed, i, err)
		}
		c[i] = epicycles.P(x, y)
		if !c[i].IsFinite() {
			return nil, fmt.Errorf("%w: entry %d is not finite", ErrMalformed, i)
		}
	}
	tracer().Debugf("decoded dataset of %d points", len(c))
	return c, nil
}

// Loader locates datasets by name: built-in datasets first, then files
// <Dir>/<name>.json, .yaml or .yml.
type Loader struct {
	Dir string // directory of dataset files, "." if empty
}

// Load returns the dataset called name.
func (l Loader) Load(name string) (contour.Contour, error) {
	if c, err := Builtin(name); err == nil {
		return c, nil
	}
	dir := l.Dir
	if dir == "" {
		dir = "."
	}
	candidates := []string{filepath.Join(dir, name)}
	if filepath.Ext(name) == "" {
		candidates = candidates[:0]
		for _, ext := range Extensions {
			candidates = append(candidates, filepath.Join(dir, name+ext))
		}
	}
	for _, file := range candidates {
		c, err := readFile(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return c, err
	}
	tracer().Errorf("no dataset file %q found in %s", name, dir)
	return nil, fmt.Errorf("%w: no dataset %q in %s", ErrNotFound, name, dir)
}

func readFile(file string) (contour.Contour, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return c, nil
}
