// Command fourierdraw animates a contour as a chain of epicycles and writes
// the frames of one period as PNG images.
//
//	fourierdraw -dataset rabbit -frames 200 -out /tmp/rabbit
//
// Datasets are either built in (see -list) or JSON/YAML files found in
// -data-dir. Pipeline settings may be read from a YAML file given by -config;
// flags set on the command line override values from that file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/epicycles/dataset"
	"github.com/npillmayer/epicycles/drawing"
	"github.com/npillmayer/epicycles/epicycle"
	"github.com/npillmayer/epicycles/fourier"
	"github.com/npillmayer/epicycles/render"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"gopkg.in/yaml.v3"
)

type options struct {
	dataset  string
	dataDir  string
	config   string
	frames   int
	size     int
	out      string
	trace    string
	dump     bool
	list     bool
	settings drawing.Settings
}

func main() {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "fourierdraw: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	var opts options
	var points, components int
	var method string
	fs := flag.NewFlagSet("fourierdraw", flag.ContinueOnError)
	fs.StringVar(&opts.dataset, "dataset", "rabbit", "name of built-in dataset or data file")
	fs.StringVar(&opts.dataDir, "data-dir", ".", "directory to search for data files")
	fs.StringVar(&opts.config, "config", "", "YAML file with pipeline settings")
	fs.IntVar(&points, "points", 100, "number of resampled contour points")
	fs.IntVar(&components, "components", 100, "number of rotating components (even)")
	fs.StringVar(&method, "method", fourier.MethodDirect, "analyzer: direct, parallel or fft")
	fs.IntVar(&opts.frames, "frames", 100, "number of frames per period")
	fs.IntVar(&opts.size, "size", 600, "width and height of frames in pixels")
	fs.StringVar(&opts.out, "out", "frames", "output directory")
	fs.StringVar(&opts.trace, "trace", "Info", "trace level: Debug, Info or Error")
	fs.BoolVar(&opts.dump, "dump", false, "write components as components.yaml to the output directory")
	fs.BoolVar(&opts.list, "list", false, "list built-in datasets and exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.settings = drawing.DefaultSettings()
	if opts.config != "" {
		s, err := drawing.LoadSettings(opts.config)
		if err != nil {
			return opts, err
		}
		opts.settings = s
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "points":
			opts.settings.NumPoints = points
		case "components":
			opts.settings.NumComponents = components
		case "method":
			opts.settings.Method = method
		}
	})
	if opts.frames <= 0 || opts.size <= 0 {
		return opts, errors.New("frames and size must be positive")
	}
	return opts, opts.settings.Validate()
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	tracer := tracing.Select("epicycles")
	tracer.SetTraceLevel(tracing.TraceLevelFromString(opts.trace))
	if opts.list {
		fmt.Println(strings.Join(dataset.Names(), "\n"))
		return nil
	}
	tracer.Infof("dataset %q with %s", opts.dataset, opts.settings)
	cache := drawing.NewCache(dataset.Loader{Dir: opts.dataDir}, 0)
	components, err := cache.Components(opts.dataset, opts.settings)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return err
	}
	if opts.dump {
		if err := dump(filepath.Join(opts.out, "components.yaml"), components); err != nil {
			return err
		}
	}
	animator, err := epicycle.NewAnimator(components, opts.frames)
	if err != nil {
		return err
	}
	r := render.New(render.Options{Width: opts.size, Height: opts.size})
	defer r.Close()
	for step, frame := range animator.Frames() {
		if err := r.Draw(frame); err != nil {
			return err
		}
		name := filepath.Join(opts.out, fmt.Sprintf("frame-%04d.png", step))
		if err := r.SavePNG(name); err != nil {
			return err
		}
		tracer.Debugf("wrote %s", name)
	}
	tracer.Infof("wrote %d frames to %s", animator.Steps(), opts.out)
	return nil
}

func dump(path string, components []fourier.Polar) error {
	data, err := yaml.Marshal(components)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
