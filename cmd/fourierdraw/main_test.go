package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/epicycles/fourier"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFlagsOverrideConfig(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	conf := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("points: 50\ncomponents: 10\nmethod: fft\n"), 0o644))
	opts, err := parseFlags([]string{"-config", conf, "-components", "20"})
	require.NoError(t, err)
	assert.Equal(t, 50, opts.settings.NumPoints)
	assert.Equal(t, 20, opts.settings.NumComponents)
	assert.Equal(t, fourier.MethodFFT, opts.settings.Method)
}

func TestFlagsRejectInvalid(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := parseFlags([]string{"-components", "3"})
	assert.Error(t, err)
	_, err = parseFlags([]string{"-frames", "0"})
	assert.Error(t, err)
	_, err = parseFlags([]string{"-method", "magic"})
	assert.Error(t, err)
}

func TestRunWritesFrames(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	out := t.TempDir()
	err := run([]string{"-dataset", "ellipse", "-points", "40", "-components", "6",
		"-frames", "3", "-size", "48", "-out", out, "-dump", "-trace", "Error"})
	require.NoError(t, err)
	for _, name := range []string{"frame-0000.png", "frame-0001.png", "frame-0002.png"} {
		_, err := os.Stat(filepath.Join(out, name))
		assert.NoError(t, err, name)
	}
	data, err := os.ReadFile(filepath.Join(out, "components.yaml"))
	require.NoError(t, err)
	var components []fourier.Polar
	require.NoError(t, yaml.Unmarshal(data, &components))
	assert.Len(t, components, 7)
}

func TestRunUnknownDataset(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	err := run([]string{"-dataset", "no-such-thing", "-data-dir", t.TempDir(), "-out", t.TempDir()})
	assert.Error(t, err)
}
