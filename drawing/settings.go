package drawing

import (
	"fmt"
	"os"

	"github.com/npillmayer/epicycles"
	"github.com/npillmayer/epicycles/fourier"
	"gopkg.in/yaml.v3"
)

// Settings are the parameters of the pipeline from a raw contour to
// epicycle components.
type Settings struct {
	NumPoints     int     `yaml:"points"`     // resampled contour length
	NumComponents int     `yaml:"components"` // rotating components, even
	Normalize     bool    `yaml:"normalize"`  // map contour into [MinV,MaxV]²
	MinV          float64 `yaml:"min"`
	MaxV          float64 `yaml:"max"`
	Method        string  `yaml:"method"` // see fourier.NewAnalyzer
}

// DefaultSettings returns 100 points, 100 components, normalization to
// [-1,1] and direct summation.
func DefaultSettings() Settings {
	return Settings{
		NumPoints:     100,
		NumComponents: 100,
		Normalize:     true,
		MinV:          -1,
		MaxV:          1,
		Method:        fourier.MethodDirect,
	}
}

// Validate checks the settings. Violations are reported as wrapped
// epicycles.ErrInvalidParameter.
func (s Settings) Validate() error {
	if s.NumPoints <= 0 {
		return fmt.Errorf("%w: points must be positive, is %d", epicycles.ErrInvalidParameter, s.NumPoints)
	}
	if s.NumComponents < 2 || s.NumComponents%2 != 0 {
		return fmt.Errorf("%w: components must be even and ≥ 2, is %d", epicycles.ErrInvalidParameter, s.NumComponents)
	}
	if s.Normalize && !(s.MinV < s.MaxV) {
		return fmt.Errorf("%w: normalization range [%g,%g] is empty", epicycles.ErrInvalidParameter, s.MinV, s.MaxV)
	}
	if _, err := fourier.NewAnalyzer(s.Method); err != nil {
		return err
	}
	return nil
}

// String returns a compact representation, used as part of cache keys.
func (s Settings) String() string {
	return fmt.Sprintf("points=%d components=%d normalize=%t[%g,%g] method=%s",
		s.NumPoints, s.NumComponents, s.Normalize, s.MinV, s.MaxV, s.Method)
}

// LoadSettings reads settings from a YAML file. Keys missing from the file
// keep their default values.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, s.Validate()
}
