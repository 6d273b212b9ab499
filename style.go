package scope

import (
	"fmt"
	"image/color"
	"io"

	"gopkg.in/yaml.v3"
)

// Style holds the drawing configuration shared by both painter variants:
// a uniform stroke applied to the whole trace and the background the
// painters clear to. There is no per-segment styling.
type Style struct {
	Stroke      color.NRGBA `yaml:"stroke,flow"`
	StrokeWidth float64     `yaml:"strokeWidth"`
	Background  color.NRGBA `yaml:"background,flow"`
}

// DefaultStyle returns the style used when none is configured: a thin
// green trace on near-black, the classic phosphor look.
func DefaultStyle() Style {
	return Style{
		Stroke:      color.NRGBA{R: 64, G: 224, B: 112, A: 255},
		StrokeWidth: 1.5,
		Background:  color.NRGBA{R: 12, G: 14, B: 12, A: 255},
	}
}

// LoadStyle reads a YAML style document. Fields absent from the document
// keep their default values.
func LoadStyle(r io.Reader) (Style, error) {
	s := DefaultStyle()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return DefaultStyle(), fmt.Errorf("scope: decode style: %w", err)
	}
	if s.StrokeWidth <= 0 {
		return DefaultStyle(), fmt.Errorf("scope: stroke width must be positive, got %v", s.StrokeWidth)
	}
	return s, nil
}

// SaveStyle writes the style as a YAML document.
func SaveStyle(w io.Writer, s Style) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("scope: encode style: %w", err)
	}
	return enc.Close()
}
