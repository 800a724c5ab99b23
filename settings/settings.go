// Package settings holds the visual parameters that drive both the inline
// renderer and the stylesheet exporter.
package settings

import (
	"errors"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"github.com/reconquest/karma-go"
)

const (
	FontSizeMin = 12
	FontSizeMax = 20
	MarginMin   = 0
	MarginMax   = 50
)

var (
	ErrInvalidColor  = errors.New("invalid color")
	ErrOutOfRange    = errors.New("value out of range")
	ErrUnknownPreset = errors.New("unknown preset")
)

// Settings is a complete snapshot of the visual configuration. It is a value
// type: every mutation produces a new snapshot.
type Settings struct {
	HeadingColor     string  `yaml:"headingColor"`
	BoldColor        string  `yaml:"boldColor"`
	TextColor        string  `yaml:"textColor"`
	CodeBackground   string  `yaml:"codeBg"`
	CodeMarginTop    float64 `yaml:"codeMarginTop"`
	CodeMarginBottom float64 `yaml:"codeMarginBottom"`
	FontSize         float64 `yaml:"fontSize"`
	LineHeight       float64 `yaml:"lineHeight"`
}

// Defaults returns the settings every session starts from.
func Defaults() Settings {
	return Settings{
		HeadingColor:     "#1e88e5",
		BoldColor:        "#1e88e5",
		TextColor:        "#3f3f3f",
		CodeBackground:   "#f6f8fa",
		CodeMarginTop:    15,
		CodeMarginBottom: 15,
		FontSize:         16,
		LineHeight:       1.8,
	}
}

// Patch is a partial update. Nil fields are left untouched by Apply.
type Patch struct {
	HeadingColor     *string  `yaml:"headingColor"`
	BoldColor        *string  `yaml:"boldColor"`
	TextColor        *string  `yaml:"textColor"`
	CodeBackground   *string  `yaml:"codeBg"`
	CodeMarginTop    *float64 `yaml:"codeMarginTop"`
	CodeMarginBottom *float64 `yaml:"codeMarginBottom"`
	FontSize         *float64 `yaml:"fontSize"`
	LineHeight       *float64 `yaml:"lineHeight"`
}

// IsEmpty reports whether the patch would change nothing.
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// Merge returns a patch where fields set in other take precedence.
func (p Patch) Merge(other Patch) Patch {
	merged := p
	if other.HeadingColor != nil {
		merged.HeadingColor = other.HeadingColor
	}
	if other.BoldColor != nil {
		merged.BoldColor = other.BoldColor
	}
	if other.TextColor != nil {
		merged.TextColor = other.TextColor
	}
	if other.CodeBackground != nil {
		merged.CodeBackground = other.CodeBackground
	}
	if other.CodeMarginTop != nil {
		merged.CodeMarginTop = other.CodeMarginTop
	}
	if other.CodeMarginBottom != nil {
		merged.CodeMarginBottom = other.CodeMarginBottom
	}
	if other.FontSize != nil {
		merged.FontSize = other.FontSize
	}
	if other.LineHeight != nil {
		merged.LineHeight = other.LineHeight
	}
	return merged
}

// Apply returns a copy of s with every non-nil field of p applied.
func (s Settings) Apply(p Patch) Settings {
	if p.HeadingColor != nil {
		s.HeadingColor = *p.HeadingColor
	}
	if p.BoldColor != nil {
		s.BoldColor = *p.BoldColor
	}
	if p.TextColor != nil {
		s.TextColor = *p.TextColor
	}
	if p.CodeBackground != nil {
		s.CodeBackground = *p.CodeBackground
	}
	if p.CodeMarginTop != nil {
		s.CodeMarginTop = *p.CodeMarginTop
	}
	if p.CodeMarginBottom != nil {
		s.CodeMarginBottom = *p.CodeMarginBottom
	}
	if p.FontSize != nil {
		s.FontSize = *p.FontSize
	}
	if p.LineHeight != nil {
		s.LineHeight = *p.LineHeight
	}
	return s
}

// WithAccent returns a copy of s with heading and bold colors set to color.
func (s Settings) WithAccent(color string) Settings {
	s.HeadingColor = color
	s.BoldColor = color
	return s
}

// Validate enforces the limits of the input surface. The renderer itself
// accepts any value; only user-facing entry points call this.
func (s Settings) Validate() error {
	colors := []struct {
		name  string
		value string
	}{
		{"heading color", s.HeadingColor},
		{"bold color", s.BoldColor},
		{"text color", s.TextColor},
		{"code background", s.CodeBackground},
	}
	for _, color := range colors {
		if err := ValidateColor(color.value); err != nil {
			return karma.Describe("setting", color.name).Reason(err)
		}
	}

	if s.FontSize < FontSizeMin || s.FontSize > FontSizeMax {
		return karma.Describe("font size", s.FontSize).
			Describe("range", "12..20").
			Reason(ErrOutOfRange)
	}

	if s.CodeMarginTop < MarginMin || s.CodeMarginTop > MarginMax {
		return karma.Describe("code margin top", s.CodeMarginTop).
			Describe("range", "0..50").
			Reason(ErrOutOfRange)
	}

	if s.CodeMarginBottom < MarginMin || s.CodeMarginBottom > MarginMax {
		return karma.Describe("code margin bottom", s.CodeMarginBottom).
			Describe("range", "0..50").
			Reason(ErrOutOfRange)
	}

	if s.LineHeight <= 0 {
		return karma.Describe("line height", s.LineHeight).Reason(ErrOutOfRange)
	}

	return nil
}

// ValidateColor checks that value is a CSS color and contains nothing that
// could escape a style attribute.
func ValidateColor(value string) error {
	if strings.ContainsAny(value, `;"<>`) {
		return karma.Describe("color", value).Reason(ErrInvalidColor)
	}

	if _, err := csscolorparser.Parse(value); err != nil {
		return karma.Describe("color", value).Format(err, ErrInvalidColor.Error())
	}

	return nil
}

// String returns a pointer to v, for building patches.
func String(v string) *string {
	return &v
}

// Float returns a pointer to v, for building patches.
func Float(v float64) *float64 {
	return &v
}
