// Package style computes the presentation declarations of every node kind
// from a settings snapshot. The inline renderer and the stylesheet exporter
// both read from here, which keeps their output in agreement.
package style

import (
	"math"
	"strconv"
	"strings"

	"github.com/mdtypeset/typeset/settings"
)

const (
	// ContainerID identifies the rendered fragment for downstream tooling.
	ContainerID = "wechat-typeset"

	FontFamily     = "-apple-system,BlinkMacSystemFont,'Helvetica Neue',Arial,sans-serif"
	CodeFontFamily = "Consolas,Monaco,'Andale Mono',monospace"

	QuoteBackground    = "#f9f9f9"
	QuoteColor         = "#555"
	CodeSpanBackground = "#fff5f5"
	CodeSpanColor      = "#ff502c"
	CodeColor          = "#333"
	CodeBorderColor    = "#e1e4e8"
)

// Heading font scale relative to the body font size.
const (
	Heading1Scale   = 1.4
	Heading2Scale   = 1.125
	BlockquoteScale = 0.95
)

type Declaration struct {
	Property string
	Value    string
}

type Declarations []Declaration

// Inline renders declarations in the form used by style attributes:
// "color:#333; margin:0;".
func (d Declarations) Inline() string {
	parts := make([]string, 0, len(d))
	for _, declaration := range d {
		parts = append(parts, declaration.Property+":"+declaration.Value+";")
	}

	return strings.Join(parts, " ")
}

// Lookup returns the value of property.
func (d Declarations) Lookup(property string) (string, bool) {
	for _, declaration := range d {
		if declaration.Property == property {
			return declaration.Value, true
		}
	}

	return "", false
}

// Merge appends other to d. A property already present is overwritten in
// place so the original order is kept.
func (d Declarations) Merge(other Declarations) Declarations {
	merged := make(Declarations, len(d), len(d)+len(other))
	copy(merged, d)

outer:
	for _, declaration := range other {
		for i := range merged {
			if merged[i].Property == declaration.Property {
				merged[i].Value = declaration.Value
				continue outer
			}
		}
		merged = append(merged, declaration)
	}

	return merged
}

// Number formats v without trailing zeros, rounded to four decimals so that
// scaled sizes read as 23.8 rather than 23.799999999999997.
func Number(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e4)/1e4, 'f', -1, 64)
}

func Px(v float64) string {
	return Number(v) + "px"
}

// Container is the fixed style of the wrapping element. It does not depend
// on settings.
func Container() Declarations {
	return Declarations{
		{"font-family", FontFamily},
		{"font-size", "16px"},
	}
}

func headingCommon(s settings.Settings) Declarations {
	return Declarations{
		{"font-weight", "bold"},
		{"line-height", "1.4"},
		{"color", s.HeadingColor},
	}
}

// Heading returns the declarations of the element carrying the heading
// text. For level 2 that is the inner span; see HeadingWrapper.
func Heading(level int, s settings.Settings) Declarations {
	switch level {
	case 1:
		return headingCommon(s).Merge(Declarations{
			{"margin", "20px 0 30px"},
			{"font-size", Px(s.FontSize * Heading1Scale)},
			{"text-align", "center"},
		})
	case 2:
		return Declarations{
			{"font-size", Px(s.FontSize * Heading2Scale)},
			{"font-weight", "bold"},
			{"border-bottom", "2px solid " + s.HeadingColor},
			{"color", s.HeadingColor},
			{"padding-bottom", "5px"},
			{"display", "inline-block"},
		}
	default:
		return headingCommon(s).Merge(Declarations{
			{"margin", "25px 0 10px"},
			{"font-size", Px(s.FontSize)},
			{"border-left", "4px solid " + s.HeadingColor},
			{"padding-left", "10px"},
		})
	}
}

// HeadingWrapper is the centered block around a level 2 heading span.
func HeadingWrapper() Declarations {
	return Declarations{
		{"margin-top", "40px"},
		{"margin-bottom", "20px"},
		{"text-align", "center"},
	}
}

func Paragraph(s settings.Settings) Declarations {
	return Declarations{
		{"margin", "0 0 20px"},
		{"font-size", Px(s.FontSize)},
		{"line-height", Number(s.LineHeight)},
		{"text-align", "justify"},
		{"color", s.TextColor},
		{"letter-spacing", "0.5px"},
	}
}

func Blockquote(s settings.Settings) Declarations {
	return Declarations{
		{"margin", "20px 0"},
		{"padding", "15px"},
		{"background", QuoteBackground},
		{"border-left", "4px solid " + s.HeadingColor},
		{"border-radius", "4px"},
		{"color", QuoteColor},
		{"font-size", Px(s.FontSize * BlockquoteScale)},
		{"line-height", "1.6"},
	}
}

func CodeBlock(s settings.Settings) Declarations {
	return Declarations{
		{"margin-top", Px(s.CodeMarginTop)},
		{"margin-bottom", Px(s.CodeMarginBottom)},
		{"padding", "15px"},
		{"background", s.CodeBackground},
		{"border-radius", "6px"},
		{"font-size", "14px"},
		{"line-height", "1.5"},
		{"color", CodeColor},
		{"overflow-x", "auto"},
		{"font-family", CodeFontFamily},
		{"border", "1px solid " + CodeBorderColor},
	}
}

// CodeSpan is fixed: inline code does not follow settings.
func CodeSpan() Declarations {
	return Declarations{
		{"background", CodeSpanBackground},
		{"color", CodeSpanColor},
		{"padding", "2px 5px"},
		{"border-radius", "3px"},
		{"font-family", "monospace"},
		{"font-size", "0.9em"},
		{"margin", "0 2px"},
	}
}

func Strong(s settings.Settings) Declarations {
	return Declarations{
		{"color", s.BoldColor},
		{"font-weight", "bold"},
	}
}

func List(s settings.Settings) Declarations {
	return Declarations{
		{"margin", "10px 0 20px"},
		{"padding-left", "25px"},
		{"font-size", Px(s.FontSize)},
		{"color", s.TextColor},
		{"line-height", "1.75"},
	}
}

func ListItem() Declarations {
	return Declarations{
		{"margin-bottom", "5px"},
	}
}

func Image() Declarations {
	return Declarations{
		{"display", "block"},
		{"max-width", "100%"},
		{"height", "auto"},
		{"margin", "20px auto"},
		{"border-radius", "6px"},
		{"box-shadow", "0 2px 10px rgba(0,0,0,0.1)"},
	}
}

func Link(s settings.Settings) Declarations {
	return Declarations{
		{"color", s.HeadingColor},
		{"text-decoration", "none"},
		{"border-bottom", "1px solid " + s.HeadingColor},
		{"word-break", "break-all"},
	}
}

func ThematicBreak(s settings.Settings) Declarations {
	return Declarations{
		{"border", "0"},
		{"border-top", "1px dashed " + s.HeadingColor},
		{"margin", "30px 0"},
		{"opacity", "0.6"},
	}
}
