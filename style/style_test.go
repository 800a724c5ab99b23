package style

import (
	"testing"

	"github.com/mdtypeset/typeset/settings"
	"github.com/stretchr/testify/assert"
)

func TestInline(t *testing.T) {
	decls := Declarations{{"color", "#333"}, {"margin", "0 0 20px"}}

	assert.Equal(t, "color:#333; margin:0 0 20px;", decls.Inline())
	assert.Equal(t, "", Declarations{}.Inline())
}

func TestContainer(t *testing.T) {
	assert.Equal(
		t,
		"font-family:-apple-system,BlinkMacSystemFont,'Helvetica Neue',Arial,sans-serif; font-size:16px;",
		Container().Inline(),
	)
}

func TestNumber(t *testing.T) {
	tests := map[string]struct {
		value float64
		want  string
	}{
		"integer":       {16, "16"},
		"one decimal":   {22.4, "22.4"},
		"float noise":   {17 * 1.4, "23.8"},
		"three decimal": {15 * 1.125, "16.875"},
		"line height":   {1.8, "1.8"},
		"zero":          {0, "0"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Number(tt.value))
		})
	}
}

func TestHeadingScale(t *testing.T) {
	tests := map[float64][3]string{
		12: {"16.8px", "13.5px", "12px"},
		13: {"18.2px", "14.625px", "13px"},
		14: {"19.6px", "15.75px", "14px"},
		15: {"21px", "16.875px", "15px"},
		16: {"22.4px", "18px", "16px"},
		17: {"23.8px", "19.125px", "17px"},
		18: {"25.2px", "20.25px", "18px"},
		19: {"26.6px", "21.375px", "19px"},
		20: {"28px", "22.5px", "20px"},
	}

	s := settings.Defaults()
	for size, want := range tests {
		s.FontSize = size

		for level := 1; level <= 3; level++ {
			actual, ok := Heading(level, s).Lookup("font-size")
			assert.True(t, ok)
			assert.Equal(t, want[level-1], actual, "font size %v, h%d", size, level)
		}
	}
}

func TestHeadingLevels(t *testing.T) {
	s := settings.Defaults()
	s.HeadingColor = "#123456"

	h1 := Heading(1, s)
	align, _ := h1.Lookup("text-align")
	assert.Equal(t, "center", align)
	color, _ := h1.Lookup("color")
	assert.Equal(t, "#123456", color)

	h2 := Heading(2, s)
	border, _ := h2.Lookup("border-bottom")
	assert.Equal(t, "2px solid #123456", border)
	align, _ = HeadingWrapper().Lookup("text-align")
	assert.Equal(t, "center", align)

	for _, level := range []int{3, 4, 6} {
		border, ok := Heading(level, s).Lookup("border-left")
		assert.True(t, ok)
		assert.Equal(t, "4px solid #123456", border)
	}
}

func TestMerge(t *testing.T) {
	base := Declarations{{"a", "1"}, {"b", "2"}}

	merged := base.Merge(Declarations{{"b", "3"}, {"c", "4"}})

	assert.Equal(t, Declarations{{"a", "1"}, {"b", "3"}, {"c", "4"}}, merged)
	assert.Equal(t, Declarations{{"a", "1"}, {"b", "2"}}, base)
}

func TestFixedDeclarationsIgnoreSettings(t *testing.T) {
	s := settings.Defaults()
	s.HeadingColor = "#000000"
	s.CodeBackground = "#000000"

	background, _ := Blockquote(s).Lookup("background")
	assert.Equal(t, QuoteBackground, background)
	color, _ := Blockquote(s).Lookup("color")
	assert.Equal(t, QuoteColor, color)

	assert.Equal(t, CodeSpan(), CodeSpan())
	color, _ = CodeSpan().Lookup("color")
	assert.Equal(t, CodeSpanColor, color)
}

func TestCodeBlockMargins(t *testing.T) {
	s := settings.Defaults()
	s.CodeMarginTop = 3
	s.CodeMarginBottom = 42

	top, _ := CodeBlock(s).Lookup("margin-top")
	bottom, _ := CodeBlock(s).Lookup("margin-bottom")
	background, _ := CodeBlock(s).Lookup("background")

	assert.Equal(t, "3px", top)
	assert.Equal(t, "42px", bottom)
	assert.Equal(t, s.CodeBackground, background)
}
