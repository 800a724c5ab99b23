// Package metadata reads per-document settings overrides from leading
// `<!-- Key: value -->` headers or from a YAML front matter block.
package metadata

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/mdtypeset/typeset/settings"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	HeaderPreset           = `Preset`
	HeaderHeadingColor     = `Heading-Color`
	HeaderBoldColor        = `Bold-Color`
	HeaderTextColor        = `Text-Color`
	HeaderCodeBackground   = `Code-Background`
	HeaderCodeMarginTop    = `Code-Margin-Top`
	HeaderCodeMarginBottom = `Code-Margin-Bottom`
	HeaderFontSize         = `Font-Size`
	HeaderLineHeight       = `Line-Height`
)

const frontMatterDelimiter = "---"

// Meta is the set of overrides declared by a document.
type Meta struct {
	Preset string         `yaml:"preset"`
	Patch  settings.Patch `yaml:",inline"`
}

var (
	reHeaderPattern      = regexp.MustCompile(`<!--\s*([^:]+):\s*(.*)\s*-->`)
	reFrontMatterClosing = regexp.MustCompile(`(?m)^` + frontMatterDelimiter + `$`)
)

var frontMatterFormat = frontmatter.NewFormat(
	frontMatterDelimiter,
	frontMatterDelimiter,
	yaml.Unmarshal,
)

// ExtractMeta returns the overrides declared at the top of data and the
// document body without them. Meta is nil when the document declares
// nothing.
func ExtractMeta(data []byte) (*Meta, []byte, error) {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))

	if meta, body, ok := extractFrontMatter(data); ok {
		return meta, body, nil
	}

	var (
		meta   *Meta
		offset int
	)

	for _, chunk := range bytes.SplitAfter(data, []byte("\n")) {
		line := strings.TrimSuffix(string(chunk), "\n")

		matches := reHeaderPattern.FindStringSubmatch(line)
		if matches == nil {
			break
		}

		offset += len(chunk)

		if meta == nil {
			meta = &Meta{}
		}

		header := cases.Title(language.English).String(strings.TrimSpace(matches[1]))
		value := strings.TrimSpace(matches[2])

		var err error

		switch header {
		case HeaderPreset:
			meta.Preset = value

		case HeaderHeadingColor:
			meta.Patch.HeadingColor = settings.String(value)

		case HeaderBoldColor:
			meta.Patch.BoldColor = settings.String(value)

		case HeaderTextColor:
			meta.Patch.TextColor = settings.String(value)

		case HeaderCodeBackground:
			meta.Patch.CodeBackground = settings.String(value)

		case HeaderCodeMarginTop:
			meta.Patch.CodeMarginTop, err = parseNumber(header, value)

		case HeaderCodeMarginBottom:
			meta.Patch.CodeMarginBottom, err = parseNumber(header, value)

		case HeaderFontSize:
			meta.Patch.FontSize, err = parseNumber(header, value)

		case HeaderLineHeight:
			meta.Patch.LineHeight, err = parseNumber(header, value)

		default:
			log.Errorf(
				nil,
				`encountered unknown header %q line: %#v`,
				header,
				line,
			)

			continue
		}

		if err != nil {
			return nil, nil, err
		}
	}

	if meta == nil {
		return nil, data, nil
	}

	return meta, data[offset:], nil
}

func parseNumber(header, value string) (*float64, error) {
	number, err := strconv.ParseFloat(strings.TrimSuffix(value, "px"), 64)
	if err != nil {
		return nil, karma.Describe("header", header).
			Describe("value", value).
			Format(err, "unable to parse header value as number")
	}

	return &number, nil
}

// extractFrontMatter splits a leading `---` delimited YAML block. A block
// that is not valid YAML is left in the document: it may as well be a pair
// of thematic breaks.
func extractFrontMatter(data []byte) (*Meta, []byte, bool) {
	first, rest, _ := bytes.Cut(data, []byte("\n"))
	if string(first) != frontMatterDelimiter || !reFrontMatterClosing.Match(rest) {
		return nil, nil, false
	}

	var meta Meta

	body, err := frontmatter.Parse(bytes.NewReader(data), &meta, frontMatterFormat)
	if err != nil {
		log.Warningf(err, "leading block is not a valid front matter, rendering as is")
		return nil, nil, false
	}

	if len(body) >= len(data) {
		return nil, nil, false
	}

	log.Debugf(nil, "found document front matter, preset: %q", meta.Preset)

	return &meta, body, true
}

// Apply layers the overrides on top of base: preset first, then the
// individual fields. The result is validated since documents are user
// input.
func (meta *Meta) Apply(base settings.Settings) (settings.Settings, error) {
	if meta == nil {
		return base, nil
	}

	result := base

	if meta.Preset != "" {
		preset, err := settings.LookupPreset(meta.Preset)
		if err != nil {
			return base, err
		}

		result = result.WithAccent(preset.Color)
	}

	result = result.Apply(meta.Patch)

	if err := result.Validate(); err != nil {
		return base, karma.Format(err, "invalid document settings")
	}

	return result, nil
}
