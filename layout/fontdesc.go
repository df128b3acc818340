package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultSize is the size used when a description has none.
const DefaultSize = 10.0

// ErrInvalidFont is returned for descriptions that cannot be parsed.
var ErrInvalidFont = errors.New("layout: invalid font description")

// FontDesc is a parsed font description.
type FontDesc struct {
	Family string
	Mono   bool
	Bold   bool
	Italic bool
	Size   float64
}

var monoFamilies = map[string]bool{
	"monospace": true,
	"mono":      true,
	"go mono":   true,
	"courier":   true,
	"consolas":  true,
	"menlo":     true,
}

// ParseFontDesc parses "Family [Style...] [Size]".
func ParseFontDesc(s string) (FontDesc, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	desc := FontDesc{Size: DefaultSize}

	if n := len(fields); n > 0 {
		last := strings.TrimSuffix(strings.ToLower(fields[n-1]), "px")
		if size, err := strconv.ParseFloat(last, 64); err == nil {
			if size <= 0 {
				return FontDesc{}, fmt.Errorf("%w: size %v in %q", ErrInvalidFont, size, s)
			}
			desc.Size = size
			fields = fields[:n-1]
		}
	}

	var family []string
	for _, f := range fields {
		switch strings.ToLower(f) {
		case "bold", "heavy", "semibold", "ultrabold":
			desc.Bold = true
		case "italic", "oblique":
			desc.Italic = true
		case "regular", "normal", "book", "medium", "roman":
		default:
			family = append(family, f)
		}
	}
	if len(family) == 0 {
		family = []string{"Sans"}
	}

	desc.Family = strings.Join(family, " ")
	desc.Mono = monoFamilies[strings.ToLower(desc.Family)]
	return desc, nil
}

// String formats the description back into its textual form.
func (d FontDesc) String() string {
	parts := []string{d.Family}
	if d.Bold {
		parts = append(parts, "Bold")
	}
	if d.Italic {
		parts = append(parts, "Italic")
	}
	parts = append(parts, strconv.FormatFloat(d.Size, 'g', -1, 64))
	return strings.Join(parts, " ")
}

// fontData returns the TrueType bytes of the bundled Go font matching d.
func (d FontDesc) fontData() []byte {
	switch {
	case d.Mono && d.Bold && d.Italic:
		return gomonobolditalic.TTF
	case d.Mono && d.Bold:
		return gomonobold.TTF
	case d.Mono && d.Italic:
		return gomonoitalic.TTF
	case d.Mono:
		return gomono.TTF
	case d.Bold && d.Italic:
		return gobolditalic.TTF
	case d.Bold:
		return gobold.TTF
	case d.Italic:
		return goitalic.TTF
	default:
		return goregular.TTF
	}
}
