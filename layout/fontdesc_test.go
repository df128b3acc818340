package layout

import (
	"bytes"
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

func TestParseFontDesc(t *testing.T) {
	tests := []struct {
		in   string
		want FontDesc
	}{
		{"Monospace 9", FontDesc{Family: "Monospace", Mono: true, Size: 9}},
		{"Sans Bold 12", FontDesc{Family: "Sans", Bold: true, Size: 12}},
		{"Go Mono Italic 8.5", FontDesc{Family: "Go Mono", Mono: true, Italic: true, Size: 8.5}},
		{"Serif, Bold Italic 14px", FontDesc{Family: "Serif", Bold: true, Italic: true, Size: 14}},
		{"Helvetica", FontDesc{Family: "Helvetica", Size: DefaultSize}},
		{"", FontDesc{Family: "Sans", Size: DefaultSize}},
		{"Bold 20", FontDesc{Family: "Sans", Bold: true, Size: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFontDesc(tt.in)
			if err != nil {
				t.Fatalf("ParseFontDesc(%q) = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFontDesc(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFontDescInvalidSize(t *testing.T) {
	for _, in := range []string{"Sans 0", "Mono -3"} {
		if _, err := ParseFontDesc(in); !errors.Is(err, ErrInvalidFont) {
			t.Errorf("ParseFontDesc(%q) = %v, want ErrInvalidFont", in, err)
		}
	}
}

func TestFontDescString(t *testing.T) {
	d := FontDesc{Family: "Monospace", Bold: true, Size: 9}
	if got, want := d.String(), "Monospace Bold 9"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFontData(t *testing.T) {
	tests := []struct {
		desc FontDesc
		want []byte
	}{
		{FontDesc{Mono: true}, gomono.TTF},
		{FontDesc{Mono: true, Italic: true}, gomonoitalic.TTF},
		{FontDesc{Bold: true}, gobold.TTF},
		{FontDesc{}, goregular.TTF},
	}
	for _, tt := range tests {
		if got := tt.desc.fontData(); !bytes.Equal(got, tt.want) {
			t.Errorf("fontData(%+v) picked the wrong font", tt.desc)
		}
	}
}
