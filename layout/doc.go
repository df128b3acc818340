// Package layout adapts gg's text package to the single-line text layout
// a figure needs: a fixed font, a string, its extents, and painting it at
// the surface's current point.
//
// A Text is created once with a font description and rebound to a surface
// at the start of every draw pass:
//
//	t, err := layout.New("Monospace 9")
//	if err != nil {
//	    return err
//	}
//	defer t.Close()
//
//	t.Init(s)
//	t.SetText("Revenue")
//	_, logical := t.Extents()
//	s.MoveTo((width-logical.Width())/2, 10)
//	err = t.Show()
//
// # Font descriptions
//
// A description is a family, optional style words, and a size in points,
// separated by spaces: "Monospace 9", "Sans Bold 12", "Serif Italic 10".
// Families resolve to the Go fonts bundled with golang.org/x/image:
// monospace names select Go Mono, everything else Go Regular. Unknown
// families fall back to Go Regular, the same way a system font map
// substitutes a default.
package layout
