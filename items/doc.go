// Package items provides ready-made payloads for ggchart items.
//
// Box paints a rectangle and Label paints a single line of text. Both pick
// up defaults from the figure they are added to: a box with no colors
// strokes in the figure's title color, and a label without a color uses
// it too.
package items
