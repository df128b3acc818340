// Package ggchart provides a retained 2D chart figure built on gg.
//
// # Overview
//
// A Figure owns a tree of Items. Drawing a figure paints its background,
// then every item in preorder (a parent before its children, children in
// sibling order), then a centered title on top of everything else. Figures
// draw onto any surface.Surface and export to raster files through gg.
//
// # Quick Start
//
//	fig, err := ggchart.NewFigure(ggchart.WithTitle("Latency"))
//	if err != nil {
//	    return err
//	}
//	defer fig.Close()
//
//	root := ggchart.NewItem(items.NewBox(ggchart.Rect{X: 20, Y: 30, Width: 100, Height: 40}))
//	if err := fig.SetRootItem(root); err != nil {
//	    return err
//	}
//	return fig.ExportToRaster("latency.png", 400, 300, "png")
//
// # Item Tree
//
// Items are stored in an arena (package tree) owned by the figure. Attach
// makes the new child the first child of its parent. A figure has at most
// one root; setting a new root destroys the previous tree and releases
// every payload implementing Releaser.
//
// # Coordinate System
//
// Surface coordinates follow gg: origin at top-left, X right, Y down.
// Items receive the full canvas rectangle regardless of the background
// inset.
package ggchart

// Version is the current version of the library.
const Version = "0.3.0"
