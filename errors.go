package ggchart

import (
	"errors"
	"fmt"
)

// Sentinel errors for ggchart.
var (
	// ErrInvalidArgument is returned when a required value is missing or
	// out of range. It is reported before any side effect.
	ErrInvalidArgument = errors.New("ggchart: invalid argument")

	// ErrUnsupportedFormat is returned when exporting to a raster format
	// that has no registered encoder.
	ErrUnsupportedFormat = errors.New("ggchart: unsupported format")

	// ErrAttachConflict is returned when attaching an item that already
	// has a parent or already belongs to a figure. The tree is unchanged.
	ErrAttachConflict = errors.New("ggchart: item already attached")

	// ErrIO matches every *ExportError.
	ErrIO = errors.New("ggchart: i/o failure")
)

// ExportError records a file system failure during export.
type ExportError struct {
	Op   string
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return "ggchart: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrIO.
func (e *ExportError) Is(target error) bool {
	return target == ErrIO
}

// DrawError is returned when an item's Draw fails. Index is the item's
// position in preorder, starting at 0 for the root.
type DrawError struct {
	Index int
	Err   error
}

func (e *DrawError) Error() string {
	return fmt.Sprintf("ggchart: draw item %d: %v", e.Index, e.Err)
}

func (e *DrawError) Unwrap() error {
	return e.Err
}
