package ggchart

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart/surface"
)

// Render draws the figure onto a new width x height raster and returns
// the image.
func (f *Figure) Render(width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidArgument, width, height)
	}

	dc := gg.NewContext(width, height)
	defer func() { _ = dc.Close() }()

	c := surface.NewCanvas(dc)
	if err := f.Draw(c, width, height); err != nil {
		return nil, err
	}
	Logger().Debug("figure rendered", "width", width, "height", height, "items", f.items.Len())
	return c.Image(), nil
}

// Encode renders the figure and writes it to w in format ("png", "tiff",
// or any format added with surface.RegisterEncoder).
func (f *Figure) Encode(w io.Writer, width, height int, format string) error {
	if w == nil {
		return fmt.Errorf("%w: nil writer", ErrInvalidArgument)
	}
	enc, err := lookupExport(width, height, format)
	if err != nil {
		return err
	}
	img, err := f.Render(width, height)
	if err != nil {
		return err
	}
	return enc(w, img)
}

// ExportToRaster renders the figure and writes it to path in format.
//
// Arguments are checked in order: an empty path or a non-positive size
// fails with ErrInvalidArgument, an unknown format with
// ErrUnsupportedFormat. Nothing is written in either case. File system
// failures are returned as *ExportError, which matches ErrIO.
//
// The image is written to a temporary file next to path and renamed over
// it, so a failed export never leaves a partial file behind.
func (f *Figure) ExportToRaster(path string, width, height int, format string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidArgument)
	}
	enc, err := lookupExport(width, height, format)
	if err != nil {
		return err
	}
	img, err := f.Render(width, height)
	if err != nil {
		return err
	}

	if err := writeAtomic(path, func(w io.Writer) error { return enc(w, img) }); err != nil {
		return err
	}
	Logger().Info("figure exported", "path", path, "format", format, "width", width, "height", height)
	return nil
}

func lookupExport(width, height int, format string) (surface.Encoder, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidArgument, width, height)
	}
	enc, ok := surface.LookupEncoder(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return enc, nil
}

func writeAtomic(path string, write func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return &ExportError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err := write(bw); err != nil {
		return &ExportError{Op: "encode", Path: path, Err: err}
	}
	if err := bw.Flush(); err != nil {
		return &ExportError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &ExportError{Op: "close", Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &ExportError{Op: "rename", Path: path, Err: err}
	}
	return nil
}
