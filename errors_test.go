package ggchart

import (
	"errors"
	"io/fs"
	"testing"
)

func TestExportErrorIs(t *testing.T) {
	err := error(&ExportError{Op: "create", Path: "/x/y.png", Err: fs.ErrPermission})

	if !errors.Is(err, ErrIO) {
		t.Error("ExportError should match ErrIO")
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("ExportError should unwrap to its cause")
	}
	if errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrUnsupportedFormat) {
		t.Error("ExportError must stay distinct from argument and format errors")
	}
	if got, want := err.Error(), "ggchart: create /x/y.png: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestDrawErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := error(&DrawError{Index: 3, Err: cause})

	if !errors.Is(err, cause) {
		t.Error("DrawError should unwrap to its cause")
	}
	var de *DrawError
	if !errors.As(err, &de) || de.Index != 3 {
		t.Errorf("errors.As() = %v, %+v", de != nil, de)
	}
	if got, want := err.Error(), "ggchart: draw item 3: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
