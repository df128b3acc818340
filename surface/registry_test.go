// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"slices"
	"testing"

	"golang.org/x/image/tiff"
)

// TestRegistryRegister tests encoder registration.
func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()

	called := false
	r.Register("Test", func(io.Writer, image.Image) error {
		called = true
		return nil
	})

	enc, ok := r.Lookup("test")
	if !ok {
		t.Fatal("registered encoder not found")
	}
	if err := enc(io.Discard, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatalf("encoder returned %v", err)
	}
	if !called {
		t.Error("lookup returned a different encoder")
	}
}

// TestRegistryUnregister tests encoder removal.
func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register("tmp", png.Encode)
	r.Unregister("TMP")

	if _, ok := r.Lookup("tmp"); ok {
		t.Error("encoder should not exist after unregister")
	}
}

// TestRegistryFormats tests listing formats.
func TestRegistryFormats(t *testing.T) {
	r := NewRegistry()
	r.Register("tiff", encodeTIFF)
	r.Register(".PNG", png.Encode)

	got := r.Formats()
	if want := []string{"png", "tiff"}; !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

// TestZeroRegistry tests that the zero value is usable.
func TestZeroRegistry(t *testing.T) {
	var r Registry
	if _, ok := r.Lookup("png"); ok {
		t.Error("zero registry should be empty")
	}
	r.Register("png", png.Encode)
	if _, ok := r.Lookup("png"); !ok {
		t.Error("zero registry should accept registrations")
	}
}

// TestBuiltinEncoders tests the default registrations.
func TestBuiltinEncoders(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))

	tests := []struct {
		format string
		decode func(io.Reader) (image.Image, error)
	}{
		{"png", png.Decode},
		{"tiff", tiff.Decode},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			enc, ok := LookupEncoder(tt.format)
			if !ok {
				t.Fatalf("no built-in encoder for %s", tt.format)
			}
			var buf bytes.Buffer
			if err := enc(&buf, img); err != nil {
				t.Fatalf("encode: %v", err)
			}
			got, err := tt.decode(&buf)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.Bounds() != img.Bounds() {
				t.Errorf("bounds = %v, want %v", got.Bounds(), img.Bounds())
			}
		})
	}

	if _, ok := LookupEncoder("bmp"); ok {
		t.Error("bmp should not be registered by default")
	}
}
