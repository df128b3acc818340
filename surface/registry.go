// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/png"
	"io"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/tiff"
)

// Encoder writes img to w in a raster file format.
type Encoder func(w io.Writer, img image.Image) error

// globalRegistry is the default encoder registry.
var globalRegistry = NewRegistry()

// Registry maps format names to encoders. Names are case-insensitive.
//
// Example registration:
//
//	func init() {
//	    surface.RegisterEncoder("bmp", func(w io.Writer, img image.Image) error {
//	        return bmp.Encode(w, img)
//	    })
//	}
type Registry struct {
	mu       sync.RWMutex
	encoders map[string]Encoder
}

// NewRegistry creates an empty registry.
// Most code should use the global registry via RegisterEncoder and
// LookupEncoder.
func NewRegistry() *Registry {
	return &Registry{encoders: make(map[string]Encoder)}
}

// RegisterEncoder adds enc to the global registry under format.
// Registering an existing format replaces the previous encoder.
func RegisterEncoder(format string, enc Encoder) {
	globalRegistry.Register(format, enc)
}

// UnregisterEncoder removes format from the global registry.
func UnregisterEncoder(format string) {
	globalRegistry.Unregister(format)
}

// LookupEncoder returns the encoder registered for format.
func LookupEncoder(format string) (Encoder, bool) {
	return globalRegistry.Lookup(format)
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	return globalRegistry.Formats()
}

// Register adds enc under format.
func (r *Registry) Register(format string, enc Encoder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.encoders == nil {
		r.encoders = make(map[string]Encoder)
	}
	r.encoders[normalizeFormat(format)] = enc
}

// Unregister removes format.
func (r *Registry) Unregister(format string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.encoders, normalizeFormat(format))
}

// Lookup returns the encoder for format.
func (r *Registry) Lookup(format string) (Encoder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	enc, ok := r.encoders[normalizeFormat(format)]
	return enc, ok && enc != nil
}

// Formats returns the registered format names, sorted.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.encoders))
	for name := range r.encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}

// init registers the built-in encoders.
func init() {
	RegisterEncoder("png", png.Encode)
	RegisterEncoder("tiff", encodeTIFF)
}
