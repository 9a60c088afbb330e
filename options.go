package pxl

import "github.com/gogpu/pxl/surface"

// Option configures a Canvas during creation.
// Use functional options to customize Canvas behavior.
//
// Example:
//
//	// Best available registered backend, black background
//	c, err := pxl.New(320, 240)
//
//	// Explicit backend and background
//	c, err := pxl.New(320, 240,
//	    pxl.WithBackend("fbdev"),
//	    pxl.WithSurfaceOption("fbdev.path", "/dev/fb1"),
//	    pxl.WithBackground(pxl.White))
type Option func(*options)

// options holds optional configuration for Canvas creation.
type options struct {
	surface    surface.Surface
	backend    string
	background Color
	custom     map[string]any
}

// defaultOptions returns the default canvas options.
func defaultOptions() options {
	return options{
		surface:    nil, // Selected from the registry if nil
		backend:    "",  // Best available if empty
		background: Black,
	}
}

// WithSurface injects an already created surface. The canvas takes
// ownership and closes it on Close. Registry selection is skipped.
//
// Example:
//
//	s := surface.NewImageSurface(320, 240)
//	c, err := pxl.New(320, 240, pxl.WithSurface(s))
func WithSurface(s surface.Surface) Option {
	return func(o *options) {
		o.surface = s
	}
}

// WithBackend selects a registered surface backend by name, for example
// "image", "fbdev" or "terminal". Without it the best available backend
// is used.
func WithBackend(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}

// WithBackground sets the background color used to allocate, reset and
// clear the canvas. The default is opaque Black.
func WithBackground(c Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithSurfaceOption passes a backend-specific setting through to the
// surface factory (see surface.Options.Custom).
func WithSurfaceOption(key string, value any) Option {
	return func(o *options) {
		if o.custom == nil {
			o.custom = make(map[string]any)
		}
		o.custom[key] = value
	}
}
