// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

// Options configures surface creation through the registry.
type Options struct {
	// Width is the frame width in pixels.
	Width int

	// Height is the frame height in pixels.
	Height int

	// Custom holds backend-specific settings keyed by "<backend>.<name>",
	// for example "fbdev.path".
	Custom map[string]any
}

// DefaultOptions returns options for a width x height surface.
func DefaultOptions(width, height int) Options {
	return Options{Width: width, Height: height}
}

// CustomString returns Custom[key] if it is a non-empty string.
func (o Options) CustomString(key string) (string, bool) {
	v, ok := o.Custom[key].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// WithCustom returns a copy of o with key set to value.
func (o Options) WithCustom(key string, value any) Options {
	m := make(map[string]any, len(o.Custom)+1)
	for k, v := range o.Custom {
		m[k] = v
	}
	m[key] = value
	o.Custom = m
	return o
}
