// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"slices"
	"testing"
)

func imageFactory(opts Options) (Surface, error) {
	return NewImageSurface(opts.Width, opts.Height), nil
}

func failingFactory(err error) Factory {
	return func(Options) (Surface, error) { return nil, err }
}

func never() bool { return false }

func TestRegistryRegisterValidates(t *testing.T) {
	var r Registry
	tests := []struct {
		name string
		b    Backend
		ok   bool
	}{
		{"valid", Backend{Name: "a", Open: imageFactory}, true},
		{"no name", Backend{Open: imageFactory}, false},
		{"no factory", Backend{Name: "b"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Register(tt.b)
			if tt.ok && err != nil {
				t.Errorf("Register = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidBackend) {
				t.Errorf("Register = %v, want ErrInvalidBackend", err)
			}
		})
	}
	if got := r.Available(); !slices.Equal(got, []string{"a"}) {
		t.Errorf("Available() = %v, want [a]", got)
	}
}

func TestRegistryZeroValue(t *testing.T) {
	var r Registry
	if len(r.Backends()) != 0 || len(r.Available()) != 0 {
		t.Error("zero registry is not empty")
	}
	if _, ok := r.Lookup("x"); ok {
		t.Error("Lookup on zero registry succeeded")
	}
	if r.Unregister("x") {
		t.Error("Unregister on zero registry = true")
	}
	if _, _, err := r.Open(DefaultOptions(2, 2)); !errors.Is(err, ErrNoBackendAvailable) {
		t.Errorf("Open = %v, want ErrNoBackendAvailable", err)
	}
}

func TestRegistryOrder(t *testing.T) {
	var r Registry
	for _, b := range []Backend{
		{Name: "low", Priority: 1, Open: imageFactory},
		{Name: "zeta", Priority: 30, Open: imageFactory},
		{Name: "alpha", Priority: 30, Open: imageFactory},
		{Name: "off", Priority: 99, Open: imageFactory, Probe: never},
	} {
		if err := r.Register(b); err != nil {
			t.Fatal(err)
		}
	}

	want := []BackendInfo{
		{Name: "off", Priority: 99, Available: false},
		{Name: "alpha", Priority: 30, Available: true},
		{Name: "zeta", Priority: 30, Available: true},
		{Name: "low", Priority: 1, Available: true},
	}
	if got := r.Backends(); !slices.Equal(got, want) {
		t.Errorf("Backends() = %v, want %v", got, want)
	}
	if got := r.Available(); !slices.Equal(got, []string{"alpha", "zeta", "low"}) {
		t.Errorf("Available() = %v", got)
	}
}

func TestRegistryReplaceAndUnregister(t *testing.T) {
	var r Registry
	_ = r.Register(Backend{Name: "x", Priority: 1, Open: imageFactory})
	_ = r.Register(Backend{Name: "x", Priority: 7, Open: imageFactory})

	b, ok := r.Lookup("x")
	if !ok || b.Priority != 7 {
		t.Errorf("Lookup(x) = %+v, %v; want priority 7", b, ok)
	}
	if !r.Unregister("x") {
		t.Error("Unregister(x) = false")
	}
	if r.Unregister("x") {
		t.Error("second Unregister(x) = true")
	}
}

func TestRegistryOpenNamed(t *testing.T) {
	boom := errors.New("boom")
	var r Registry
	_ = r.Register(Backend{Name: "img", Open: imageFactory})
	_ = r.Register(Backend{Name: "off", Open: imageFactory, Probe: never})
	_ = r.Register(Backend{Name: "bad", Open: failingFactory(boom)})

	s, err := r.OpenNamed("img", DefaultOptions(3, 2))
	if err != nil {
		t.Fatalf("OpenNamed(img) = %v", err)
	}
	if s.Width() != 3 || s.Height() != 2 {
		t.Errorf("surface is %dx%d, want 3x2", s.Width(), s.Height())
	}

	var nf *BackendNotFoundError
	if _, err := r.OpenNamed("nope", DefaultOptions(1, 1)); !errors.As(err, &nf) || nf.Name != "nope" {
		t.Errorf("OpenNamed(nope) = %v", err)
	}
	var ua *BackendUnavailableError
	if _, err := r.OpenNamed("off", DefaultOptions(1, 1)); !errors.As(err, &ua) || ua.Name != "off" {
		t.Errorf("OpenNamed(off) = %v", err)
	}
	if _, err := r.OpenNamed("bad", DefaultOptions(1, 1)); !errors.Is(err, boom) {
		t.Errorf("OpenNamed(bad) = %v, want wrapped boom", err)
	}
	if _, err := r.OpenNamed("img", DefaultOptions(0, 4)); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("OpenNamed(img, 0x4) = %v, want ErrInvalidDimensions", err)
	}
}

func TestRegistryOpenFallsBack(t *testing.T) {
	boom := errors.New("no device")
	var r Registry
	_ = r.Register(Backend{Name: "broken", Priority: 50, Open: failingFactory(boom)})
	_ = r.Register(Backend{Name: "off", Priority: 40, Open: imageFactory, Probe: never})
	_ = r.Register(Backend{Name: "img", Priority: 10, Open: imageFactory})

	s, name, err := r.Open(DefaultOptions(4, 4))
	if err != nil {
		t.Fatalf("Open = %v", err)
	}
	if name != "img" {
		t.Errorf("Open picked %q, want img", name)
	}
	if _, ok := s.(*ImageSurface); !ok {
		t.Errorf("Open returned %T", s)
	}
}

func TestRegistryOpenAllFail(t *testing.T) {
	e1, e2 := errors.New("first"), errors.New("second")
	var r Registry
	_ = r.Register(Backend{Name: "a", Priority: 2, Open: failingFactory(e1)})
	_ = r.Register(Backend{Name: "b", Priority: 1, Open: failingFactory(e2)})

	_, name, err := r.Open(DefaultOptions(2, 2))
	if name != "" {
		t.Errorf("name = %q, want empty", name)
	}
	for _, want := range []error{ErrNoBackendAvailable, e1, e2} {
		if !errors.Is(err, want) {
			t.Errorf("Open = %v, want it to wrap %v", err, want)
		}
	}
}

func TestRegistryOpenValidatesFirst(t *testing.T) {
	called := false
	var r Registry
	_ = r.Register(Backend{Name: "a", Open: func(opts Options) (Surface, error) {
		called = true
		return imageFactory(opts)
	}})
	if _, _, err := r.Open(DefaultOptions(-1, 2)); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Open = %v, want ErrInvalidDimensions", err)
	}
	if called {
		t.Error("factory ran for an invalid size")
	}
}

func TestRegistryProbeIsLive(t *testing.T) {
	up := false
	var r Registry
	_ = r.Register(Backend{Name: "dev", Open: imageFactory, Probe: func() bool { return up }})

	if len(r.Available()) != 0 {
		t.Fatal("backend available before probe passes")
	}
	up = true
	if got := r.Available(); !slices.Equal(got, []string{"dev"}) {
		t.Errorf("Available() = %v after probe passes", got)
	}
}

func TestDefaultRegistryHasImage(t *testing.T) {
	b, ok := Lookup(ImageBackend)
	if !ok {
		t.Fatal("image backend not registered")
	}
	if b.Priority != 10 || !b.available() {
		t.Errorf("image backend = priority %d, available %v", b.Priority, b.available())
	}

	s, err := OpenNamed(ImageBackend, DefaultOptions(2, 3))
	if err != nil {
		t.Fatalf("OpenNamed = %v", err)
	}
	defer s.Close()
	if len(s.Frame()) != FrameSize(2, 3) {
		t.Errorf("frame = %d bytes", len(s.Frame()))
	}
}

func TestMustRegisterPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustRegister(invalid) did not panic")
		}
	}()
	MustRegister(Backend{Name: "no-factory"})
}

func TestBackendErrors(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&BackendNotFoundError{Name: "x"}, "surface: backend not found: x"},
		{&BackendUnavailableError{Name: "y"}, "surface: backend unavailable: y"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
	info := BackendInfo{Name: "fbdev", Priority: 50}
	if got := info.String(); got != "fbdev (priority 50, unavailable)" {
		t.Errorf("BackendInfo.String() = %q", got)
	}
}

func TestOptionsCustom(t *testing.T) {
	o := DefaultOptions(1, 1)
	if _, ok := o.CustomString("fbdev.path"); ok {
		t.Error("CustomString on empty options = ok")
	}
	o2 := o.WithCustom("fbdev.path", "/dev/fb1").WithCustom("n", 3)
	if v, ok := o2.CustomString("fbdev.path"); !ok || v != "/dev/fb1" {
		t.Errorf("CustomString = %q, %v", v, ok)
	}
	if _, ok := o2.CustomString("n"); ok {
		t.Error("CustomString on non-string = ok")
	}
	if o.Custom != nil {
		t.Error("WithCustom modified the receiver")
	}
}
