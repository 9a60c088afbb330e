package main

import (
	"testing"

	"github.com/gogpu/pxl"
	"github.com/gogpu/pxl/surface"
)

func newTestCanvas(t *testing.T, w, h int) *pxl.Canvas {
	t.Helper()
	c, err := pxl.New(w, h, pxl.WithSurface(surface.NewImageSurface(w, h)))
	if err != nil {
		t.Fatalf("pxl.New = %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func countColor(c *pxl.Canvas, col pxl.Color) int {
	n := 0
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if got, _ := c.Pixel(x, y); got == col {
				n++
			}
		}
	}
	return n
}

func TestDrawScene(t *testing.T) {
	for _, size := range []struct{ w, h int }{{160, 96}, {32, 20}} {
		c := newTestCanvas(t, size.w, size.h)
		drawScene(c)
		if err := c.Render(); err != nil {
			t.Fatalf("%dx%d Render = %v", size.w, size.h, err)
		}
		if got, _ := c.Pixel(0, 0); got != grey {
			t.Errorf("%dx%d corner = %v, want frame color %v", size.w, size.h, got, grey)
		}
	}

	tiny := newTestCanvas(t, 3, 3)
	drawScene(tiny)
	if err := tiny.Render(); err != nil {
		t.Fatalf("3x3 Render = %v", err)
	}

	c := newTestCanvas(t, 160, 96)
	drawScene(c)
	for _, col := range []pxl.Color{orange, teal, violet, pxl.White} {
		if countColor(c, col) == 0 {
			t.Errorf("scene has no %v pixels", col)
		}
	}
}

func TestDrawQR(t *testing.T) {
	c := newTestCanvas(t, 160, 96)
	if err := drawQR(c, "https://example.com/pxl", pxl.White); err != nil {
		t.Fatalf("drawQR = %v", err)
	}
	if countColor(c, pxl.White) == 0 {
		t.Fatal("drawQR wrote no pixels")
	}
	// QR codes start with a dark finder pattern in the top-left module.
	minX := c.Width()
	for x := 0; x < c.Width(); x++ {
		if got, _ := c.Pixel(x, 2); got == pxl.White {
			minX = x
			break
		}
	}
	if minX < c.Width()/2 {
		t.Errorf("QR starts at x=%d, want right half", minX)
	}

	small := newTestCanvas(t, 8, 8)
	if err := drawQR(small, "https://example.com/pxl", pxl.White); err == nil {
		t.Error("drawQR on 8x8 canvas = nil, want error")
	}
}

func TestDrawLabel(t *testing.T) {
	c := newTestCanvas(t, 160, 96)
	if err := drawLabel(c, "pxl", pxl.Pt(4, 90), pxl.White); err != nil {
		t.Fatalf("drawLabel = %v", err)
	}
	if countColor(c, pxl.White) == 0 {
		t.Error("drawLabel wrote no pixels")
	}
	if err := drawLabel(c, "a much longer caption than fits", pxl.Pt(4, 90), pxl.White); err == nil {
		t.Error("oversized label = nil error")
	}
}
