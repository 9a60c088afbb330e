// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package termsurface presents pxl frames in a terminal.
//
// Every character cell shows two vertically stacked pixels: the upper
// half block '▀' is drawn with the upper pixel as foreground and the lower
// pixel as background. The frame is scaled with nearest-neighbour sampling
// to fill the terminal, which is re-measured on every Present.
//
// Importing the package registers the "terminal" backend, which is
// available when standard output is a terminal:
//
//	import _ "github.com/gogpu/pxl/surface/termsurface"
//
//	c, err := pxl.New(160, 96, pxl.WithBackend("terminal"))
package termsurface

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/term"

	"github.com/gogpu/pxl"
	"github.com/gogpu/pxl/surface"
)

const (
	// Backend is the registry name.
	Backend = "terminal"

	// OptionTitle is the surface.Options.Custom key for the window title.
	OptionTitle = "terminal.title"

	// halfBlock is the upper half block character.
	halfBlock = '▀'
)

// Surface is a surface.Surface drawn on a tcell screen.
type Surface struct {
	screen     tcell.Screen
	ownsScreen bool

	// frame backs Frame(); cells is the terminal-sized staging image with
	// two pixel rows per character row.
	frame  *image.NRGBA
	cells  *image.NRGBA
	closed bool
}

// New initializes the terminal and returns a width x height surface.
// Close restores the terminal.
func New(width, height int) (*Surface, error) {
	if err := surface.ValidateSize(width, height); err != nil {
		return nil, err
	}
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("termsurface: create screen: %w", err)
	}
	if err := scr.Init(); err != nil {
		return nil, fmt.Errorf("termsurface: init screen: %w", err)
	}
	s := NewWithScreen(scr, width, height)
	s.ownsScreen = true

	cols, rows := scr.Size()
	pxl.Logger().Info("termsurface: screen initialized", "cols", cols, "rows", rows,
		"frame", fmt.Sprintf("%dx%d", width, height))
	return s, nil
}

// NewWithScreen draws on an already initialized screen. The caller keeps
// ownership: Close does not call Fini.
func NewWithScreen(scr tcell.Screen, width, height int) *Surface {
	return &Surface{
		screen: scr,
		frame:  image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// Screen returns the underlying tcell screen.
func (s *Surface) Screen() tcell.Screen {
	return s.screen
}

// Width returns the frame width.
func (s *Surface) Width() int {
	return s.frame.Rect.Dx()
}

// Height returns the frame height.
func (s *Surface) Height() int {
	return s.frame.Rect.Dy()
}

// Frame returns the writable RGBA frame.
func (s *Surface) Frame() []byte {
	if s.closed {
		return nil
	}
	return s.frame.Pix
}

// Present scales the frame to the terminal and shows it.
func (s *Surface) Present() error {
	if s.closed {
		return surface.ErrClosed
	}

	cols, rows := s.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil
	}
	need := image.Rect(0, 0, cols, rows*2)
	if s.cells == nil || s.cells.Rect != need {
		s.cells = image.NewNRGBA(need)
	}
	xdraw.NearestNeighbor.Scale(s.cells, need, s.frame, s.frame.Rect, xdraw.Src, nil)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			upper := s.cells.NRGBAAt(col, 2*row)
			lower := s.cells.NRGBAAt(col, 2*row+1)
			st := tcell.StyleDefault.Foreground(cellColor(upper)).Background(cellColor(lower))
			s.screen.SetContent(col, row, halfBlock, nil, st)
		}
	}
	s.screen.Show()
	return nil
}

// cellColor converts a pixel to a terminal color. Terminals have no
// alpha, so the pixel is composited over black.
func cellColor(c color.NRGBA) tcell.Color {
	a := int32(c.A)
	return tcell.NewRGBColor(int32(c.R)*a/0xff, int32(c.G)*a/0xff, int32(c.B)*a/0xff)
}

// Resize reallocates the frame. The terminal size is not changed.
func (s *Surface) Resize(width, height int) error {
	if s.closed {
		return surface.ErrClosed
	}
	if err := surface.ValidateSize(width, height); err != nil {
		return err
	}
	s.frame = image.NewNRGBA(image.Rect(0, 0, width, height))
	return nil
}

// Close releases the terminal if New created it. Close is idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.ownsScreen {
		s.screen.Fini()
	}
	return nil
}

func available() bool {
	return os.Getenv("TERM") != "" && term.IsTerminal(int(os.Stdout.Fd()))
}

func init() {
	surface.MustRegister(surface.Backend{
		Name:     Backend,
		Priority: 20,
		Open: func(opts surface.Options) (surface.Surface, error) {
			s, err := New(opts.Width, opts.Height)
			if err != nil {
				return nil, err
			}
			if title, ok := opts.CustomString(OptionTitle); ok {
				s.screen.SetTitle(title)
			}
			return s, nil
		},
		Probe: available,
	})
}

var _ surface.Surface = (*Surface)(nil)
