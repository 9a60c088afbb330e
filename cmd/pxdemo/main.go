// Command pxdemo renders a fixed pxl scene once and saves it as PNG.
//
// The scene is presented on the selected backend (the best available one
// when -backend is empty) and the logical buffer is written to -output.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/pxl"
	"github.com/gogpu/pxl/surface"
	_ "github.com/gogpu/pxl/surface/fbdev"
	_ "github.com/gogpu/pxl/surface/termsurface"
)

func main() {
	var (
		width   = flag.Int("width", 160, "canvas width in pixels")
		height  = flag.Int("height", 96, "canvas height in pixels")
		output  = flag.String("output", "pxdemo.png", "output file")
		backend = flag.String("backend", "", "surface backend (image, terminal, fbdev); empty picks the best available")
		qr      = flag.String("qr", "", "optional QR code payload drawn in the corner")
		label   = flag.String("label", "pxl", "caption stamped into the scene")
		debug   = flag.Bool("debug", false, "log canvas activity to stderr")
		list    = flag.Bool("list", false, "list surface backends and exit")
	)
	flag.Parse()

	if *list {
		for _, b := range surface.Backends() {
			fmt.Println(b)
		}
		return
	}

	if *debug {
		pxl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	opts := []pxl.Option{pxl.WithBackground(pxl.MustHex("101828ff"))}
	if *backend != "" {
		opts = append(opts, pxl.WithBackend(*backend))
	}
	c, err := pxl.New(*width, *height, opts...)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}

	drawScene(c)
	if *label != "" {
		if err := drawLabel(c, *label, pxl.Pt(4, c.Height()-4), pxl.White); err != nil {
			log.Printf("Label skipped: %v", err)
		}
	}
	if *qr != "" {
		if err := drawQR(c, *qr, pxl.White); err != nil {
			log.Printf("QR code skipped: %v", err)
		}
	}

	if err := c.Render(); err != nil {
		_ = c.Close()
		log.Fatalf("Failed to render: %v", err)
	}
	if err := c.SavePNG(*output); err != nil {
		_ = c.Close()
		log.Fatalf("Failed to save: %v", err)
	}
	if err := c.Close(); err != nil {
		log.Printf("Close: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}
