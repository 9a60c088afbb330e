package pxl

// ColorBuilder assembles a Color one channel at a time. Channels that are
// never set default to 0xff, so the zero ColorBuilder builds opaque white.
//
// Every With method returns a modified copy, which keeps partially built
// colors reusable:
//
//	base := pxl.NewColorBuilder().WithAlpha(0x80)
//	red := base.WithGreen(0).WithBlue(0).Build()   // ff000080
//	cyan := base.WithRed(0).Build()                // 00ffff80
type ColorBuilder struct {
	ch  [4]uint8
	set [4]bool
}

// NewColorBuilder returns a builder with no channels set.
func NewColorBuilder() ColorBuilder {
	return ColorBuilder{}
}

func (b ColorBuilder) with(i int, v uint8) ColorBuilder {
	b.ch[i] = v
	b.set[i] = true
	return b
}

// WithRed overrides the red channel.
func (b ColorBuilder) WithRed(v uint8) ColorBuilder { return b.with(0, v) }

// WithGreen overrides the green channel.
func (b ColorBuilder) WithGreen(v uint8) ColorBuilder { return b.with(1, v) }

// WithBlue overrides the blue channel.
func (b ColorBuilder) WithBlue(v uint8) ColorBuilder { return b.with(2, v) }

// WithAlpha overrides the alpha channel.
func (b ColorBuilder) WithAlpha(v uint8) ColorBuilder { return b.with(3, v) }

// Build returns the color. Unset channels are 0xff.
func (b ColorBuilder) Build() Color {
	var out [4]uint8
	for i := range out {
		out[i] = 0xff
		if b.set[i] {
			out[i] = b.ch[i]
		}
	}
	return Color{R: out[0], G: out[1], B: out[2], A: out[3]}
}
