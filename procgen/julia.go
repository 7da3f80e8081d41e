package procgen

import (
	"image"
	"image/color"

	"github.com/gospatial/quad"
)

// DefaultJuliaConstant is a well-known parameter that produces the
// classic swirling Julia set. Different constants give radically
// different shapes.
const DefaultJuliaConstant = complex(-0.7, 0.27015)

// DefaultJuliaViewport maps the image onto the complex plane region
// re in [-2,2], im in [-1.5,1.5]. The rect's X/Y are the real and
// imaginary parts of the top-left corner.
var DefaultJuliaViewport = quad.R(-2, -1.5, 4, 3)

const defaultJuliaIterations = 100

// JuliaIterations iterates z = z*z + c from z0 and returns how many
// steps it takes the orbit to escape the radius-2 circle, up to
// maxIter. Points that never escape are inside the set for this c and
// return maxIter.
func JuliaIterations(c, z0 complex128, maxIter int) int {
	z := z0
	for i := 0; i < maxIter; i++ {
		z = z*z + c
		// Squared magnitude; avoids the sqrt of cmplx.Abs.
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return i
		}
	}
	return maxIter
}

// JuliaOption configures Julia rendering.
type JuliaOption func(*juliaOptions)

type juliaOptions struct {
	maxIter  int
	viewport quad.Rect
}

func defaultJuliaOptions() juliaOptions {
	return juliaOptions{
		maxIter:  defaultJuliaIterations,
		viewport: DefaultJuliaViewport,
	}
}

// WithMaxIterations sets the escape-time iteration limit. Higher
// values resolve more detail near the set boundary at more cost per
// pixel.
func WithMaxIterations(n int) JuliaOption {
	return func(o *juliaOptions) {
		if n > 0 {
			o.maxIter = n
		}
	}
}

// WithViewport sets the complex-plane region the image covers. Shrink
// it to zoom in, move it to pan.
func WithViewport(v quad.Rect) JuliaOption {
	return func(o *juliaOptions) {
		if !v.Empty() {
			o.viewport = v
		}
	}
}

// Julia renders the Julia set for constant c into a w by h image.
// Points inside the set are black; escaping points get a warm gradient
// scaled by how quickly they escape.
func Julia(w, h int, c complex128, opts ...JuliaOption) *image.RGBA {
	o := defaultJuliaOptions()
	for _, opt := range opts {
		opt(&o)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			re := o.viewport.X + float64(x)/float64(w)*o.viewport.W
			im := o.viewport.Y + float64(y)/float64(h)*o.viewport.H
			it := JuliaIterations(c, complex(re, im), o.maxIter)
			img.SetRGBA(x, y, juliaColor(it, o.maxIter))
		}
	}
	return img
}

func juliaColor(it, maxIter int) color.RGBA {
	if it == maxIter {
		return color.RGBA{A: 255}
	}
	v := uint8(it * 255 / maxIter)
	return color.RGBA{R: v, G: v / 2, B: v / 4, A: 255}
}
