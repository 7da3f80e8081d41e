package procgen

import (
	"image"
	"math"
)

// noiseFrequency controls how many waves appear across the texture.
const noiseFrequency = 0.05

// NoiseAt returns the grayscale intensity of the noise texture at a
// single coordinate. The pattern is a product of phase-shifted sine
// and cosine waves; the offset slides the phase so different offsets
// give different textures while the same offset always reproduces the
// same one.
func NoiseAt(x, y int, offset float64) uint8 {
	v := math.Sin(float64(x)*noiseFrequency+offset) *
		math.Cos(float64(y)*noiseFrequency-offset)
	// Map [-1,1] onto the full intensity range.
	return uint8((v + 1) * 127.5)
}

// Noise generates a w by h grayscale noise texture for the given phase
// offset.
func Noise(w, h int, offset float64) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Pix[y*img.Stride+x] = NoiseAt(x, y, offset)
		}
	}
	return img
}
