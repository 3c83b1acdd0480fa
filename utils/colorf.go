package utils

// ColorFloat is an r,g,b,a float quad, the layout material colors use.
type ColorFloat [4]float32

// RGBA implements image/color.Color.
func (c *ColorFloat) RGBA() (r, g, b, a uint32) {
	const mf = float32(256*256 - 1)
	r = uint32(c[0] * mf)
	g = uint32(c[1] * mf)
	b = uint32(c[2] * mf)
	a = uint32(c[3] * mf)
	return
}

func NewColorFloatA(c []float32) ColorFloat {
	return ColorFloat{c[0], c[1], c[2], c[3]}
}

func NewColorFloat(c []float32) ColorFloat {
	return ColorFloat{c[0], c[1], c[2], 1.0}
}
