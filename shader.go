package aurora

import "math"

// fluidShaderSrc is the Kage source for the animated background.
// Uniforms: Time (seconds, already scaled), Mouse and Resolution (pixels).
// Output is premultiplied with a fixed alpha of 0.6.
const fluidShaderSrc = `//kage:unit pixels
package main

var Time float
var Mouse vec2
var Resolution vec2

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	p := (dst.xy - imageDstOrigin()) / Resolution
	uv := vec2(p.x, 1.0-p.y)
	m := Mouse / Resolution

	d := distance(uv, m)
	wave := sin(d*6.0-Time*2.0)*0.3 + 0.7

	c1 := vec3(0.0, 0.831, 1.0)
	c2 := vec3(0.702, 0.0, 1.0)
	c3 := vec3(0.039, 0.039, 0.039)

	c := mix(c1, c2, wave)
	c = mix(c, c3, 0.2)

	glow := 1.0 - smoothstep(0.0, 0.4, d)
	c += glow * vec3(0.5) * 0.1

	a := 0.6
	return vec4(c*a, a)
}
`

// Shader palette, mirrored from the Kage source.
var (
	fluidBlue    = Color{R: 0.0, G: 0.831, B: 1.0, A: 1}
	fluidPurple  = Color{R: 0.702, G: 0.0, B: 1.0, A: 1}
	fluidNeutral = Color{R: 0.039, G: 0.039, B: 0.039, A: 1}
)

const (
	fluidAlpha      = 0.6
	fluidNeutralMix = 0.2
	fluidGlowRadius = 0.4
	fluidGlowAmount = 0.5 * 0.1
	fluidWaveFreq   = 6.0
	fluidWaveSpeed  = 2.0
	fluidWaveAmp    = 0.3
	fluidWaveCenter = 0.7
)

// FluidColor evaluates the background fragment on the CPU. uv and mouse are
// in normalized viewport space ([0, 1], Y up); t is the scaled shader time.
// The result is not premultiplied.
func FluidColor(uv, mouse Vec2, t float64) Color {
	d := math.Hypot(uv.X-mouse.X, uv.Y-mouse.Y)
	wave := FluidWave(d, t)

	c := mixColor(fluidBlue, fluidPurple, wave)
	c = mixColor(c, fluidNeutral, fluidNeutralMix)

	g := FluidGlow(d) * fluidGlowAmount
	c.R += g
	c.G += g
	c.B += g
	c.A = fluidAlpha
	return c
}

// FluidWave is the oscillation term: sin(d*6 - t*2)*0.3 + 0.7.
func FluidWave(d, t float64) float64 {
	return math.Sin(d*fluidWaveFreq-t*fluidWaveSpeed)*fluidWaveAmp + fluidWaveCenter
}

// FluidGlow is 1 at the pointer, falling to 0 at the 0.4 radius.
func FluidGlow(d float64) float64 {
	return 1 - smoothstep(0, fluidGlowRadius, d)
}

func mixColor(a, b Color, t float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

func smoothstep(edge0, edge1, x float64) float64 {
	t := clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}
