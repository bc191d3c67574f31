package aurora

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type fakeSurface struct {
	bounds      image.Rectangle
	panicOnDraw bool
	shaderDraws int
}

func (s *fakeSurface) Bounds() image.Rectangle { return s.bounds }

func (s *fakeSurface) DrawRectShader(int, int, *ebiten.Shader, *ebiten.DrawRectShaderOptions) {
	if s.panicOnDraw {
		panic("context lost")
	}
	s.shaderDraws++
}

func (s *fakeSurface) DrawTriangles([]ebiten.Vertex, []uint16, *ebiten.Image, *ebiten.DrawTrianglesOptions) {
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{bounds: image.Rect(0, 0, w, h)}
}

// newTestBackground returns a background whose compile step is counted and
// yields a placeholder shader, so no GPU is needed.
func newTestBackground(c *FrameClock, p *PointerTracker) (*Background, *int) {
	b := NewBackground(c, p, DefaultBackgroundOptions())
	compiles := 0
	b.compile = func([]byte) (*ebiten.Shader, error) {
		compiles++
		return &ebiten.Shader{}, nil
	}
	return b, &compiles
}

func TestBackgroundCompileFailureFallsBackOnce(t *testing.T) {
	c := NewFrameClock(200, 100)
	b := NewBackground(c, nil, DefaultBackgroundOptions())
	b.compile = func([]byte) (*ebiten.Shader, error) {
		return nil, errors.New("unsupported")
	}
	var fallbacks []error
	b.OnFallback(func(err error) { fallbacks = append(fallbacks, err) })

	b.Start(newFakeSurface(200, 100))
	if b.Mode() != RendererFallback {
		t.Fatalf("Mode = %v, want fallback", b.Mode())
	}
	if !errors.Is(b.Cause(), ErrRenderContext) {
		t.Errorf("Cause = %v, want ErrRenderContext", b.Cause())
	}
	if c.Subscribers() != 0 {
		t.Errorf("failed background left %d tick callbacks", c.Subscribers())
	}

	b.Fail(errors.New("again"))
	b.Stop()
	b.Start(newFakeSurface(200, 100))
	if len(fallbacks) != 1 {
		t.Errorf("fallback events = %d, want 1", len(fallbacks))
	}
	if b.Mode() != RendererFallback {
		t.Error("fallback mode reverted")
	}
}

func TestBackgroundCompilePanicFallsBack(t *testing.T) {
	b := NewBackground(NewFrameClock(10, 10), nil, DefaultBackgroundOptions())
	b.compile = func([]byte) (*ebiten.Shader, error) { panic("driver gone") }
	b.Start(newFakeSurface(10, 10))
	if b.Mode() != RendererFallback {
		t.Errorf("Mode = %v, want fallback", b.Mode())
	}
}

func TestBackgroundMissingSurface(t *testing.T) {
	tests := []struct {
		name    string
		surface Surface
	}{
		{"nil", nil},
		{"empty", newFakeSurface(0, 0)},
	}
	for _, tt := range tests {
		b, compiles := newTestBackground(NewFrameClock(10, 10), nil)
		b.Start(tt.surface)
		if b.Mode() != RendererFallback {
			t.Errorf("%s: Mode = %v, want fallback", tt.name, b.Mode())
		}
		if *compiles != 0 {
			t.Errorf("%s: shader compiled without a surface", tt.name)
		}
	}
}

func TestBackgroundDrawPanicFallsBackOnce(t *testing.T) {
	c := NewFrameClock(64, 64)
	b, _ := newTestBackground(c, nil)
	var fallbacks int
	b.OnFallback(func(error) { fallbacks++ })

	s := newFakeSurface(64, 64)
	b.Start(s)
	b.Draw(s)
	if b.Mode() != RendererActive || s.shaderDraws != 1 {
		t.Fatalf("Mode = %v, draws = %d; want active, 1", b.Mode(), s.shaderDraws)
	}

	s.panicOnDraw = true
	b.Draw(s)
	b.Draw(s)
	if b.Mode() != RendererFallback {
		t.Fatalf("Mode = %v after draw panic, want fallback", b.Mode())
	}
	if fallbacks != 1 {
		t.Errorf("fallback events = %d, want 1", fallbacks)
	}
	if c.Subscribers() != 0 {
		t.Errorf("tick callback not released after fallback")
	}
}

func TestBackgroundUniformsFollowClockAndPointer(t *testing.T) {
	c := NewFrameClock(200, 100)
	p := NewPointerTracker(c)
	b, _ := newTestBackground(c, p)
	b.Start(newFakeSurface(200, 100))

	p.Move(150, 25)
	c.Advance(2)

	tm, mouse := b.Uniforms()
	if tm != 1 {
		t.Errorf("time = %v, want elapsed*0.5 = 1", tm)
	}
	if math.Abs(mouse.X-30) > 1e-9 || math.Abs(mouse.Y-15) > 1e-9 {
		t.Errorf("mouse = %+v, want {30 15}", mouse)
	}
	if got := b.uniforms["Time"].(float32); got != 1 {
		t.Errorf("Time uniform = %v, want 1", got)
	}
}

func TestBackgroundResizeKeepsShader(t *testing.T) {
	c := NewFrameClock(200, 100)
	b, compiles := newTestBackground(c, nil)
	b.Start(newFakeSurface(200, 100))

	b.Resize(400, 300)
	c.Resize(400, 300)
	c.Advance(0.016)
	if *compiles != 1 {
		t.Errorf("compiles = %d after resize, want 1", *compiles)
	}
	if b.Resolution() != (Vec2{400, 300}) {
		t.Errorf("Resolution = %+v, want {400 300}", b.Resolution())
	}
	if b.resF32 != [2]float32{400, 300} {
		t.Errorf("Resolution uniform = %v", b.resF32)
	}
	if b.Mode() != RendererActive {
		t.Error("resize changed renderer mode")
	}
}

func TestBackgroundStopReleases(t *testing.T) {
	c := NewFrameClock(10, 10)
	b, compiles := newTestBackground(c, nil)
	b.Start(newFakeSurface(10, 10))
	b.Start(newFakeSurface(10, 10))
	if *compiles != 1 || c.Subscribers() != 1 {
		t.Fatalf("compiles = %d, subscribers = %d; want 1, 1", *compiles, c.Subscribers())
	}
	b.Stop()
	b.Stop()
	if b.Running() || c.Subscribers() != 0 || b.shader != nil {
		t.Error("Stop did not release the shader and tick")
	}
	if b.Mode() != RendererActive {
		t.Error("Stop changed renderer mode")
	}
}

func TestFluidColor(t *testing.T) {
	for _, tt := range []struct{ uv, m Vec2 }{
		{Vec2{0, 0}, Vec2{0, 0}},
		{Vec2{1, 1}, Vec2{0, 0}},
		{Vec2{0.3, 0.8}, Vec2{0.5, 0.5}},
	} {
		c := FluidColor(tt.uv, tt.m, 1.7)
		if c.A != 0.6 {
			t.Errorf("alpha = %v, want 0.6", c.A)
		}
	}
	if g := FluidGlow(0.4); g != 0 {
		t.Errorf("glow at radius = %v, want 0", g)
	}
	if g := FluidGlow(0); g != 1 {
		t.Errorf("glow at pointer = %v, want 1", g)
	}
	for d := 0.0; d < 2; d += 0.05 {
		for tm := 0.0; tm < 4; tm += 0.25 {
			w := FluidWave(d, tm)
			if w < 0.4-1e-9 || w > 1.0+1e-9 {
				t.Fatalf("wave(%v, %v) = %v outside [0.4, 1]", d, tm, w)
			}
		}
	}
}

func TestFluidColorFarFromPointer(t *testing.T) {
	// Beyond the glow radius the color is the pure palette mix.
	c := FluidColor(Vec2{1, 1}, Vec2{0, 0}, 0)
	w := FluidWave(math.Sqrt2, 0)
	want := mixColor(mixColor(fluidBlue, fluidPurple, w), fluidNeutral, 0.2)
	if math.Abs(c.R-want.R) > 1e-12 || math.Abs(c.G-want.G) > 1e-12 || math.Abs(c.B-want.B) > 1e-12 {
		t.Errorf("FluidColor = %+v, want %+v", c, want)
	}
}

func TestFluidShaderCompiles(t *testing.T) {
	if testing.Short() {
		t.Skip("compiles Kage through ebiten")
	}
	if _, err := ebiten.NewShader([]byte(fluidShaderSrc)); err != nil {
		t.Fatalf("fluid shader: %v", err)
	}
}
