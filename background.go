package aurora

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrRenderContext wraps every failure that switches the background into
// fallback mode. It is reported through OnFallback, never returned.
var ErrRenderContext = errors.New("aurora: render context unavailable")

// RendererMode is the background's health. It moves from RendererActive to
// RendererFallback at most once and never back.
type RendererMode uint8

const (
	RendererActive   RendererMode = iota // shader pipeline running
	RendererFallback                     // static gradient after a failure
)

func (m RendererMode) String() string {
	if m == RendererFallback {
		return "fallback"
	}
	return "active"
}

// Surface is a drawing target sized to the viewport. *ebiten.Image
// satisfies it.
type Surface interface {
	Bounds() image.Rectangle
	DrawRectShader(width, height int, shader *ebiten.Shader, options *ebiten.DrawRectShaderOptions)
	DrawTriangles(vertices []ebiten.Vertex, indices []uint16, img *ebiten.Image, options *ebiten.DrawTrianglesOptions)
}

// BackgroundOptions tunes how clock and pointer feed the shader.
type BackgroundOptions struct {
	// TimeScale multiplies elapsed seconds before they reach the shader.
	TimeScale float64
	// PointerScale multiplies the pointer's renderer-space position by the
	// viewport size before it reaches the shader.
	PointerScale float64
}

// DefaultBackgroundOptions returns the stock animation speed and pointer
// influence.
func DefaultBackgroundOptions() BackgroundOptions {
	return BackgroundOptions{TimeScale: 0.5, PointerScale: 0.3}
}

// backgroundState holds the shader inputs. It belongs to Background alone and
// is rewritten in place on every tick.
type backgroundState struct {
	time       float64
	mouse      Vec2
	resolution Vec2
}

// Fallback gradient endpoints (135deg, top-left to bottom-right).
var (
	fallbackFrom = Hex(0x0A0A0A)
	fallbackTo   = Hex(0x1A1A2E)
)

// Background renders the animated shader behind the page. It reads the
// clock and pointer on each tick and draws once per Draw call. Any failure
// to acquire or use the shader latches it into a static gradient; the page
// never sees an error.
type Background struct {
	clock   *FrameClock
	pointer *PointerTracker
	opts    BackgroundOptions

	mode    RendererMode
	cause   error
	started bool
	shader  *ebiten.Shader
	state   backgroundState
	tick    CallbackHandle

	// compile acquires the shader; replaced in tests to force failures.
	compile func(src []byte) (*ebiten.Shader, error)

	uniforms map[string]any
	mouseF32 [2]float32
	resF32   [2]float32
	shaderOp ebiten.DrawRectShaderOptions

	fallbackVerts   [4]ebiten.Vertex
	fallbackIndices [6]uint16
	fallbackOp      ebiten.DrawTrianglesOptions

	fallbacks handlerList[error]
}

// NewBackground creates a stopped background fed by clock and pointer.
// Either may be nil, in which case the corresponding input stays at zero.
func NewBackground(clock *FrameClock, pointer *PointerTracker, opts BackgroundOptions) *Background {
	b := &Background{
		clock:    clock,
		pointer:  pointer,
		opts:     opts,
		compile:  ebiten.NewShader,
		uniforms: make(map[string]any, 3),
	}
	b.uniforms["Time"] = float32(0)
	b.uniforms["Mouse"] = b.mouseF32[:]
	b.uniforms["Resolution"] = b.resF32[:]
	b.shaderOp.Uniforms = b.uniforms
	b.fallbackIndices = [6]uint16{0, 1, 2, 1, 3, 2}
	if clock != nil {
		b.Resize(clock.Size())
	}
	return b
}

// Mode returns the current renderer health.
func (b *Background) Mode() RendererMode {
	return b.mode
}

// Cause returns the error that triggered fallback, or nil.
func (b *Background) Cause() error {
	return b.cause
}

// Running reports whether Start has been called without a matching Stop.
func (b *Background) Running() bool {
	return b.started
}

// OnFallback registers fn to run once when the renderer enters fallback.
func (b *Background) OnFallback(fn func(error)) CallbackHandle {
	return b.fallbacks.add(fn)
}

// Start acquires the shader and begins following the clock. The surface is
// used to size the resolution uniform; an empty or missing surface counts as
// an acquisition failure. Calling Start on a running background does nothing.
func (b *Background) Start(surface Surface) {
	if b.started {
		return
	}
	b.started = true
	if b.mode == RendererFallback {
		return
	}
	if surface == nil {
		b.fail(fmt.Errorf("%w: no surface", ErrRenderContext))
		return
	}
	r := surface.Bounds()
	if r.Dx() <= 0 || r.Dy() <= 0 {
		b.fail(fmt.Errorf("%w: empty surface %v", ErrRenderContext, r))
		return
	}
	b.Resize(r.Dx(), r.Dy())

	shader, err := b.acquireShader()
	if err != nil {
		b.fail(fmt.Errorf("%w: %w", ErrRenderContext, err))
		return
	}
	b.shader = shader
	if b.clock != nil {
		b.tick = b.clock.OnTick(b.onTick)
	}
}

// Stop deregisters from the clock and releases the shader. Safe to call at
// any time, any number of times. The renderer mode is kept.
func (b *Background) Stop() {
	b.started = false
	b.release()
}

// Resize updates the resolution uniform. It never re-acquires the shader.
func (b *Background) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	b.state.resolution = Vec2{X: float64(width), Y: float64(height)}
	b.resF32 = [2]float32{float32(width), float32(height)}
}

// Resolution returns the size the shader currently renders for.
func (b *Background) Resolution() Vec2 {
	return b.state.resolution
}

// Uniforms returns the shader time and mouse values computed on the last tick.
func (b *Background) Uniforms() (time float64, mouse Vec2) {
	return b.state.time, b.state.mouse
}

// Fail forces the renderer into fallback, as if the context had been lost.
// Repeated calls are ignored.
func (b *Background) Fail(cause error) {
	if cause == nil {
		cause = ErrRenderContext
	} else if !errors.Is(cause, ErrRenderContext) {
		cause = fmt.Errorf("%w: %w", ErrRenderContext, cause)
	}
	b.fail(cause)
}

// Draw renders one frame into dst. In fallback mode, or when a draw fails,
// the static gradient is drawn instead.
func (b *Background) Draw(dst Surface) {
	if dst == nil {
		return
	}
	if b.mode == RendererFallback {
		b.drawFallbackSafe(dst)
		return
	}
	if !b.started || b.shader == nil {
		return
	}
	if !b.drawShader(dst) {
		b.drawFallbackSafe(dst)
	}
}

func (b *Background) onTick(s FrameSample) {
	if b.mode == RendererFallback {
		return
	}
	if s.Width != int(b.state.resolution.X) || s.Height != int(b.state.resolution.Y) {
		b.Resize(s.Width, s.Height)
	}
	b.state.time = s.Elapsed * b.opts.TimeScale

	var ndc Vec2
	if b.pointer != nil {
		ndc = b.pointer.Normalized(int(b.state.resolution.X), int(b.state.resolution.Y))
	}
	b.state.mouse = Vec2{
		X: ndc.X * b.state.resolution.X * b.opts.PointerScale,
		Y: ndc.Y * b.state.resolution.Y * b.opts.PointerScale,
	}

	b.uniforms["Time"] = float32(b.state.time)
	b.mouseF32 = [2]float32{float32(b.state.mouse.X), float32(b.state.mouse.Y)}
}

// drawShader reports false if drawing panicked, after latching fallback.
func (b *Background) drawShader(dst Surface) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			b.fail(fmt.Errorf("%w: draw: %v", ErrRenderContext, r))
			ok = false
		}
	}()
	bounds := dst.Bounds()
	dst.DrawRectShader(bounds.Dx(), bounds.Dy(), b.shader, &b.shaderOp)
	return true
}

func (b *Background) acquireShader() (shader *ebiten.Shader, err error) {
	defer func() {
		if r := recover(); r != nil {
			shader, err = nil, fmt.Errorf("compile shader: %v", r)
		}
	}()
	if b.compile == nil {
		return nil, errors.New("no shader compiler")
	}
	shader, err = b.compile([]byte(fluidShaderSrc))
	if err != nil {
		return nil, fmt.Errorf("compile shader: %w", err)
	}
	if shader == nil {
		return nil, errors.New("compile shader: nil shader")
	}
	return shader, nil
}

// fail latches fallback mode. Only the first call has any effect.
func (b *Background) fail(cause error) {
	if b.mode == RendererFallback {
		return
	}
	b.mode = RendererFallback
	b.cause = cause
	b.release()
	logger.Warn("background renderer fell back to static gradient", "err", cause)
	b.fallbacks.emit(cause)
}

func (b *Background) release() {
	b.tick.Remove()
	b.tick = CallbackHandle{}
	if b.shader == nil {
		return
	}
	shader := b.shader
	b.shader = nil
	defer func() {
		// The context may already be gone; nothing left to release.
		_ = recover()
	}()
	shader.Deallocate()
}

func (b *Background) drawFallbackSafe(dst Surface) {
	defer func() {
		if r := recover(); r != nil {
			logger.Debug("fallback gradient draw failed", "panic", r)
		}
	}()
	b.drawFallback(dst)
}

// drawFallback fills dst with a diagonal gradient. Corner colors: top-left
// is the start color, bottom-right the end, the other two the midpoint, which
// is exact for a 135 degree linear gradient on a square and close otherwise.
func (b *Background) drawFallback(dst Surface) {
	r := dst.Bounds()
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return
	}
	x0, y0 := float32(r.Min.X), float32(r.Min.Y)
	x1, y1 := float32(r.Max.X), float32(r.Max.Y)
	mid := mixColor(fallbackFrom, fallbackTo, 0.5)

	setVertex(&b.fallbackVerts[0], x0, y0, fallbackFrom)
	setVertex(&b.fallbackVerts[1], x1, y0, mid)
	setVertex(&b.fallbackVerts[2], x0, y1, mid)
	setVertex(&b.fallbackVerts[3], x1, y1, fallbackTo)

	dst.DrawTriangles(b.fallbackVerts[:], b.fallbackIndices[:], whiteSubImage(), &b.fallbackOp)
}

func setVertex(v *ebiten.Vertex, x, y float32, c Color) {
	v.DstX, v.DstY = x, y
	v.SrcX, v.SrcY = 1, 1
	v.ColorR = float32(c.R)
	v.ColorG = float32(c.G)
	v.ColorB = float32(c.B)
	v.ColorA = float32(c.A)
}

// whitePixel backs solid-color triangle fills. The 3x3 image is sampled at
// its center pixel so filtering never reaches an edge.
var whitePixel *ebiten.Image

func whiteSubImage() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(Color{R: 1, G: 1, B: 1, A: 1}.RGBA())
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}
